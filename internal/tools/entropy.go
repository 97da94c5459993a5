package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/novalym/velm-native/internal/entropy"
)

func (s *Server) handleCalculateEntropy(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	var data []byte
	if content, ok := args["content"].(string); ok {
		data = []byte(content)
	} else if p := getStringArg(args, "path"); p != "" {
		data, err = os.ReadFile(s.resolvePath(p))
		if err != nil {
			return errResult(fmt.Sprintf("read: %v", err)), nil
		}
	} else {
		return errResult("either path or content is required"), nil
	}

	result := map[string]any{
		"entropy": entropy.Shannon(data),
		"bytes":   len(data),
	}
	if window := getIntArg(args, "window", 0); window > 0 {
		chunks := entropy.Chunks(data, window)
		if chunks == nil {
			chunks = []float64{}
		}
		result["window"] = window
		result["windows"] = chunks
		result["max_window_entropy"] = entropy.MaxChunk(data, window)
	}
	return jsonResult(result), nil
}
