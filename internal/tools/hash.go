package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/novalym/velm-native/internal/digest"
	"github.com/novalym/velm-native/internal/metrics"
)

func (s *Server) handleHashFile(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	filePath := getStringArg(args, "path")
	if filePath == "" {
		return errResult("path is required"), nil
	}
	absPath := s.resolvePath(filePath)

	algo := s.cfg.EffectiveAlgorithm()
	if a := getStringArg(args, "algorithm"); a != "" {
		algo = digest.Algorithm(a)
	}

	sum, err := digest.FileWith(absPath, algo)
	if err != nil {
		return errResult(fmt.Sprintf("hash: %v", err)), nil
	}

	var size int64
	if info, statErr := os.Stat(absPath); statErr == nil {
		size = info.Size()
		metrics.BytesDigestedTotal.WithLabelValues(string(algo)).Add(float64(size))
	}

	return jsonResult(map[string]any{
		"path":      absPath,
		"algorithm": algo,
		"digest":    sum,
		"size":      size,
	}), nil
}
