package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/novalym/velm-native/internal/discover"
	"github.com/novalym/velm-native/internal/metrics"
)

func (s *Server) handleScanDirectory(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	root := s.resolvePath(getStringArg(args, "path"))
	opts := &discover.Options{
		IncludeHidden: getBoolArg(args, "include_hidden", s.cfg.EffectiveIncludeHidden()),
		Workers:       getIntArg(args, "workers", s.cfg.EffectiveWorkers()),
	}

	records, err := discover.Scan(root, opts)
	if err != nil {
		return errResult(fmt.Sprintf("scan: %v", err)), nil
	}
	metrics.FilesScannedTotal.Add(float64(len(records)))

	return jsonResult(map[string]any{
		"root":  root,
		"files": records,
		"total": len(records),
	}), nil
}
