package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/novalym/velm-native/internal/lang"
	"github.com/novalym/velm-native/internal/metrics"
	"github.com/novalym/velm-native/internal/parser"
)

// sourceArgs reads the source text and language tag shared by query_ast and
// check_syntax. Inline source wins over path; the language falls back to the
// path's extension.
func (s *Server) sourceArgs(args map[string]any) (source []byte, language string, err error) {
	p := getStringArg(args, "path")
	if inline, ok := args["source"].(string); ok {
		source = []byte(inline)
	} else if p != "" {
		source, err = os.ReadFile(s.resolvePath(p))
		if err != nil {
			return nil, "", fmt.Errorf("read: %w", err)
		}
	} else {
		return nil, "", errors.New("either source or path is required")
	}

	language = getStringArg(args, "language")
	if language == "" && p != "" {
		if l, ok := lang.LanguageForExtension(filepath.Ext(p)); ok {
			language = string(l)
		}
	}
	if language == "" {
		return nil, "", errors.New("language is required when it cannot be inferred from path")
	}
	return source, language, nil
}

func (s *Server) handleQueryAST(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	pattern := getStringArg(args, "pattern")
	if pattern == "" {
		return errResult("missing required 'pattern' parameter"), nil
	}
	source, language, err := s.sourceArgs(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	caps, err := parser.Query(source, language, pattern)
	if err != nil {
		return errResult(fmt.Sprintf("query error: %v", err)), nil
	}
	l, _ := parser.Resolve(language)
	metrics.CapturesReturnedTotal.WithLabelValues(string(l)).Add(float64(len(caps)))

	return jsonResult(map[string]any{
		"language": l,
		"captures": caps,
		"total":    len(caps),
	}), nil
}

func (s *Server) handleCheckSyntax(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := parseArgs(req)
	if err != nil {
		return errResult(err.Error()), nil
	}

	source, language, err := s.sourceArgs(args)
	if err != nil {
		return errResult(err.Error()), nil
	}

	diags, err := parser.Check(source, language)
	if err != nil {
		return errResult(fmt.Sprintf("check error: %v", err)), nil
	}

	l, _ := parser.Resolve(language)
	return jsonResult(map[string]any{
		"language":    l,
		"valid":       len(diags) == 0,
		"diagnostics": diags,
	}), nil
}

// LanguageInfo describes one registered language.
type LanguageInfo struct {
	Language   lang.Language `json:"language"`
	Aliases    []string      `json:"aliases"`
	Extensions []string      `json:"extensions"`
}

// Languages describes every registered language, sorted by tag.
func Languages() []LanguageInfo {
	all := lang.AllLanguages()
	out := make([]LanguageInfo, 0, len(all))
	for _, l := range all {
		spec := lang.ForLanguage(l)
		if spec == nil {
			continue
		}
		info := LanguageInfo{Language: l, Aliases: spec.Aliases, Extensions: spec.FileExtensions}
		if info.Aliases == nil {
			info.Aliases = []string{}
		}
		if info.Extensions == nil {
			info.Extensions = []string{}
		}
		out = append(out, info)
	}
	return out
}

func (s *Server) handleListLanguages(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	langs := Languages()
	return jsonResult(map[string]any{
		"languages": langs,
		"total":     len(langs),
	}), nil
}
