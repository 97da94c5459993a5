package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/novalym/velm-native/internal/config"
	"github.com/novalym/velm-native/internal/metrics"
)

// Server wraps the MCP server with tool handlers.
type Server struct {
	mcp  *mcp.Server
	cfg  *config.Config
	root string // relative tool paths resolve against this directory
}

// NewServer creates a new MCP server with all tools registered.
// root is the directory relative paths are resolved against.
func NewServer(cfg *config.Config, root, version string) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	srv := &Server{
		cfg:  cfg,
		root: root,
		mcp: mcp.NewServer(
			&mcp.Implementation{
				Name:    "velm-native",
				Version: version,
			},
			nil,
		),
	}
	srv.registerTools()
	return srv
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

func (s *Server) registerTools() {
	// 1. scan_directory
	s.addTool(&mcp.Tool{
		Name:        "scan_directory",
		Description: "Recursively list regular files under a directory in parallel, honoring .gitignore, .ignore and .git/info/exclude. Returns each file's root-relative path (forward slashes), size in bytes, binary flag (NUL byte in the first 1 KiB) and modification time in epoch seconds. Unreadable entries are silently omitted.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {
					"type": "string",
					"description": "Directory to scan (absolute, or relative to the server's working directory). Empty for the working directory."
				},
				"include_hidden": {
					"type": "boolean",
					"description": "Include dot-files and dot-directories (default from config, else false)"
				},
				"workers": {
					"type": "integer",
					"description": "Maximum concurrent directory walks (default from config, else CPU count)"
				}
			}
		}`),
	}, s.handleScanDirectory)

	// 2. hash_file
	s.addTool(&mcp.Tool{
		Name:        "hash_file",
		Description: "Compute the content digest of a file using a read-only memory map. Returns lowercase hex. sha256 is the default; xxh3 is a fast non-cryptographic alternative for change detection.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {
					"type": "string",
					"description": "File path (absolute, or relative to the working directory)"
				},
				"algorithm": {
					"type": "string",
					"description": "Digest algorithm",
					"enum": ["sha256", "xxh3"]
				}
			},
			"required": ["path"]
		}`),
	}, s.handleHashFile)

	// 3. calculate_entropy
	s.addTool(&mcp.Tool{
		Name:        "calculate_entropy",
		Description: "Compute the Shannon entropy (bits per byte, 0 to 8) of a file or inline content. With window > 0, also reports the entropy of each window and the maximum, for spotting embedded secrets or compressed blobs.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"path": {
					"type": "string",
					"description": "File to measure. Either path or content is required."
				},
				"content": {
					"type": "string",
					"description": "Inline text to measure (UTF-8 bytes)"
				},
				"window": {
					"type": "integer",
					"description": "Optional window size in bytes for per-window entropy"
				}
			}
		}`),
	}, s.handleCalculateEntropy)

	// 4. query_ast
	s.addTool(&mcp.Tool{
		Name:        "query_ast",
		Description: "Parse source with tree-sitter and run an S-expression query pattern over the tree. Returns one record per capture of every match in match order: capture name, captured text, node type, start_byte and end_byte. Overlapping matches are not deduplicated.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"language": {
					"type": "string",
					"description": "Language tag or alias (e.g. 'python', 'go', 'ts'). Inferred from path's extension when omitted."
				},
				"pattern": {
					"type": "string",
					"description": "Tree-sitter query, e.g. (function_definition name: (identifier) @name)"
				},
				"source": {
					"type": "string",
					"description": "Inline source code. Either source or path is required."
				},
				"path": {
					"type": "string",
					"description": "File to read the source from"
				}
			},
			"required": ["pattern"]
		}`),
	}, s.handleQueryAST)

	// 5. check_syntax
	s.addTool(&mcp.Tool{
		Name:        "check_syntax",
		Description: "Parse source with tree-sitter and report syntax errors and missing tokens with byte ranges and 0-based row/column. An empty list means the source parsed cleanly.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"language": {
					"type": "string",
					"description": "Language tag or alias. Inferred from path's extension when omitted."
				},
				"source": {
					"type": "string",
					"description": "Inline source code. Either source or path is required."
				},
				"path": {
					"type": "string",
					"description": "File to read the source from"
				}
			}
		}`),
	}, s.handleCheckSyntax)

	// 6. list_languages
	s.addTool(&mcp.Tool{
		Name:        "list_languages",
		Description: "List the languages available to query_ast and check_syntax with their aliases and file extensions.",
		InputSchema: json.RawMessage(`{"type": "object"}`),
	}, s.handleListLanguages)
}

// addTool registers handler and records a call metric for every invocation.
func (s *Server) addTool(tool *mcp.Tool, handler mcp.ToolHandler) {
	name := tool.Name
	s.mcp.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := handler(ctx, req)
		metrics.ObserveTool(name, start, err != nil || (res != nil && res.IsError))
		return res, err
	})
}

// resolvePath makes p absolute against the server root.
func (s *Server) resolvePath(p string) string {
	if p == "" {
		return s.root
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.root, p)
}

// jsonResult marshals data to JSON and returns as tool result.
func jsonResult(data any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errResult("json marshal err=" + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

// errResult returns a tool result indicating an error.
func errResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
		IsError: true,
	}
}

// parseArgs unmarshals the raw JSON arguments into a map.
func parseArgs(req *mcp.CallToolRequest) (map[string]any, error) {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &m); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

// getStringArg extracts a string argument from parsed args.
func getStringArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// getIntArg extracts an integer argument with a default value.
func getIntArg(args map[string]any, key string, defaultVal int) int {
	v, ok := args[key]
	if !ok {
		return defaultVal
	}
	f, ok := v.(float64) // JSON numbers decode as float64
	if !ok {
		return defaultVal
	}
	return int(f)
}

// getBoolArg extracts a boolean argument, falling back to defaultVal when absent.
func getBoolArg(args map[string]any, key string, defaultVal bool) bool {
	v, ok := args[key]
	if !ok {
		return defaultVal
	}
	b, ok := v.(bool)
	if !ok {
		return defaultVal
	}
	return b
}
