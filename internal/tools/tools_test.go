package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/novalym/velm-native/internal/config"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	return NewServer(config.Default(), root, "test"), root
}

func request(t *testing.T, args map[string]any) *mcp.CallToolRequest {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatal(err)
	}
	return &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: raw}}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want *mcp.TextContent", res.Content[0])
	}
	return tc.Text
}

// decode fails the test on an error result and unmarshals the JSON payload.
func decode(t *testing.T, res *mcp.CallToolResult, v any) {
	t.Helper()
	text := resultText(t, res)
	if res.IsError {
		t.Fatalf("unexpected error result: %s", text)
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("decode %q: %v", text, err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs(&mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{}})
	if err != nil || len(args) != 0 {
		t.Fatalf("empty arguments: got %v, %v", args, err)
	}
	if _, err := parseArgs(&mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(`[1,2`)}}); err == nil {
		t.Fatal("expected error for malformed arguments")
	}

	args = map[string]any{"s": "x", "n": float64(7), "b": true, "wrong": 3.5}
	if got := getStringArg(args, "s"); got != "x" {
		t.Errorf("getStringArg = %q", got)
	}
	if got := getStringArg(args, "n"); got != "" {
		t.Errorf("getStringArg on number = %q, want empty", got)
	}
	if got := getIntArg(args, "n", 1); got != 7 {
		t.Errorf("getIntArg = %d, want 7", got)
	}
	if got := getIntArg(args, "missing", 5); got != 5 {
		t.Errorf("getIntArg default = %d, want 5", got)
	}
	if !getBoolArg(args, "b", false) {
		t.Error("getBoolArg = false, want true")
	}
	if !getBoolArg(args, "wrong", true) {
		t.Error("getBoolArg on non-bool should return the default")
	}
}

func TestScanDirectory(t *testing.T) {
	srv, root := newTestServer(t)
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "sub/data.bin", "a\x00b")
	writeFile(t, root, ".env", "SECRET=1\n")
	writeFile(t, root, ".gitignore", "*.log\n")
	writeFile(t, root, "debug.log", "noise\n")

	var out struct {
		Files []struct {
			Path     string  `json:"path"`
			Size     int64   `json:"size"`
			IsBinary bool    `json:"is_binary"`
			MTime    float64 `json:"mtime"`
		} `json:"files"`
		Total int `json:"total"`
	}
	res, _ := srv.handleScanDirectory(context.Background(), request(t, map[string]any{}))
	decode(t, res, &out)

	var got []string
	for _, f := range out.Files {
		got = append(got, f.Path)
		if f.Path == "sub/data.bin" && !f.IsBinary {
			t.Error("sub/data.bin should be binary")
		}
		if f.MTime <= 0 {
			t.Errorf("%s: mtime %v", f.Path, f.MTime)
		}
	}
	slices.Sort(got)
	if want := []string{"main.go", "sub/data.bin"}; !slices.Equal(got, want) {
		t.Fatalf("files = %v, want %v", got, want)
	}
	if out.Total != 2 {
		t.Errorf("total = %d, want 2", out.Total)
	}

	res, _ = srv.handleScanDirectory(context.Background(), request(t, map[string]any{"include_hidden": true, "workers": 1}))
	decode(t, res, &out)
	if out.Total != 4 {
		t.Errorf("with hidden: total = %d, want 4 (.env, .gitignore, main.go, sub/data.bin)", out.Total)
	}
}

func TestScanDirectoryMissing(t *testing.T) {
	srv, _ := newTestServer(t)
	res, _ := srv.handleScanDirectory(context.Background(), request(t, map[string]any{"path": "does-not-exist"}))
	if !res.IsError {
		t.Fatal("expected error result for missing root")
	}
}

func TestHashFile(t *testing.T) {
	srv, root := newTestServer(t)
	writeFile(t, root, "abc.txt", "abc")

	var out struct {
		Algorithm string `json:"algorithm"`
		Digest    string `json:"digest"`
		Size      int64  `json:"size"`
	}
	res, _ := srv.handleHashFile(context.Background(), request(t, map[string]any{"path": "abc.txt"}))
	decode(t, res, &out)
	if out.Digest != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("digest = %s", out.Digest)
	}
	if out.Algorithm != "sha256" || out.Size != 3 {
		t.Errorf("algorithm=%s size=%d", out.Algorithm, out.Size)
	}

	res, _ = srv.handleHashFile(context.Background(), request(t, map[string]any{"path": "abc.txt", "algorithm": "xxh3"}))
	decode(t, res, &out)
	if out.Algorithm != "xxh3" || len(out.Digest) != 16 {
		t.Errorf("xxh3: algorithm=%s digest=%s", out.Algorithm, out.Digest)
	}

	for _, args := range []map[string]any{
		{},
		{"path": "missing.txt"},
		{"path": "abc.txt", "algorithm": "md5"},
	} {
		res, _ := srv.handleHashFile(context.Background(), request(t, args))
		if !res.IsError {
			t.Errorf("args %v: expected error result", args)
		}
	}
}

func TestCalculateEntropy(t *testing.T) {
	srv, root := newTestServer(t)
	writeFile(t, root, "same.txt", strings.Repeat("a", 64))

	var out struct {
		Entropy float64   `json:"entropy"`
		Bytes   int       `json:"bytes"`
		Windows []float64 `json:"windows"`
		Max     float64   `json:"max_window_entropy"`
	}
	res, _ := srv.handleCalculateEntropy(context.Background(), request(t, map[string]any{"path": "same.txt"}))
	decode(t, res, &out)
	if out.Entropy != 0 || out.Bytes != 64 {
		t.Errorf("entropy=%v bytes=%d, want 0 and 64", out.Entropy, out.Bytes)
	}

	res, _ = srv.handleCalculateEntropy(context.Background(), request(t, map[string]any{"content": "abcdaaaa", "window": 4}))
	decode(t, res, &out)
	if len(out.Windows) != 2 || out.Windows[0] != 2 || out.Windows[1] != 0 || out.Max != 2 {
		t.Errorf("windows=%v max=%v, want [2 0] and 2", out.Windows, out.Max)
	}

	res, _ = srv.handleCalculateEntropy(context.Background(), request(t, map[string]any{}))
	if !res.IsError {
		t.Error("expected error without path or content")
	}
}

type queryOutput struct {
	Language string `json:"language"`
	Captures []struct {
		Capture   string `json:"capture"`
		Text      string `json:"text"`
		Type      string `json:"type"`
		StartByte uint   `json:"start_byte"`
		EndByte   uint   `json:"end_byte"`
	} `json:"captures"`
	Total int `json:"total"`
}

func TestQueryAST(t *testing.T) {
	srv, root := newTestServer(t)
	source := "def greet():\n    pass\n\ndef part():\n    pass\n"
	writeFile(t, root, "pkg/mod.py", source)

	var out queryOutput
	res, _ := srv.handleQueryAST(context.Background(), request(t, map[string]any{
		"path":    "pkg/mod.py",
		"pattern": "(function_definition name: (identifier) @fn)",
	}))
	decode(t, res, &out)
	if out.Language != "python" || out.Total != 2 {
		t.Fatalf("language=%s total=%d", out.Language, out.Total)
	}
	if c := out.Captures[1]; c.Text != "part" || c.Capture != "fn" || c.Type != "identifier" || source[c.StartByte:c.EndByte] != "part" {
		t.Errorf("second capture = %+v", c)
	}

	res, _ = srv.handleQueryAST(context.Background(), request(t, map[string]any{
		"language": "js",
		"source":   "const x = 1;",
		"pattern":  "(number) @n",
	}))
	decode(t, res, &out)
	if out.Total != 1 || out.Captures[0].Text != "1" {
		t.Errorf("inline source: %+v", out)
	}
}

func TestQueryASTErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing pattern", map[string]any{"language": "go", "source": "package x"}, "pattern"},
		{"missing source", map[string]any{"language": "go", "pattern": "(identifier) @i"}, "source or path"},
		{"no language", map[string]any{"source": "x", "pattern": "(identifier) @i"}, "language is required"},
		{"unsupported", map[string]any{"language": "cobol", "source": "x", "pattern": "(identifier) @i"}, "unsupported language"},
		{"invalid query", map[string]any{"language": "go", "source": "package x", "pattern": "(identifier"}, "invalid query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := srv.handleQueryAST(context.Background(), request(t, tt.args))
			if !res.IsError {
				t.Fatal("expected error result")
			}
			if text := resultText(t, res); !strings.Contains(text, tt.want) {
				t.Errorf("error %q does not mention %q", text, tt.want)
			}
		})
	}
}

func TestCheckSyntax(t *testing.T) {
	srv, _ := newTestServer(t)

	var out struct {
		Valid       bool              `json:"valid"`
		Diagnostics []json.RawMessage `json:"diagnostics"`
	}
	res, _ := srv.handleCheckSyntax(context.Background(), request(t, map[string]any{
		"language": "go",
		"source":   "package main\n\nfunc main() {}\n",
	}))
	decode(t, res, &out)
	if !out.Valid || len(out.Diagnostics) != 0 {
		t.Errorf("valid source: valid=%v diagnostics=%d", out.Valid, len(out.Diagnostics))
	}

	res, _ = srv.handleCheckSyntax(context.Background(), request(t, map[string]any{
		"language": "go",
		"source":   "package main\n\nfunc main( {\n",
	}))
	decode(t, res, &out)
	if out.Valid || len(out.Diagnostics) == 0 {
		t.Errorf("broken source: valid=%v diagnostics=%d", out.Valid, len(out.Diagnostics))
	}
}

func TestServerOverTransport(t *testing.T) {
	srv, root := newTestServer(t)
	writeFile(t, root, "a.txt", "hello")
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer session.Close()

	list, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, tool := range list.Tools {
		names = append(names, tool.Name)
	}
	slices.Sort(names)
	want := []string{"calculate_entropy", "check_syntax", "hash_file", "list_languages", "query_ast", "scan_directory"}
	if !slices.Equal(names, want) {
		t.Fatalf("tools = %v, want %v", names, want)
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "hash_file",
		Arguments: map[string]any{"path": "a.txt"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if text := resultText(t, res); res.IsError || !strings.Contains(text, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824") {
		t.Errorf("hash_file over transport: %s", text)
	}

	res, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "list_languages"})
	if err != nil {
		t.Fatal(err)
	}
	var langs struct {
		Languages []LanguageInfo `json:"languages"`
		Total     int            `json:"total"`
	}
	decode(t, res, &langs)
	if langs.Total != len(langs.Languages) || langs.Total < 20 {
		t.Errorf("list_languages total = %d", langs.Total)
	}
}
