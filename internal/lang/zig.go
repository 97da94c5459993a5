package lang

import tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Zig,
		FileExtensions: []string{".zig"},
		Grammar:        tree_sitter_zig.Language,
	})
}
