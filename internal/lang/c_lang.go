package lang

import tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       C,
		FileExtensions: []string{".c"},
		Grammar:        tree_sitter_c.Language,
	})
}
