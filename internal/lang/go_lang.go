package lang

import tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Go,
		Aliases:        []string{"golang"},
		FileExtensions: []string{".go"},
		Grammar:        tree_sitter_go.Language,
	})
}
