package lang

import tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       TSX,
		FileExtensions: []string{".tsx"},
		Grammar:        tree_sitter_typescript.LanguageTSX,
	})
}
