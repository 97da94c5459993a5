package lang

import tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       TypeScript,
		Aliases:        []string{"ts"},
		FileExtensions: []string{".ts", ".mts", ".cts"},
		Grammar:        tree_sitter_typescript.LanguageTypescript,
	})
}
