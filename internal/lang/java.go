package lang

import tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Java,
		FileExtensions: []string{".java"},
		Grammar:        tree_sitter_java.Language,
	})
}
