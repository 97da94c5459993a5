package lang

import tree_sitter_scss "github.com/tree-sitter-grammars/tree-sitter-scss/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       SCSS,
		FileExtensions: []string{".scss"},
		Grammar:        tree_sitter_scss.Language,
	})
}
