package lang

import tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       PHP,
		FileExtensions: []string{".php"},
		Grammar:        tree_sitter_php.LanguagePHPOnly,
	})
}
