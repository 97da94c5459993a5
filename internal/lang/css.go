package lang

import tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       CSS,
		FileExtensions: []string{".css"},
		Grammar:        tree_sitter_css.Language,
	})
}
