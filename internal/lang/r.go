package lang

import tree_sitter_r "github.com/r-lib/tree-sitter-r/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       R,
		FileExtensions: []string{".r"},
		Grammar:        tree_sitter_r.Language,
	})
}
