package lang

import tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       HTML,
		Aliases:        []string{"htm"},
		FileExtensions: []string{".html", ".htm"},
		Grammar:        tree_sitter_html.Language,
	})
}
