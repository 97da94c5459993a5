package lang

import tree_sitter_groovy "github.com/murtaza64/tree-sitter-groovy/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Groovy,
		Aliases:        []string{"gradle"},
		FileExtensions: []string{".groovy", ".gradle"},
		Grammar:        tree_sitter_groovy.Language,
	})
}
