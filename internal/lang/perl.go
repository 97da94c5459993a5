package lang

import tree_sitter_perl "github.com/tree-sitter/tree-sitter-perl/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Perl,
		Aliases:        []string{"pl"},
		FileExtensions: []string{".pl", ".pm"},
		Grammar:        tree_sitter_perl.Language,
	})
}
