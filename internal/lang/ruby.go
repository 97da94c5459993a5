package lang

import tree_sitter_ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Ruby,
		Aliases:        []string{"rb"},
		FileExtensions: []string{".rb", ".rake", ".gemspec"},
		Grammar:        tree_sitter_ruby.Language,
	})
}
