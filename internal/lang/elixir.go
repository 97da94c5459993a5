package lang

import tree_sitter_elixir "github.com/tree-sitter/tree-sitter-elixir/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Elixir,
		Aliases:        []string{"ex"},
		FileExtensions: []string{".ex", ".exs"},
		Grammar:        tree_sitter_elixir.Language,
	})
}
