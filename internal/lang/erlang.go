package lang

import tree_sitter_erlang "github.com/tree-sitter/tree-sitter-erlang/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Erlang,
		Aliases:        []string{"erl"},
		FileExtensions: []string{".erl", ".hrl"},
		Grammar:        tree_sitter_erlang.Language,
	})
}
