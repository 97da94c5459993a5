package lang

import tree_sitter_toml "github.com/tree-sitter-grammars/tree-sitter-toml/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       TOML,
		FileExtensions: []string{".toml"},
		Grammar:        tree_sitter_toml.Language,
	})
}
