package lang

import tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Rust,
		Aliases:        []string{"rs"},
		FileExtensions: []string{".rs"},
		Grammar:        tree_sitter_rust.Language,
	})
}
