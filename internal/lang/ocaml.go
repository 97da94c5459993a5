package lang

import tree_sitter_ocaml "github.com/tree-sitter/tree-sitter-ocaml/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       OCaml,
		Aliases:        []string{"ml"},
		FileExtensions: []string{".ml"},
		Grammar:        tree_sitter_ocaml.LanguageOCaml,
	})
}
