package lang

import tree_sitter_haskell "github.com/tree-sitter/tree-sitter-haskell/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Haskell,
		Aliases:        []string{"hs"},
		FileExtensions: []string{".hs"},
		Grammar:        tree_sitter_haskell.Language,
	})
}
