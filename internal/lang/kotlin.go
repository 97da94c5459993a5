package lang

import tree_sitter_kotlin "github.com/tree-sitter-grammars/tree-sitter-kotlin/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Kotlin,
		Aliases:        []string{"kt"},
		FileExtensions: []string{".kt", ".kts"},
		Grammar:        tree_sitter_kotlin.Language,
	})
}
