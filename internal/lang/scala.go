package lang

import tree_sitter_scala "github.com/tree-sitter/tree-sitter-scala/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Scala,
		FileExtensions: []string{".scala", ".sc"},
		Grammar:        tree_sitter_scala.Language,
	})
}
