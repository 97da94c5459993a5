package lang

import tree_sitter_dart "github.com/UserNobody14/tree-sitter-dart/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Dart,
		FileExtensions: []string{".dart"},
		Grammar:        tree_sitter_dart.Language,
	})
}
