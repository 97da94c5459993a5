package lang

import tree_sitter_objc "github.com/tree-sitter-grammars/tree-sitter-objc/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       ObjectiveC,
		Aliases:        []string{"objective-c", "objectivec"},
		FileExtensions: []string{".m"},
		Grammar:        tree_sitter_objc.Language,
	})
}
