package lang

import tree_sitter_swift "github.com/alex-pinkus/tree-sitter-swift/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Swift,
		FileExtensions: []string{".swift"},
		Grammar:        tree_sitter_swift.Language,
	})
}
