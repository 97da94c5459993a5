package lang

import tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Python,
		Aliases:        []string{"py", "python3"},
		FileExtensions: []string{".py", ".pyi"},
		Grammar:        tree_sitter_python.Language,
	})
}
