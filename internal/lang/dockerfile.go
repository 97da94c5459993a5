package lang

import tree_sitter_dockerfile "github.com/camdencheek/tree-sitter-dockerfile/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Dockerfile,
		Aliases:        []string{"docker"},
		FileExtensions: []string{".dockerfile"},
		Grammar:        tree_sitter_dockerfile.Language,
	})
}
