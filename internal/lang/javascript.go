package lang

import tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       JavaScript,
		Aliases:        []string{"js", "jsx", "node"},
		FileExtensions: []string{".js", ".jsx", ".mjs", ".cjs"},
		Grammar:        tree_sitter_javascript.Language,
	})
}
