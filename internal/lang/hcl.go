package lang

import tree_sitter_hcl "github.com/tree-sitter-grammars/tree-sitter-hcl/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       HCL,
		Aliases:        []string{"terraform", "tf"},
		FileExtensions: []string{".hcl", ".tf", ".tfvars"},
		Grammar:        tree_sitter_hcl.Language,
	})
}
