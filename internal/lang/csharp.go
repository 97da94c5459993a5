package lang

import tree_sitter_c_sharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       CSharp,
		Aliases:        []string{"csharp", "c#", "cs"},
		FileExtensions: []string{".cs"},
		Grammar:        tree_sitter_c_sharp.Language,
	})
}
