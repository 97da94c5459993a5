package lang

import tree_sitter_yaml "github.com/tree-sitter-grammars/tree-sitter-yaml/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       YAML,
		Aliases:        []string{"yml"},
		FileExtensions: []string{".yaml", ".yml"},
		Grammar:        tree_sitter_yaml.Language,
	})
}
