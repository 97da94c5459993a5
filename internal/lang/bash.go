package lang

import tree_sitter_bash "github.com/tree-sitter/tree-sitter-bash/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Bash,
		Aliases:        []string{"sh", "shell", "zsh"},
		FileExtensions: []string{".sh", ".bash", ".zsh"},
		Grammar:        tree_sitter_bash.Language,
	})
}
