package lang

import tree_sitter_lua "github.com/tree-sitter-grammars/tree-sitter-lua/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       Lua,
		FileExtensions: []string{".lua"},
		Grammar:        tree_sitter_lua.Language,
	})
}
