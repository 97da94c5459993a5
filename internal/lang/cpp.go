package lang

import tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       CPP,
		Aliases:        []string{"c++", "cxx"},
		FileExtensions: []string{".cpp", ".h", ".hpp", ".cc", ".cxx", ".hxx", ".hh", ".ixx", ".cppm", ".ccm"},
		Grammar:        tree_sitter_cpp.Language,
	})
}
