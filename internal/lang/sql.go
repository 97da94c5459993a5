package lang

import tree_sitter_sql "github.com/DerekStride/tree-sitter-sql/bindings/go"

func init() {
	Register(&LanguageSpec{
		Language:       SQL,
		FileExtensions: []string{".sql"},
		Grammar:        tree_sitter_sql.Language,
	})
}
