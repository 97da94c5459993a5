package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Diagnostic is a syntax problem the error-tolerant parser recovered from.
type Diagnostic struct {
	Kind      string `json:"kind"` // "error" or "missing"
	Type      string `json:"type"` // node kind; for "missing", the expected token
	StartByte uint   `json:"start_byte"`
	EndByte   uint   `json:"end_byte"`
	Row       uint   `json:"row"`    // 0-based
	Column    uint   `json:"column"` // 0-based, in bytes
}

// Check parses source as language and reports ERROR and MISSING nodes.
// A clean parse returns an empty slice.
func Check(source []byte, language string) ([]Diagnostic, error) {
	l, err := Resolve(language)
	if err != nil {
		return nil, err
	}
	tree, err := Parse(l, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	out := []Diagnostic{}
	root := tree.RootNode()
	if !root.HasError() {
		return out, nil
	}

	Walk(root, func(n *tree_sitter.Node) bool {
		var kind string
		switch {
		case n.IsMissing():
			kind = "missing"
		case n.IsError():
			kind = "error"
		default:
			return n.HasError()
		}
		pos := n.StartPosition()
		out = append(out, Diagnostic{
			Kind:      kind,
			Type:      n.Kind(),
			StartByte: n.StartByte(),
			EndByte:   n.EndByte(),
			Row:       pos.Row,
			Column:    pos.Column,
		})
		return false
	})
	return out, nil
}
