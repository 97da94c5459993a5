package parser

import (
	"fmt"
	"io"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

const dumpTextLimit = 60

// DumpTree writes an indented outline of the tree rooted at node, one line
// per node with its kind, parent kind, byte range and a text preview.
func DumpTree(w io.Writer, node *tree_sitter.Node, source []byte) error {
	return dumpNode(w, node, source, 0)
}

func dumpNode(w io.Writer, node *tree_sitter.Node, source []byte, depth int) error {
	if node == nil {
		return nil
	}
	parentKind := "nil"
	if p := node.Parent(); p != nil {
		parentKind = p.Kind()
	}
	text := NodeText(node, source)
	if len(text) > dumpTextLimit {
		text = text[:dumpTextLimit] + "..."
	}
	_, err := fmt.Fprintf(w, "%s%s [%d,%d) (parent=%s) %q\n",
		strings.Repeat("  ", depth), node.Kind(), node.StartByte(), node.EndByte(), parentKind, text)
	if err != nil {
		return err
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if err := dumpNode(w, node.Child(i), source, depth+1); err != nil {
			return err
		}
	}
	return nil
}
