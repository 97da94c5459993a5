package parser

import (
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/novalym/velm-native/internal/lang"
)

// grammar is a built tree-sitter language plus a pool of parsers bound to it.
// Once built it is only read, so it is shared freely between goroutines.
type grammar struct {
	lang    *tree_sitter.Language
	parsers sync.Pool
}

var (
	grammarsMu sync.Mutex
	grammars   = map[*lang.LanguageSpec]*grammar{}
)

// grammarFor returns the cached grammar for l, building it on first use.
// Keyed by spec so that re-registering a language picks up the new grammar.
func grammarFor(l lang.Language) (*grammar, error) {
	spec := lang.ForLanguage(l)
	if spec == nil || spec.Grammar == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, l)
	}

	grammarsMu.Lock()
	defer grammarsMu.Unlock()
	if g, ok := grammars[spec]; ok {
		return g, nil
	}

	ptr := spec.Grammar()
	if ptr == nil {
		return nil, fmt.Errorf("%w: %s has no grammar", ErrUnsupportedLanguage, l)
	}
	tsLang := tree_sitter.NewLanguage(ptr)

	// Build one parser up front so an ABI mismatch surfaces here rather than
	// inside the pool's New.
	first := tree_sitter.NewParser()
	if err := first.SetLanguage(tsLang); err != nil {
		first.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedLanguage, l, err)
	}

	g := &grammar{lang: tsLang}
	g.parsers.New = func() any {
		p := tree_sitter.NewParser()
		if err := p.SetLanguage(tsLang); err != nil {
			panic(fmt.Sprintf("set language: %v", err))
		}
		return p
	}
	g.parsers.Put(first)
	grammars[spec] = g
	return g, nil
}

func (g *grammar) parse(l lang.Language, source []byte) (*tree_sitter.Tree, error) {
	p, _ := g.parsers.Get().(*tree_sitter.Parser)
	if p == nil {
		return nil, fmt.Errorf("failed to get parser for language %s", l)
	}
	tree := p.Parse(source, nil)
	g.parsers.Put(p)

	if tree == nil {
		return nil, fmt.Errorf("%w: %s", ErrParseFailure, l)
	}
	return tree, nil
}

// Resolve maps a user-supplied language tag or alias to a registered Language.
func Resolve(tag string) (lang.Language, error) {
	spec, ok := lang.Lookup(tag)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	return spec.Language, nil
}

// GetLanguage returns the tree-sitter Language for a lang.Language.
func GetLanguage(l lang.Language) (*tree_sitter.Language, error) {
	g, err := grammarFor(l)
	if err != nil {
		return nil, err
	}
	return g.lang, nil
}

// Parse parses source code into a tree-sitter AST Tree.
// The caller must call tree.Close() when done.
// Parsers are pooled per language via sync.Pool to avoid per-file allocation.
func Parse(l lang.Language, source []byte) (*tree_sitter.Tree, error) {
	g, err := grammarFor(l)
	if err != nil {
		return nil, err
	}
	return g.parse(l, source)
}

// WalkFunc is called for each node during AST traversal.
// Return false to skip children.
type WalkFunc func(node *tree_sitter.Node) bool

// Walk traverses the AST in depth-first order.
func Walk(node *tree_sitter.Node, fn WalkFunc) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil {
			Walk(child, fn)
		}
	}
}

// NodeText returns the text content of a node.
func NodeText(node *tree_sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
