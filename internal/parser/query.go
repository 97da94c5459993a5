package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// Capture is one (match, capture) pair produced by Query.
type Capture struct {
	Capture   string `json:"capture"`    // capture name from the pattern, without '@'
	Text      string `json:"text"`       // source[StartByte:EndByte]
	Type      string `json:"type"`       // grammar node kind
	StartByte uint   `json:"start_byte"` // inclusive
	EndByte   uint   `json:"end_byte"`   // exclusive
}

// Query parses source as language and runs the tree-sitter query pattern
// over it, returning one Capture per capture of every match in match order.
// Overlapping matches are reported as-is.
//
// The stages short-circuit: an unknown language yields ErrUnsupportedLanguage,
// a parser that returns no tree ErrParseFailure, and a pattern that does not
// compile a *QueryError wrapping ErrInvalidQuery. Calls are independent and may
// run concurrently.
func Query(source []byte, language, pattern string) ([]Capture, error) {
	l, err := Resolve(language)
	if err != nil {
		return nil, err
	}
	g, err := grammarFor(l)
	if err != nil {
		return nil, err
	}

	tree, err := g.parse(l, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	cq, err := queries.acquire(l, g, pattern)
	if err != nil {
		return nil, err
	}
	defer queries.release(cq)

	return execute(cq.query, tree.RootNode(), source), nil
}

func execute(q *tree_sitter.Query, root *tree_sitter.Node, source []byte) []Capture {
	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	names := q.CaptureNames()
	out := []Capture{}

	matches := cursor.Matches(q, root, source)
	for m := matches.Next(); m != nil; m = matches.Next() {
		for _, c := range m.Captures {
			start, end := c.Node.StartByte(), c.Node.EndByte()
			out = append(out, Capture{
				Capture:   names[c.Index],
				Text:      string(source[start:end]),
				Type:      c.Node.Kind(),
				StartByte: start,
				EndByte:   end,
			})
		}
	}
	return out
}
