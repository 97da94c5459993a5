package parser

import (
	"errors"
	"fmt"

	"github.com/novalym/velm-native/internal/lang"
)

var (
	// ErrUnsupportedLanguage is returned when a language tag has no registered grammar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrParseFailure is returned when the parser produced no tree at all.
	// Syntax errors alone never cause it; see Check.
	ErrParseFailure = errors.New("parse failure")
	// ErrInvalidQuery is returned when a query pattern does not compile.
	ErrInvalidQuery = errors.New("invalid query")
)

// QueryError describes where a query pattern failed to compile.
// It matches ErrInvalidQuery under errors.Is.
type QueryError struct {
	Language lang.Language
	Row      uint
	Column   uint
	Offset   uint
	Message  string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s for %s at row %d, column %d (offset %d): %s",
		ErrInvalidQuery, e.Language, e.Row, e.Column, e.Offset, e.Message)
}

func (e *QueryError) Unwrap() error { return ErrInvalidQuery }
