package parser

import "fmt"

// ParseError represents a parsing error with position information.
// One ParseError aborts the whole parse attempt: no partial AST is
// exposed for a document that failed to parse.
type ParseError struct {
	Pos     Position
	Span    Span // range of the offending token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages.
const (
	ErrUnexpectedToken = "unexpected token %s, expected %s"
	ErrExpectedNodeID  = "expected node identifier"
	ErrExpectedSide    = "expected side (left, right, top, bottom)"
)
