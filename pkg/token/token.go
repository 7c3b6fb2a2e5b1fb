// Package token defines the token types for the diagram DSL.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	NEWLINE
	WHITESPACE // emitted only in trivia mode

	// Literals
	IDENT  // identifier, alphanumeric plus embedded dots (node.port)
	NUMBER // 42, -17, 3.5
	STRING // opaque single-character fallback; the lexer never rejects input

	// Delimiters
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }
	AT       // @
	COMMA    // ,
	COLON    // :

	// Connectors
	ARROW               // -> or -->
	DELEGATE_ARROW      // ->delegate->
	INTERFACE_CONNECTOR // lollipop notation, e.g. -())- or -(()-

	// Keywords
	PORT
	ON
	WITH
	SIDE // left, right, top, bottom
)

var names = map[Type]string{
	EOF:                 "EOF",
	NEWLINE:             "NEWLINE",
	WHITESPACE:          "WHITESPACE",
	IDENT:               "IDENT",
	NUMBER:              "NUMBER",
	STRING:              "STRING",
	LBRACKET:            "[",
	RBRACKET:            "]",
	LBRACE:              "{",
	RBRACE:              "}",
	AT:                  "@",
	COMMA:               ",",
	COLON:               ":",
	ARROW:               "ARROW",
	DELEGATE_ARROW:      "DELEGATE_ARROW",
	INTERFACE_CONNECTOR: "INTERFACE_CONNECTOR",
	PORT:                "PORT",
	ON:                  "ON",
	WITH:                "WITH",
	SIDE:                "SIDE",
}

// String returns the display name of the token type.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// Token is a lexical token with its source position.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// keywords maps reserved identifiers to their token types.
// Sides share one token type; the literal carries which side.
var keywords = map[string]Type{
	"port":   PORT,
	"on":     ON,
	"with":   WITH,
	"left":   SIDE,
	"right":  SIDE,
	"top":    SIDE,
	"bottom": SIDE,
}

// LookupIdent returns the keyword type for ident, or IDENT.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}
