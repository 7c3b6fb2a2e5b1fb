package parser

import "github.com/benedikt-weyer/umlit/pkg/token"

// Token is an alias for token.Token.
type Token = token.Token

// Position is an alias for token.Position.
type Position = token.Position

// Span is an alias for token.Span.
type Span = token.Span

// newToken creates a new token at the current lexer position.
func (l *Lexer) newToken(typ token.Type, literal string) Token {
	return Token{Type: typ, Literal: literal, Pos: l.currentPos()}
}
