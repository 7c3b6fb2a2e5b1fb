package parser

import (
	"strings"

	"github.com/benedikt-weyer/umlit/pkg/token"
)

// connectorLiterals are the fixed multi-character edge tokens, ordered
// longest first so `->delegate->` wins over `-->` wins over `->`.
var connectorLiterals = []struct {
	literal string
	typ     token.Type
}{
	{"->delegate->", token.DELEGATE_ARROW},
	{"-->", token.ARROW},
	{"->", token.ARROW},
}

// Lexer tokenizes diagram DSL input.
//
// The lexer never rejects input: anything it cannot classify becomes
// an opaque single-character STRING token, deferring failure to the
// parser.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	// keepTrivia controls whether inter-token whitespace runs are
	// emitted as WHITESPACE tokens (for highlighting consumers) or
	// skipped.
	keepTrivia bool
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// NewLexerWithTrivia creates a Lexer that emits WHITESPACE tokens
// instead of skipping whitespace runs.
func NewLexerWithTrivia(input string) *Lexer {
	l := NewLexer(input)
	l.keepTrivia = true
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() Position {
	return Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() Token {
	if tok, ok := l.whitespace(); ok {
		return tok
	}

	pos := l.currentPos()

	var tok Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case '\n':
		tok = l.newToken(token.NEWLINE, "\n")
	case '[':
		tok = l.newToken(token.LBRACKET, "[")
	case ']':
		tok = l.newToken(token.RBRACKET, "]")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case '@':
		tok = l.newToken(token.AT, "@")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case ':':
		tok = l.newToken(token.COLON, ":")
	default:
		// Multi-character connector literals, longest match first.
		if lit, typ, ok := l.matchConnectorLiteral(); ok {
			tok = Token{Type: typ, Literal: lit, Pos: pos}
			return tok
		}
		// Lollipop interface notation: a balanced run of parens
		// bounded by dashes.
		if lit, ok := l.matchInterfaceNotation(); ok {
			tok = Token{Type: token.INTERFACE_CONNECTOR, Literal: lit, Pos: pos}
			return tok
		}
		switch {
		case isIdentStart(l.ch):
			lit := l.readIdentifier()
			tok = Token{Type: token.LookupIdent(lit), Literal: lit, Pos: pos}
			return tok
		case isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekChar())):
			tok = Token{Type: token.NUMBER, Literal: l.readNumber(), Pos: pos}
			return tok
		default:
			// Opaque fallback. Never an error.
			tok = l.newToken(token.STRING, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// whitespace skips (or, in trivia mode, collects) a run of spaces,
// tabs and carriage returns. Newlines are significant and are not
// part of a whitespace run.
func (l *Lexer) whitespace() (Token, bool) {
	pos := l.currentPos()
	start := l.pos
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
	if l.keepTrivia && l.pos > start {
		return Token{Type: token.WHITESPACE, Literal: l.input[start:l.pos], Pos: pos}, true
	}
	return Token{}, false
}

// matchConnectorLiteral tries the fixed arrow literals at the current
// position, longest first.
func (l *Lexer) matchConnectorLiteral() (string, token.Type, bool) {
	if l.ch != '-' {
		return "", 0, false
	}
	remaining := l.input[l.pos:]
	for _, c := range connectorLiterals {
		if strings.HasPrefix(remaining, c.literal) {
			for range c.literal {
				l.readChar()
			}
			return c.literal, c.typ, true
		}
	}
	return "", 0, false
}

// matchInterfaceNotation scans a dash-delimited run of parens such as
// -())- or -(-. It only consumes if the full pattern is present.
func (l *Lexer) matchInterfaceNotation() (string, bool) {
	if l.ch != '-' {
		return "", false
	}
	j := l.pos + 1
	for j < len(l.input) && (l.input[j] == '(' || l.input[j] == ')') {
		j++
	}
	// Need at least one paren and a closing dash.
	if j == l.pos+1 || j >= len(l.input) || l.input[j] != '-' {
		return "", false
	}
	lit := l.input[l.pos : j+1]
	for range lit {
		l.readChar()
	}
	return lit, true
}

// readIdentifier reads an identifier: alphanumerics, underscores and
// embedded dots (node.port qualification). A dash is treated as part
// of the identifier unless it is immediately followed by '>', '(' or
// ')', in which case it terminates the identifier so the connector
// scan can take over.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for {
		switch {
		case isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '.':
			l.readChar()
		case l.ch == '-':
			next := l.peekChar()
			if next == '>' || next == '(' || next == ')' {
				return l.input[start:l.pos]
			}
			l.readChar()
		default:
			return l.input[start:l.pos]
		}
	}
}

// readNumber reads a numeric literal with an optional leading minus
// and optional decimal part.
func (l *Lexer) readNumber() string {
	start := l.pos
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.pos]
}

// isLetter returns true if ch is an ASCII letter.
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isIdentStart returns true if ch can begin an identifier.
func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_'
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, terminated by EOF.
func Tokenize(input string) []Token {
	return collect(NewLexer(input))
}

// TokenizeWithTrivia returns all tokens including WHITESPACE runs,
// terminated by EOF. Used by syntax-highlighting consumers that need
// to reconstruct the exact source text.
func TokenizeWithTrivia(input string) []Token {
	return collect(NewLexerWithTrivia(input))
}

func collect(l *Lexer) []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
