package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedikt-weyer/umlit/pkg/parser"
	"github.com/benedikt-weyer/umlit/pkg/token"
)

// kinds strips a token slice down to its types for compact assertions.
func kinds(tokens []parser.Token) []token.Type {
	out := make([]token.Type, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Type)
	}
	return out
}

func TestLexerDelimiters(t *testing.T) {
	tokens := parser.Tokenize("[]{}@,:")
	assert.Equal(t, []token.Type{
		token.LBRACKET, token.RBRACKET, token.LBRACE, token.RBRACE,
		token.AT, token.COMMA, token.COLON, token.EOF,
	}, kinds(tokens))
}

func TestLexerConnectorLongestMatch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    token.Type
		literal string
	}{
		{"plain arrow", "->", token.ARROW, "->"},
		{"long arrow", "-->", token.ARROW, "-->"},
		{"delegate arrow", "->delegate->", token.DELEGATE_ARROW, "->delegate->"},
		{"ball socket", "-())-", token.INTERFACE_CONNECTOR, "-())-"},
		{"socket ball", "-(()-", token.INTERFACE_CONNECTOR, "-(()-"},
		{"socket only", "-)-", token.INTERFACE_CONNECTOR, "-)-"},
		{"ball only", "-(-", token.INTERFACE_CONNECTOR, "-(-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := parser.Tokenize(tt.input)
			require.Len(t, tokens, 2) // connector + EOF
			assert.Equal(t, tt.want, tokens[0].Type)
			assert.Equal(t, tt.literal, tokens[0].Literal)
		})
	}
}

func TestLexerIdentifiers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Shop", "Shop"},
		{"qualified", "node.port", "node.port"},
		{"diagram type", "uml2.5-component", "uml2.5-component"},
		{"embedded dash", "shopping-cart", "shopping-cart"},
		{"underscore", "_hidden", "_hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := parser.Tokenize(tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, token.IDENT, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Literal)
		})
	}
}

// A dash terminates an identifier only when the connector scan needs
// it: immediately before '>', '(' or ')'.
func TestLexerIdentifierDashTermination(t *testing.T) {
	tokens := parser.Tokenize("A->B")
	require.Len(t, tokens, 4)
	assert.Equal(t, "A", tokens[0].Literal)
	assert.Equal(t, token.ARROW, tokens[1].Type)
	assert.Equal(t, "B", tokens[2].Literal)

	tokens = parser.Tokenize("A-())-B")
	require.Len(t, tokens, 4)
	assert.Equal(t, "A", tokens[0].Literal)
	assert.Equal(t, token.INTERFACE_CONNECTOR, tokens[1].Type)
	assert.Equal(t, "-())-", tokens[1].Literal)
	assert.Equal(t, "B", tokens[2].Literal)
}

func TestLexerKeywords(t *testing.T) {
	tokens := parser.Tokenize("port on with left right top bottom ports")
	assert.Equal(t, []token.Type{
		token.PORT, token.ON, token.WITH,
		token.SIDE, token.SIDE, token.SIDE, token.SIDE,
		token.IDENT, // "ports" is not a keyword
		token.EOF,
	}, kinds(tokens))
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"-17", "-17"},
		{"3.5", "3.5"},
		{"-0.25", "-0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := parser.Tokenize(tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, token.NUMBER, tokens[0].Type)
			assert.Equal(t, tt.want, tokens[0].Literal)
		})
	}
}

func TestLexerNewlinesSignificant(t *testing.T) {
	tokens := parser.Tokenize("A\nB")
	assert.Equal(t, []token.Type{
		token.IDENT, token.NEWLINE, token.IDENT, token.EOF,
	}, kinds(tokens))
}

// The lexer never rejects input: unknown characters become opaque
// single-character STRING tokens.
func TestLexerOpaqueFallback(t *testing.T) {
	tokens := parser.Tokenize("A ~ B")
	require.Len(t, tokens, 4)
	assert.Equal(t, token.STRING, tokens[1].Type)
	assert.Equal(t, "~", tokens[1].Literal)
}

func TestLexerTriviaMode(t *testing.T) {
	input := "[A]  Foo"

	plain := parser.Tokenize(input)
	assert.Equal(t, []token.Type{
		token.LBRACKET, token.IDENT, token.RBRACKET, token.IDENT, token.EOF,
	}, kinds(plain))

	trivia := parser.TokenizeWithTrivia(input)
	assert.Equal(t, []token.Type{
		token.LBRACKET, token.IDENT, token.RBRACKET, token.WHITESPACE, token.IDENT, token.EOF,
	}, kinds(trivia))
	assert.Equal(t, "  ", trivia[3].Literal)

	// Trivia tokens reconstruct the source exactly.
	var rebuilt string
	for _, tok := range trivia {
		rebuilt += tok.Literal
	}
	assert.Equal(t, input, rebuilt)
}

func TestLexerPositions(t *testing.T) {
	tokens := parser.Tokenize("[A]\n B")
	require.Len(t, tokens, 6)

	assert.Equal(t, 1, tokens[0].Pos.Line) // '['
	assert.Equal(t, 1, tokens[0].Pos.Column)
	assert.Equal(t, 1, tokens[1].Pos.Line) // 'A'
	assert.Equal(t, 2, tokens[1].Pos.Column)
	assert.Equal(t, 2, tokens[4].Pos.Line) // 'B'
	assert.Equal(t, 2, tokens[4].Pos.Column)
}
