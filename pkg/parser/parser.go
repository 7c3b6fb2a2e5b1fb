// Package parser provides lexing and parsing for the diagram DSL.
//
// # Usage
//
//	res, err := parser.Parse("[uml2.5-component]{[A] Foo\n[B] Bar\nA -> B}")
//	if err != nil {
//	    // handle error
//	}
//	ast := res.AST
//
// # Grammar Overview
//
// The parser implements a recursive descent parser over a materialized
// token slice with an explicit cursor; lookahead is a checkpoint of the
// cursor index that is rewound on mismatch.
//
//	diagram    → '[' diagram-type ']' '{' block '}' | block
//	block      → (statement | NEWLINE)*
//	statement  → port-decl | named-edge | node | edge
//	node       → '[' ID ']' label? ('@' NUMBER ',' NUMBER)? ('{' block '}')?
//	edge       → (iface-name identifier | identifier) connector identifier (':' label)?
//	port-decl  → 'port' '[' ID ']' ('on' '[' node-id ']' | 'with' '[' conn-name ']') SIDE (':' label)?
//	connector  → '->' | '-->' | '->delegate->' | interface-notation
//
// The wrapper is recognized only when the identifier after '[' names
// one of the fixed diagram types; otherwise '[' begins ordinary block
// content.
package parser

import (
	"fmt"

	"github.com/benedikt-weyer/umlit/pkg/core"
	"github.com/benedikt-weyer/umlit/pkg/token"
)

// MaxDepth is the nesting depth past which node declarations are
// dropped with a structural warning rather than attached to the tree.
// Soft by choice: a best-effort partial diagram is more useful while
// editing than a hard failure.
const MaxDepth = 50

// Result is the outcome of one successful parse attempt: the AST plus
// any non-fatal structural warnings collected along the way.
type Result struct {
	AST         *core.DiagramAST
	Diagnostics []core.Diagnostic
}

// Parser parses diagram DSL into an AST.
type Parser struct {
	tokens []Token
	cur    int // cursor index into tokens

	ast    *core.DiagramAST
	scopes []*core.Node // stack of currently open node blocks
	diags  []core.Diagnostic
	err    *ParseError // first fatal error; aborts the parse

	connSeq int // sequence for connector IDs of unnamed edges
}

// NewParser creates a parser over the given input. Documents without
// an explicit wrapper are assumed to be component diagrams.
func NewParser(input string) *Parser {
	return NewParserWithType(input, core.DiagramComponent)
}

// NewParserWithType creates a parser that assumes the given diagram
// type for documents without an explicit `[diagram-type]` wrapper. An
// explicit wrapper always wins.
func NewParserWithType(input string, dt core.DiagramType) *Parser {
	return &Parser{
		tokens: Tokenize(input),
		ast:    &core.DiagramAST{Type: dt},
	}
}

// Parse tokenizes and parses the input. On a syntax error no partial
// AST is returned; the caller is expected to discard any previous
// diagram.
func Parse(input string) (*Result, error) {
	return ParseWithType(input, core.DiagramComponent)
}

// ParseWithType parses with the given diagram type assumed for
// unwrapped documents.
func ParseWithType(input string, dt core.DiagramType) (*Result, error) {
	p := NewParserWithType(input, dt)
	p.parseDocument()
	if p.err != nil {
		return nil, p.err
	}
	return &Result{AST: p.ast, Diagnostics: p.diags}, nil
}

// ---------- Cursor Helpers ----------

// mark is a checkpoint of the cursor that can be rewound to.
type mark int

func (p *Parser) mark() mark    { return mark(p.cur) }
func (p *Parser) rewind(m mark) { p.cur = int(m) }

// current returns the token under the cursor. The token slice always
// ends in EOF, so the cursor is clamped rather than overrun.
func (p *Parser) current() Token {
	if p.cur >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.cur]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.current()
	if p.cur < len(p.tokens)-1 {
		p.cur++
	}
	return tok
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.Type) bool {
	return p.current().Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise records a
// fatal parse error.
func (p *Parser) expect(t token.Type) (Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.fail(fmt.Sprintf(ErrUnexpectedToken, p.current().Type, t))
	return p.current(), false
}

// fail records the first fatal parse error; the parse unwinds from it.
func (p *Parser) fail(msg string) {
	if p.err == nil {
		tok := p.current()
		p.err = &ParseError{Pos: tok.Pos, Span: tok.Span(), Message: msg}
	}
}

// warn records a non-fatal structural diagnostic anchored to the
// token of the dropped construct.
func (p *Parser) warn(tok Token, msg string) {
	p.diags = append(p.diags, core.Diagnostic{
		Severity: core.SeverityWarning,
		Message:  msg,
		Pos:      tok.Pos,
		Span:     tok.Span(),
	})
}

// isConnector returns true if the current token is any edge connector.
func (p *Parser) isConnector() bool {
	switch p.current().Type {
	case token.ARROW, token.DELEGATE_ARROW, token.INTERFACE_CONNECTOR:
		return true
	}
	return false
}

// ---------- Document ----------

// parseDocument recognizes the optional `[diagram-type] { ... }`
// wrapper, then parses block content.
func (p *Parser) parseDocument() {
	p.skipNewlines()

	if p.check(token.LBRACKET) {
		m := p.mark()
		p.advance()
		if p.check(token.IDENT) && core.IsDiagramType(p.current().Literal) {
			p.ast.Type = core.DiagramType(p.advance().Literal)
			if _, ok := p.expect(token.RBRACKET); !ok {
				return
			}
			p.skipNewlines()
			if _, ok := p.expect(token.LBRACE); !ok {
				return
			}
			p.parseBlock()
			if _, ok := p.expect(token.RBRACE); !ok {
				return
			}
			p.skipNewlines()
			if p.err == nil && !p.check(token.EOF) {
				p.fail(fmt.Sprintf(ErrUnexpectedToken, p.current().Type, token.EOF))
			}
			return
		}
		// Not a wrapper: '[' begins ordinary block content.
		p.rewind(m)
	}

	p.parseBlock()
	if p.err == nil && !p.check(token.EOF) {
		p.fail(fmt.Sprintf(ErrUnexpectedToken, p.current().Type, token.EOF))
	}
}

// parseBlock parses statements until '}' or EOF.
func (p *Parser) parseBlock() {
	for p.err == nil {
		p.skipNewlines()
		if p.check(token.RBRACE) || p.check(token.EOF) {
			return
		}
		p.parseStatement()
	}
}

func (p *Parser) skipNewlines() {
	for p.match(token.NEWLINE) {
	}
}

// parseStatement dispatches on the current token.
func (p *Parser) parseStatement() {
	switch {
	case p.check(token.PORT):
		p.parsePortDecl()
	case p.check(token.LBRACKET):
		p.parseBracketStatement()
	case p.check(token.IDENT):
		p.parseEdge("")
	default:
		p.fail(fmt.Sprintf("unexpected token %s at start of statement", p.current().Type))
	}
}

// parseBracketStatement disambiguates `[X]` between a node declaration
// and a named edge. After consuming `[ID]` it checkpoints, consumes up
// to two further identifiers, and classifies as an edge if a connector
// token follows the second identifier (interface name + source) or the
// first (source only); otherwise it rewinds and parses a node.
func (p *Parser) parseBracketStatement() {
	p.advance() // '['
	idTok, ok := p.expect(token.IDENT)
	if !ok {
		return
	}
	if _, ok := p.expect(token.RBRACKET); !ok {
		return
	}

	m := p.mark()
	if p.match(token.IDENT) {
		if p.isConnector() {
			p.rewind(m)
			p.parseEdge(idTok.Literal)
			return
		}
		if p.match(token.IDENT) && p.isConnector() {
			p.rewind(m)
			p.parseEdge(idTok.Literal)
			return
		}
	}
	p.rewind(m)
	p.parseNode(idTok)
}

// nextConnectorID returns the ID for an unnamed connector.
func (p *Parser) nextConnectorID() string {
	p.connSeq++
	return fmt.Sprintf("c%d", p.connSeq)
}
