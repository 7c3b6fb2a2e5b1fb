package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benedikt-weyer/umlit/pkg/core"
	"github.com/benedikt-weyer/umlit/pkg/token"
)

// parseNode parses the remainder of a node declaration after its
// `[ID]` has been consumed:
//
//	node → '[' ID ']' label? ('@' NUMBER ',' NUMBER)? ('{' block '}')?
func (p *Parser) parseNode(idTok Token) {
	node := &core.Node{ID: idTok.Literal}

	node.Label = p.collectLabel(token.AT, token.LBRACE)

	if p.match(token.AT) {
		x, okX := p.parseNumber()
		if !okX {
			return
		}
		if _, ok := p.expect(token.COMMA); !ok {
			return
		}
		y, okY := p.parseNumber()
		if !okY {
			return
		}
		node.X = &x
		node.Y = &y
	}

	p.attach(node, idTok)

	if p.match(token.LBRACE) {
		p.scopes = append(p.scopes, node)
		p.parseBlock()
		p.scopes = p.scopes[:len(p.scopes)-1]
		p.expect(token.RBRACE)
	}
}

// attach adds the node to the innermost open scope or to the root
// list. A node opened past MaxDepth is not attached; a structural
// warning is recorded and parsing continues.
func (p *Parser) attach(node *core.Node, idTok Token) {
	if len(p.scopes) >= MaxDepth {
		p.warn(idTok, fmt.Sprintf("node %q exceeds maximum nesting depth %d and was dropped", node.ID, MaxDepth))
		return
	}
	if len(p.scopes) > 0 {
		parent := p.scopes[len(p.scopes)-1]
		parent.Children = append(parent.Children, node)
	} else {
		p.ast.RootNodes = append(p.ast.RootNodes, node)
	}
}

// collectLabel joins the literals of all tokens up to one of the stop
// types, a newline, a closing brace or EOF, separated by single
// spaces. Exact label whitespace is not preserved.
func (p *Parser) collectLabel(stops ...token.Type) string {
	var parts []string
	for {
		t := p.current()
		if t.Type == token.NEWLINE || t.Type == token.RBRACE || t.Type == token.EOF {
			break
		}
		stopped := false
		for _, s := range stops {
			if t.Type == s {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}
		parts = append(parts, t.Literal)
		p.advance()
	}
	return strings.Join(parts, " ")
}

// parseNumber consumes a NUMBER token and converts it.
func (p *Parser) parseNumber() (float64, bool) {
	tok, ok := p.expect(token.NUMBER)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.fail(fmt.Sprintf("invalid number literal %q", tok.Literal))
		return 0, false
	}
	return v, true
}
