package parser

import (
	"fmt"

	"github.com/benedikt-weyer/umlit/pkg/core"
	"github.com/benedikt-weyer/umlit/pkg/token"
)

// parsePortDecl parses a port declaration:
//
//	port-decl → 'port' '[' ID ']' ('on' '[' node-id ']' | 'with' '[' conn-name ']') SIDE (':' label)?
//
// The `on` form names the owning node explicitly and is legal
// anywhere; attachment searches the entire already-built tree, so a
// port may reference any node declared earlier in document order. The
// `with` form is only legal inside a node block: it attaches to the
// innermost open node and records the connector reference for later
// reuse by boundary synthesis.
func (p *Parser) parsePortDecl() {
	portTok := p.advance() // 'port'

	if _, ok := p.expect(token.LBRACKET); !ok {
		return
	}
	idTok, ok := p.expect(token.IDENT)
	if !ok {
		return
	}
	if _, ok := p.expect(token.RBRACKET); !ok {
		return
	}

	port := &core.Port{ID: idTok.Literal}

	var owner *core.Node
	switch {
	case p.match(token.ON):
		if _, ok := p.expect(token.LBRACKET); !ok {
			return
		}
		nodeTok, ok := p.expect(token.IDENT)
		if !ok {
			return
		}
		if _, ok := p.expect(token.RBRACKET); !ok {
			return
		}
		owner = p.ast.FindNode(nodeTok.Literal)
		if owner == nil {
			p.warn(nodeTok, fmt.Sprintf("port %q references unknown node %q and was dropped", port.ID, nodeTok.Literal))
		}
	case p.match(token.WITH):
		if _, ok := p.expect(token.LBRACKET); !ok {
			return
		}
		connTok, ok := p.expect(token.IDENT)
		if !ok {
			return
		}
		if _, ok := p.expect(token.RBRACKET); !ok {
			return
		}
		port.ConnectorRef = connTok.Literal
		if len(p.scopes) > 0 {
			owner = p.scopes[len(p.scopes)-1]
		} else {
			p.warn(portTok, fmt.Sprintf("port %q uses 'with' outside a node block and was dropped", port.ID))
		}
	default:
		p.fail(fmt.Sprintf(ErrUnexpectedToken, p.current().Type, "ON or WITH"))
		return
	}

	sideTok, ok := p.expect(token.SIDE)
	if !ok {
		return
	}
	side, valid := core.ParseSide(sideTok.Literal)
	if !valid {
		p.fail(ErrExpectedSide)
		return
	}
	port.Side = side

	if p.match(token.COLON) {
		port.Label = p.collectLabel()
	}

	if owner != nil {
		owner.Ports = append(owner.Ports, port)
	}
}
