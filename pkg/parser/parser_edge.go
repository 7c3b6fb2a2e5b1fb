package parser

import (
	"fmt"
	"strings"

	"github.com/benedikt-weyer/umlit/pkg/core"
	"github.com/benedikt-weyer/umlit/pkg/token"
)

// parseEdge parses an edge statement. name is the `[name]` prefix if
// one was consumed by the bracket disambiguation, else empty.
//
//	edge → (iface-name identifier | identifier) connector identifier (':' label)?
//
// Either identifier may be `node` or `node.port`.
func (p *Parser) parseEdge(name string) {
	firstTok, ok := p.expect(token.IDENT)
	if !ok {
		return
	}

	var iface, source string
	switch {
	case p.isConnector():
		source = firstTok.Literal
	case p.check(token.IDENT):
		iface = firstTok.Literal
		source = p.advance().Literal
		if !p.isConnector() {
			p.fail(fmt.Sprintf("expected connector after %q", source))
			return
		}
	default:
		p.fail(fmt.Sprintf("expected connector or identifier after %q", firstTok.Literal))
		return
	}

	connTok := p.advance()

	targetTok, ok := p.expect(token.IDENT)
	if !ok {
		return
	}

	var label string
	if p.match(token.COLON) {
		label = p.collectLabel()
	}

	srcNode, srcPort := splitQualified(source)
	tgtNode, tgtPort := splitQualified(targetTok.Literal)

	conn := &core.Connector{
		Name:       name,
		Interface:  iface,
		Source:     srcNode,
		SourcePort: srcPort,
		Target:     tgtNode,
		TargetPort: tgtPort,
		Label:      label,
	}
	if name != "" {
		conn.ID = name
	} else {
		conn.ID = p.nextConnectorID()
	}

	switch connTok.Type {
	case token.DELEGATE_ARROW:
		conn.Kind = core.KindDelegate
		conn.Stereotype = "delegate"
	case token.INTERFACE_CONNECTOR:
		conn.Kind = core.KindInterface
		conn.EdgeType = connTok.Literal
	default:
		conn.Kind = core.KindPlain
	}

	p.ast.Connectors = append(p.ast.Connectors, conn)
}

// splitQualified splits a `node.port` identifier into its node and
// port parts. Identifiers without a dot have no port qualifier.
func splitQualified(s string) (node, port string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
