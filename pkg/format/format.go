package format

import (
	"github.com/benedikt-weyer/umlit/pkg/core"
)

// Format serializes an AST to DSL text. Node lines carry `@ x,y`
// whenever the node has coordinates (inserted or updated from
// layout); connector lines are emitted from their structure only, so
// formatting never touches edge geometry. The output parses back to
// an AST structurally equal to the input, up to label whitespace.
func Format(ast *core.DiagramAST) string {
	p := newPrinter()

	p.write("[" + string(ast.Type) + "] {")
	p.writeln()
	p.indent()

	for _, n := range ast.RootNodes {
		p.formatNode(n)
	}
	for _, c := range ast.Connectors {
		p.formatConnector(c)
	}

	p.dedent()
	p.write("}")
	p.writeln()

	return p.String()
}

// formatNode emits one node line, its block when it has children or
// with-form ports, and its on-form ports as trailing declarations.
func (p *Printer) formatNode(n *core.Node) {
	p.write("[" + n.ID + "]")
	if n.Label != "" {
		p.space()
		p.write(n.Label)
	}
	if n.HasAuthoredPos() {
		p.write(" @ " + number(*n.X) + "," + number(*n.Y))
	}

	withPorts, onPorts := splitPorts(n)

	if len(n.Children) > 0 || len(withPorts) > 0 {
		p.write(" {")
		p.writeln()
		p.indent()
		for _, c := range n.Children {
			p.formatNode(c)
		}
		// The with form is only legal inside the owning node's block.
		for _, port := range withPorts {
			p.write("port [" + port.ID + "] with [" + port.ConnectorRef + "] " + string(port.Side))
			p.formatLabelSuffix(port.Label)
			p.writeln()
		}
		p.dedent()
		p.write("}")
	}
	p.writeln()

	// The on form is legal anywhere after the node declaration.
	for _, port := range onPorts {
		p.write("port [" + port.ID + "] on [" + n.ID + "] " + string(port.Side))
		p.formatLabelSuffix(port.Label)
		p.writeln()
	}
}

// formatConnector emits one edge line.
func (p *Printer) formatConnector(c *core.Connector) {
	if c.Name != "" {
		p.write("[" + c.Name + "]")
		p.space()
	}
	if c.Interface != "" {
		p.write(c.Interface)
		p.space()
	}
	p.write(qualified(c.Source, c.SourcePort))
	p.space()
	p.write(connectorText(c))
	p.space()
	p.write(qualified(c.Target, c.TargetPort))
	p.formatLabelSuffix(c.Label)
	p.writeln()
}

func (p *Printer) formatLabelSuffix(label string) {
	if label != "" {
		p.write(" : " + label)
	}
}

// connectorText returns the edge token for a connector.
func connectorText(c *core.Connector) string {
	switch c.Kind {
	case core.KindDelegate:
		return "->delegate->"
	case core.KindInterface:
		return c.EdgeType
	default:
		return "->"
	}
}

// qualified joins a node ID with an optional port qualifier.
func qualified(node, port string) string {
	if port != "" {
		return node + "." + port
	}
	return node
}

// splitPorts separates a node's ports into with-form (connector
// reference) and on-form declarations.
func splitPorts(n *core.Node) (withPorts, onPorts []*core.Port) {
	for _, port := range n.Ports {
		if port.ConnectorRef != "" {
			withPorts = append(withPorts, port)
		} else {
			onPorts = append(onPorts, port)
		}
	}
	return withPorts, onPorts
}
