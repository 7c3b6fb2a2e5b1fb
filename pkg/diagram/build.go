// Package diagram flattens a parsed AST into the diagram model and
// performs boundary-crossing connector synthesis.
//
// The flat model keeps the tree shape as explicit parent/child ID
// links so downstream passes (layout, renderers) can address nodes by
// stable keys instead of chasing embedded pointers.
package diagram

import (
	"github.com/benedikt-weyer/umlit/pkg/core"
)

// Build flattens the node tree into parallel node/port lists in
// pre-order, assigning depth and parent links, then runs boundary
// synthesis over every connector. Ports manufactured by synthesis are
// recorded in the tree view as well, so both views keep describing
// the same structure.
func Build(ast *core.DiagramAST) *core.Diagram {
	d := core.NewDiagram(ast.Type)

	for _, root := range ast.RootNodes {
		flatten(d, root, "", 0)
	}

	s := &synthesizer{ast: ast, diagram: d}
	for _, c := range ast.Connectors {
		s.process(c)
	}

	return d
}

// flatten adds the subtree rooted at n to the diagram in pre-order.
func flatten(d *core.Diagram, n *core.Node, parentID string, depth int) {
	fn := &core.FlatNode{
		ID:       n.ID,
		Label:    n.Label,
		ParentID: parentID,
		Depth:    depth,
		W:        n.W,
		H:        n.H,
	}
	if n.HasAuthoredPos() {
		fn.X = *n.X
		fn.Y = *n.Y
		fn.Authored = true
	}
	for _, c := range n.Children {
		fn.ChildIDs = append(fn.ChildIDs, c.ID)
	}
	d.AddNode(fn)

	for _, p := range n.Ports {
		port := *p
		d.Ports = append(d.Ports, &core.PlacedPort{NodeID: n.ID, Port: port})
	}

	for _, c := range n.Children {
		flatten(d, c, n.ID, depth+1)
	}
}
