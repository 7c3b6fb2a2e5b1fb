package diagram

import (
	"github.com/google/uuid"

	"github.com/benedikt-weyer/umlit/pkg/core"
)

// DefaultPortSide is the side assigned to ports manufactured by
// boundary synthesis. Layout anchors port-attached external boxes off
// this side.
const DefaultPortSide = core.SideLeft

// synthesizer rewrites connectors that cross a component boundary.
//
// For an edge that connects a node nested one level inside a component
// to a node outside it, the user-facing shorthand is expanded into a
// port on the boundary node plus two connectors: an external one from
// the outside endpoint to the port (keeping the authored label and
// interface notation) and an internal one from the port to the nested
// endpoint with the interface polarity inverted. A ball on the public
// face becomes a socket on the private face and vice versa.
type synthesizer struct {
	ast     *core.DiagramAST
	diagram *core.Diagram
}

// process classifies one connector and appends its expansion (or the
// connector itself) to the diagram.
func (s *synthesizer) process(c *core.Connector) {
	// An edge addressed to a container's own port delegates into the
	// container regardless of where the other endpoint lives, or even
	// whether it is declared at all.
	if s.processPortQualified(c) {
		return
	}

	src := s.diagram.NodeByID(c.Source)
	tgt := s.diagram.NodeByID(c.Target)

	// Endpoints that don't resolve to declared nodes pass through for
	// the renderer to deal with.
	if src == nil || tgt == nil {
		s.append(c)
		return
	}

	// Same parent scope: nothing to synthesize.
	if src.ParentID == tgt.ParentID {
		s.append(c)
		return
	}

	// Nested target: source sits in the scope of the target's parent.
	// An edge between a node and its own container would make the
	// boundary an endpoint and the external leg a self loop, so that
	// shape is excluded here and passes through below.
	if boundary := s.diagram.NodeByID(tgt.ParentID); boundary != nil && boundary.ID != src.ID && boundary.ParentID == src.ParentID {
		s.synthesize(c, src.ID, tgt, boundary, false)
		return
	}
	// Nested source, mirrored.
	if boundary := s.diagram.NodeByID(src.ParentID); boundary != nil && boundary.ID != tgt.ID && boundary.ParentID == tgt.ParentID {
		s.synthesize(c, tgt.ID, src, boundary, true)
		return
	}

	// Remaining cross-scope shapes: endpoints nested under different
	// parents (sibling subtrees) or an edge between a node and its own
	// container. Both degrade to a direct pass-through connector; no
	// delegate chain or boundary port is produced.
	pass := *c
	pass.CrossLevel = true
	s.append(&pass)
}

// processPortQualified handles an edge whose endpoint is a port on a
// container (`Ext -())- O.p1` where O has children): the port is the
// boundary and the internal connector delegates from it to the
// container's first child. Returns false if the shape doesn't apply.
func (s *synthesizer) processPortQualified(c *core.Connector) bool {
	if c.TargetPort != "" {
		if boundary := s.containerNotEnclosing(c.Target, c.Source); boundary != nil {
			if inner := s.diagram.NodeByID(boundary.ChildIDs[0]); inner != nil {
				s.synthesize(c, c.Source, inner, boundary, false)
				return true
			}
		}
	}
	if c.SourcePort != "" {
		if boundary := s.containerNotEnclosing(c.Source, c.Target); boundary != nil {
			if inner := s.diagram.NodeByID(boundary.ChildIDs[0]); inner != nil {
				s.synthesize(c, c.Target, inner, boundary, true)
				return true
			}
		}
	}
	return false
}

// containerNotEnclosing returns the node when it resolves, has
// children, and the other endpoint is not one of those children (an
// inside endpoint is the ordinary nested-crossing shape instead).
func (s *synthesizer) containerNotEnclosing(id, otherID string) *core.FlatNode {
	n := s.diagram.NodeByID(id)
	if n == nil || len(n.ChildIDs) == 0 {
		return nil
	}
	if other := s.diagram.NodeByID(otherID); other != nil && other.ParentID == n.ID {
		return nil
	}
	return n
}

// synthesize expands one boundary-crossing connector. outerID is the
// endpoint outside the boundary node (it need not resolve to a
// declared node), nested the endpoint inside it. nestedIsSource
// mirrors the original edge direction: true when the nested endpoint
// was the connector's source.
func (s *synthesizer) synthesize(c *core.Connector, outerID string, nested, boundary *core.FlatNode, nestedIsSource bool) {
	port := s.resolvePort(c, boundary, nestedIsSource)

	internal := &core.Connector{
		ID:            synthID(c, "internal"),
		Name:          c.Name,
		Interface:     c.Interface,
		AutoGenerated: true,
		CrossLevel:    true,
	}
	switch c.Kind {
	case core.KindInterface:
		internal.Kind = core.KindInterface
		internal.EdgeType = core.InvertNotation(c.EdgeType)
	default:
		// Provide on the public face, delegate on the private face.
		internal.Kind = core.KindDelegate
		internal.Stereotype = "delegate"
	}

	external := &core.Connector{
		ID:         synthID(c, "external"),
		Name:       c.Name,
		Interface:  c.Interface,
		Kind:       c.Kind,
		EdgeType:   c.EdgeType,
		Label:      c.Label,
		Stereotype: c.Stereotype,
		CrossLevel: true,
	}

	// The authored port qualifier on the boundary side is consumed by
	// the boundary port; the nested endpoint attaches directly.
	if nestedIsSource {
		internal.Source = nested.ID
		internal.Target = boundary.ID
		internal.TargetPort = port.ID

		external.Source = boundary.ID
		external.SourcePort = port.ID
		external.Target = outerID
		external.TargetPort = c.TargetPort
	} else {
		internal.Source = boundary.ID
		internal.SourcePort = port.ID
		internal.Target = nested.ID

		external.Source = outerID
		external.SourcePort = c.SourcePort
		external.Target = boundary.ID
		external.TargetPort = port.ID
	}

	s.append(internal)
	s.append(external)
}

// resolvePort finds or creates the boundary port for a crossing
// connector. Reuse order: a port whose connector reference matches the
// connector's name, then a port whose ID matches the declared port
// qualifier on the boundary side, then a fresh port on the default
// side labeled from the connector.
func (s *synthesizer) resolvePort(c *core.Connector, boundary *core.FlatNode, nestedIsSource bool) *core.PlacedPort {
	if c.Name != "" {
		for _, p := range s.diagram.PortsOf(boundary.ID) {
			if p.ConnectorRef == c.Name {
				return p
			}
		}
	}

	qualifier := c.TargetPort
	if nestedIsSource {
		qualifier = c.SourcePort
	}
	if qualifier != "" {
		if p := s.diagram.PortByID(boundary.ID, qualifier); p != nil {
			return p
		}
	}

	id := qualifier
	if id == "" {
		id = "p-" + uuid.NewString()[:8]
	}
	port := &core.PlacedPort{
		NodeID: boundary.ID,
		Port: core.Port{
			ID:           id,
			Label:        c.Label,
			Side:         DefaultPortSide,
			ConnectorRef: c.Name,
		},
	}
	s.diagram.Ports = append(s.diagram.Ports, port)

	// Keep the tree view in step with the flat view.
	if n := s.ast.FindNode(boundary.ID); n != nil && n.FindPort(id) == nil {
		p := port.Port
		n.Ports = append(n.Ports, &p)
	}

	return port
}

func (s *synthesizer) append(c *core.Connector) {
	s.diagram.Connectors = append(s.diagram.Connectors, c)
}

// synthID derives a stable ID for a synthesized connector when the
// source connector is named, and a unique one otherwise.
func synthID(c *core.Connector, role string) string {
	if c.Name != "" {
		return c.Name + "-" + role
	}
	if c.ID != "" {
		return c.ID + "-" + role
	}
	return uuid.NewString()
}
