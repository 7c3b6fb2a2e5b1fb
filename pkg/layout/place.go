package layout

import (
	"math"

	"github.com/benedikt-weyer/umlit/pkg/core"
)

// anchor ties a root-level box to a boundary port it connects to.
type anchor struct {
	root     *core.FlatNode
	boundary string // node owning the port
	portID   string
}

// placeRoots is pass 2: top-down placement of root-level boxes.
// Ordinary roots go on a grid sized so rows and columns never
// overlap; roots that are the external endpoint of a synthesized
// cross-level connector are instead anchored at a standoff from the
// port they connect to. Roots with authored coordinates stay put.
func (e *Engine) placeRoots(d *core.Diagram, rects map[string]Rect) {
	anchors := portAnchors(d)

	var ordinary []*core.FlatNode
	for _, root := range d.Roots() {
		if root.Authored {
			continue
		}
		if _, anchored := anchors[root.ID]; anchored {
			continue
		}
		ordinary = append(ordinary, root)
	}

	e.placeGrid(d, rects, ordinary)

	for _, root := range d.Roots() {
		a, ok := anchors[root.ID]
		if !ok || root.Authored {
			continue
		}
		e.placeAnchored(d, rects, a)
	}
}

// placeGrid lays ordinary roots on a ceil(sqrt(n)) column grid. Cell
// extents come from each root's pass-1 bounding box plus the grid
// spacing, so cells are as wide as the widest box in their column and
// as tall as the tallest box in their row.
func (e *Engine) placeGrid(d *core.Diagram, rects map[string]Rect, roots []*core.FlatNode) {
	if len(roots) == 0 {
		return
	}
	columns := int(math.Ceil(math.Sqrt(float64(len(roots)))))
	rows := (len(roots) + columns - 1) / columns

	colWidth := make([]float64, columns)
	rowHeight := make([]float64, rows)
	for i, root := range roots {
		r := rects[root.ID]
		col, row := i%columns, i/columns
		colWidth[col] = max(colWidth[col], r.W)
		rowHeight[row] = max(rowHeight[row], r.H)
	}

	colCenter := make([]float64, columns)
	x := 0.0
	for c := 0; c < columns; c++ {
		colCenter[c] = x + colWidth[c]/2
		x += colWidth[c] + e.cfg.GridSpacing
	}
	rowCenter := make([]float64, rows)
	y := 0.0
	for r := 0; r < rows; r++ {
		rowCenter[r] = y + rowHeight[r]/2
		y += rowHeight[r] + e.cfg.GridSpacing
	}

	for i, root := range roots {
		r := rects[root.ID]
		col, row := i%columns, i/columns
		moveSubtree(d, rects, root.ID, colCenter[col]-r.X, rowCenter[row]-r.Y)
	}
}

// placeAnchored puts a port-anchored root at the configured standoff
// from its port, off the side the port sits on.
func (e *Engine) placeAnchored(d *core.Diagram, rects map[string]Rect, a anchor) {
	port := d.PortByID(a.boundary, a.portID)
	if port == nil {
		return
	}
	owner, ok := rects[a.boundary]
	if !ok {
		return
	}
	px, py := PortPosition(owner, &port.Port)
	dx, dy := sideVector(port.Side)

	r := rects[a.root.ID]
	// Box edge sits PortStandoff away from the port point.
	cx := px + dx*(e.cfg.PortStandoff+r.W/2)
	cy := py + dy*(e.cfg.PortStandoff+r.H/2)
	moveSubtree(d, rects, a.root.ID, cx-r.X, cy-r.Y)
}

// portAnchors maps root IDs to the boundary port their synthesized
// external connector attaches to. Only external halves of a
// boundary-crossing expansion qualify: cross-level, not
// auto-generated, with a port qualifier on the boundary end.
func portAnchors(d *core.Diagram) map[string]anchor {
	anchors := make(map[string]anchor)
	for _, c := range d.Connectors {
		if !c.CrossLevel || c.AutoGenerated {
			continue
		}
		if c.SourcePort != "" {
			if root := rootNode(d, c.Target); root != nil && d.PortByID(c.Source, c.SourcePort) != nil {
				anchors[root.ID] = anchor{root: root, boundary: c.Source, portID: c.SourcePort}
			}
		}
		if c.TargetPort != "" {
			if root := rootNode(d, c.Source); root != nil && d.PortByID(c.Target, c.TargetPort) != nil {
				anchors[root.ID] = anchor{root: root, boundary: c.Target, portID: c.TargetPort}
			}
		}
	}
	return anchors
}

// rootNode returns the node if it exists and is root-level.
func rootNode(d *core.Diagram, id string) *core.FlatNode {
	if n := d.NodeByID(id); n != nil && n.ParentID == "" {
		return n
	}
	return nil
}
