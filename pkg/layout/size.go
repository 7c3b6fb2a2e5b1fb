package layout

import "github.com/benedikt-weyer/umlit/pkg/core"

// sizeTree is pass 1: bottom-up sizing and stacking. Every node gets
// a rect; containers are computed only after all their descendants so
// child sizes are final when the parent's bounding box is taken.
// Positions are temporary except for nodes with authored coordinates,
// which are absolute and pin their subtree.
func (e *Engine) sizeTree(d *core.Diagram) map[string]Rect {
	rects := make(map[string]Rect, len(d.Nodes))
	for _, root := range d.Roots() {
		e.sizeNode(d, root, rects)
	}
	return rects
}

// sizeNode computes the rect of one node, recursing into children
// first.
func (e *Engine) sizeNode(d *core.Diagram, n *core.FlatNode, rects map[string]Rect) {
	children := d.ChildrenOf(n.ID)

	if len(children) == 0 {
		r := Rect{W: e.cfg.LeafWidth, H: e.cfg.LeafHeight}
		if n.Authored {
			r.X, r.Y = n.X, n.Y
		}
		rects[n.ID] = r
		return
	}

	for _, c := range children {
		e.sizeNode(d, c, rects)
	}

	// Stack children vertically at this container's current, possibly
	// temporary, X: the first child centered on it, each next child
	// below the previous by half-heights plus spacing. Children with
	// authored coordinates stay where the author put them but still
	// count toward the union box.
	cx, cy := 0.0, 0.0
	if n.Authored {
		cx, cy = n.X, n.Y
	}
	prevY := cy
	prevHalf := 0.0
	first := true
	for _, c := range children {
		r := rects[c.ID]
		if !c.Authored {
			var ty float64
			if first {
				ty = cy
			} else {
				ty = prevY + prevHalf + e.cfg.ChildSpacing + r.H/2
			}
			moveSubtree(d, rects, c.ID, cx-r.X, ty-r.Y)
			r = rects[c.ID]
		}
		prevY = r.Y
		prevHalf = r.H / 2
		first = false
	}

	// The container is the union box of its children expanded by side
	// and vertical padding plus the reserved label band at the top.
	box := rects[children[0].ID]
	for _, c := range children[1:] {
		box = union(box, rects[c.ID])
	}
	left := box.Left() - e.cfg.SidePadding
	right := box.Right() + e.cfg.SidePadding
	top := box.Top() - e.cfg.LabelBand - e.cfg.VerticalPad
	bottom := box.Bottom() + e.cfg.VerticalPad
	r := Rect{
		X: (left + right) / 2,
		Y: (top + bottom) / 2,
		W: right - left,
		H: bottom - top,
	}
	rects[n.ID] = r

	// An authored container is pinned: shift it and everything inside
	// it so its center lands on the authored coordinates.
	if n.Authored && (r.X != n.X || r.Y != n.Y) {
		moveSubtree(d, rects, n.ID, n.X-r.X, n.Y-r.Y)
	}
}

// moveSubtree translates a node and all its descendants in the
// position map by one delta. The stacking is never re-run; relative
// geometry inside the subtree is preserved exactly.
func moveSubtree(d *core.Diagram, rects map[string]Rect, id string, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	d.Walk(id, func(fn *core.FlatNode) {
		r := rects[fn.ID]
		r.X += dx
		r.Y += dy
		rects[fn.ID] = r
	})
}
