package layout

import "github.com/benedikt-weyer/umlit/pkg/core"

// Rect is a box in diagram space, addressed by its center. Y grows
// downward.
type Rect struct {
	X, Y float64 // center
	W, H float64
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() float64 { return r.X - r.W/2 }

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W/2 }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y - r.H/2 }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H/2 }

// Intersects reports whether two rects overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Contains reports whether o lies fully inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Left() >= r.Left() && o.Right() <= r.Right() &&
		o.Top() >= r.Top() && o.Bottom() <= r.Bottom()
}

// union returns the smallest rect covering both.
func union(a, b Rect) Rect {
	left := min(a.Left(), b.Left())
	right := max(a.Right(), b.Right())
	top := min(a.Top(), b.Top())
	bottom := max(a.Bottom(), b.Bottom())
	return Rect{
		X: (left + right) / 2,
		Y: (top + bottom) / 2,
		W: right - left,
		H: bottom - top,
	}
}

// PortPosition returns the point where a port sits on the boundary of
// its owner's rect. Offset, when set, is the fraction along the side
// from its top-left end; it defaults to the middle.
func PortPosition(owner Rect, p *core.Port) (x, y float64) {
	frac := 0.5
	if p.Offset != nil {
		frac = *p.Offset
	}
	switch p.Side {
	case core.SideLeft:
		return owner.Left(), owner.Top() + frac*owner.H
	case core.SideRight:
		return owner.Right(), owner.Top() + frac*owner.H
	case core.SideTop:
		return owner.Left() + frac*owner.W, owner.Top()
	case core.SideBottom:
		return owner.Left() + frac*owner.W, owner.Bottom()
	}
	return owner.X, owner.Y
}

// sideVector returns the unit outward direction of a side: left means
// negative X, top means negative Y.
func sideVector(s core.Side) (dx, dy float64) {
	switch s {
	case core.SideLeft:
		return -1, 0
	case core.SideRight:
		return 1, 0
	case core.SideTop:
		return 0, -1
	case core.SideBottom:
		return 0, 1
	}
	return 0, 0
}
