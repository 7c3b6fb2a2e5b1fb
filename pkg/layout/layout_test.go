package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedikt-weyer/umlit/pkg/core"
	"github.com/benedikt-weyer/umlit/pkg/diagram"
	"github.com/benedikt-weyer/umlit/pkg/layout"
	"github.com/benedikt-weyer/umlit/pkg/parser"
)

// layoutDiagram parses, flattens and lays out a valid document with
// the stock configuration.
func layoutDiagram(t *testing.T, input string) (*core.Diagram, *core.DiagramAST) {
	t.Helper()
	res, err := parser.Parse(input)
	require.NoError(t, err)
	d := diagram.Build(res.AST)
	layout.New(layout.DefaultConfig()).Layout(d, res.AST)
	return d, res.AST
}

func rectOf(t *testing.T, d *core.Diagram, id string) layout.Rect {
	t.Helper()
	n := d.NodeByID(id)
	require.NotNil(t, n)
	return layout.Rect{X: n.X, Y: n.Y, W: n.W, H: n.H}
}

func TestLayoutLeafDefaultSize(t *testing.T) {
	d, _ := layoutDiagram(t, "[A] Foo")

	cfg := layout.DefaultConfig()
	r := rectOf(t, d, "A")
	assert.Equal(t, cfg.LeafWidth, r.W)
	assert.Equal(t, cfg.LeafHeight, r.H)
}

func TestLayoutContainerEnclosesChildren(t *testing.T) {
	d, _ := layoutDiagram(t, "[P] Parent {\n[C] Child\n}")

	cfg := layout.DefaultConfig()
	p := rectOf(t, d, "P")
	c := rectOf(t, d, "C")

	assert.True(t, p.Contains(c))
	assert.Equal(t, cfg.SidePadding, c.Left()-p.Left())
	assert.Equal(t, cfg.SidePadding, p.Right()-c.Right())
	assert.Equal(t, cfg.LabelBand+cfg.VerticalPad, c.Top()-p.Top())
	assert.Equal(t, cfg.VerticalPad, p.Bottom()-c.Bottom())
}

func TestLayoutSiblingsStackVertically(t *testing.T) {
	d, _ := layoutDiagram(t, "[O] Outer {\n[A] First\n[B] Second\n[C] Third\n}")

	cfg := layout.DefaultConfig()
	a := rectOf(t, d, "A")
	b := rectOf(t, d, "B")
	c := rectOf(t, d, "C")

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, b.X, c.X)
	assert.Equal(t, cfg.ChildSpacing, b.Top()-a.Bottom())
	assert.Equal(t, cfg.ChildSpacing, c.Top()-b.Bottom())
	assert.False(t, a.Intersects(b))
	assert.False(t, b.Intersects(c))
}

func TestLayoutRootGridNoOverlap(t *testing.T) {
	d, _ := layoutDiagram(t, "[A] Aa\n[B] Bb {\n[X] Xx\n[Y] Yy\n}\n[C] Cc\n[D] Dd\n[E] Ee")

	roots := d.Roots()
	require.Len(t, roots, 5)
	for i := range roots {
		for j := i + 1; j < len(roots); j++ {
			ri := rectOf(t, d, roots[i].ID)
			rj := rectOf(t, d, roots[j].ID)
			assert.False(t, ri.Intersects(rj), "roots %s and %s overlap", roots[i].ID, roots[j].ID)
		}
	}
}

func TestLayoutAuthoredRootStaysPut(t *testing.T) {
	d, _ := layoutDiagram(t, "[A] Anchor @ 500,300\n[B] Free")

	a := rectOf(t, d, "A")
	assert.Equal(t, 500.0, a.X)
	assert.Equal(t, 300.0, a.Y)
}

func TestLayoutAuthoredContainerPinsSubtree(t *testing.T) {
	d, _ := layoutDiagram(t, "[O] Outer @ 400,400 {\n[I] Inner\n}")

	o := rectOf(t, d, "O")
	i := rectOf(t, d, "I")
	assert.Equal(t, 400.0, o.X)
	assert.Equal(t, 400.0, o.Y)
	assert.True(t, o.Contains(i))
}

// An external box tied to a boundary port by synthesis sits at the
// standoff distance off the port's side rather than on the root grid.
func TestLayoutPortAnchoredRoot(t *testing.T) {
	input := "[O] Outer {\n[I] Inner\nport [p1] with [supplies] right\n}\n[Ext] External\n[supplies] Ext -())- I"
	d, _ := layoutDiagram(t, input)

	cfg := layout.DefaultConfig()
	o := rectOf(t, d, "O")
	ext := rectOf(t, d, "Ext")

	assert.Equal(t, o.Right()+cfg.PortStandoff+ext.W/2, ext.X)
	assert.Equal(t, o.Y, ext.Y) // port sits mid-side by default
	assert.False(t, o.Intersects(ext))
}

// Running layout again over an already laid out diagram changes
// nothing.
func TestLayoutIdempotent(t *testing.T) {
	input := "[O] Outer {\n[I] Inner\n[J] Other\n}\n[A] Aa\n[B] Bb\nA -> I"
	d, ast := layoutDiagram(t, input)

	before := make(map[string]layout.Rect, len(d.Nodes))
	for _, n := range d.Nodes {
		before[n.ID] = rectOf(t, d, n.ID)
	}

	layout.New(layout.DefaultConfig()).Layout(d, ast)

	for _, n := range d.Nodes {
		assert.Equal(t, before[n.ID], rectOf(t, d, n.ID), "node %s moved on relayout", n.ID)
	}
}

func TestTranslateSubtree(t *testing.T) {
	d, ast := layoutDiagram(t, "[O] Outer {\n[I] Inner\n}\n[A] Aa")

	o := rectOf(t, d, "O")
	i := rectOf(t, d, "I")
	a := rectOf(t, d, "A")

	layout.TranslateSubtree(d, ast, "O", 25, -10)

	assert.Equal(t, o.X+25, d.NodeByID("O").X)
	assert.Equal(t, o.Y-10, d.NodeByID("O").Y)
	assert.Equal(t, i.X+25, d.NodeByID("I").X)
	assert.Equal(t, i.Y-10, d.NodeByID("I").Y)

	// Nodes outside the subtree are untouched.
	assert.Equal(t, a.X, d.NodeByID("A").X)
	assert.Equal(t, a.Y, d.NodeByID("A").Y)

	// The tree view tracks the same delta.
	inner := ast.FindNode("I")
	require.NotNil(t, inner)
	require.True(t, inner.HasAuthoredPos())
	assert.Equal(t, i.X+25, *inner.X)
	assert.Equal(t, i.Y-10, *inner.Y)
}

func TestRectGeometry(t *testing.T) {
	r := layout.Rect{X: 100, Y: 50, W: 40, H: 20}
	assert.Equal(t, 80.0, r.Left())
	assert.Equal(t, 120.0, r.Right())
	assert.Equal(t, 40.0, r.Top())
	assert.Equal(t, 60.0, r.Bottom())

	assert.True(t, r.Intersects(layout.Rect{X: 110, Y: 55, W: 40, H: 20}))
	assert.False(t, r.Intersects(layout.Rect{X: 200, Y: 50, W: 40, H: 20}))
	assert.True(t, r.Contains(layout.Rect{X: 100, Y: 50, W: 10, H: 10}))
	assert.False(t, r.Contains(layout.Rect{X: 100, Y: 50, W: 100, H: 10}))
}

func TestPortPosition(t *testing.T) {
	owner := layout.Rect{X: 0, Y: 0, W: 200, H: 100}
	half := 0.25

	tests := []struct {
		name string
		port core.Port
		x, y float64
	}{
		{"left mid", core.Port{Side: core.SideLeft}, -100, 0},
		{"right mid", core.Port{Side: core.SideRight}, 100, 0},
		{"top mid", core.Port{Side: core.SideTop}, 0, -50},
		{"bottom mid", core.Port{Side: core.SideBottom}, 0, 50},
		{"left offset", core.Port{Side: core.SideLeft, Offset: &half}, -100, -25},
		{"top offset", core.Port{Side: core.SideTop, Offset: &half}, -50, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := layout.PortPosition(owner, &tt.port)
			assert.Equal(t, tt.x, x)
			assert.Equal(t, tt.y, y)
		})
	}
}
