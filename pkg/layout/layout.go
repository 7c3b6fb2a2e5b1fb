// Package layout computes positions and sizes for a flattened diagram.
//
// The engine runs two passes. Pass 1 sizes every box bottom-up:
// containers are processed only after all their descendants, children
// are stacked vertically inside their parent, and a container's own
// box is the union of its children's boxes plus padding and a label
// band. Pass 2 places root-level boxes top-down: ordinary roots on a
// square-ish grid, port-anchored roots at a standoff from the port
// they connect to.
//
// Both passes are pure functions over the diagram structure returning
// fresh position maps; Apply writes the result into the flat and tree
// views together. Whenever a box moves from the temporary position
// used during sizing, its whole subtree is translated by the same
// delta. The stacking is never re-run at the final coordinates, which
// keeps relative geometry stable and makes repeated layout of the
// same diagram bit-identical.
package layout

import "github.com/benedikt-weyer/umlit/pkg/core"

// Config holds the spacing constants of the layout heuristic.
type Config struct {
	SidePadding  float64 `koanf:"side_padding"`  // horizontal padding inside containers
	LabelBand    float64 `koanf:"label_band"`    // reserved label strip at a container's top
	VerticalPad  float64 `koanf:"vertical_pad"`  // vertical padding inside containers
	ChildSpacing float64 `koanf:"child_spacing"` // gap between stacked siblings
	GridSpacing  float64 `koanf:"grid_spacing"`  // gap between root grid cells
	PortStandoff float64 `koanf:"port_standoff"` // gap between a port and its anchored external box
	LeafWidth    float64 `koanf:"leaf_width"`    // default size of childless boxes
	LeafHeight   float64 `koanf:"leaf_height"`
}

// DefaultConfig returns the stock spacing constants.
func DefaultConfig() Config {
	return Config{
		SidePadding:  30,
		LabelBand:    40,
		VerticalPad:  20,
		ChildSpacing: 30,
		GridSpacing:  60,
		PortStandoff: 80,
		LeafWidth:    160,
		LeafHeight:   80,
	}
}

// Engine computes diagram layouts with a fixed configuration.
type Engine struct {
	cfg Config
}

// New creates a layout engine.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Layout computes and applies positions for the whole diagram,
// mutating it in place. When ast is non-nil the tree view is updated
// with the same coordinates so both views keep describing the same
// structure.
func (e *Engine) Layout(d *core.Diagram, ast *core.DiagramAST) {
	rects := e.sizeTree(d)
	e.placeRoots(d, rects)
	Apply(d, ast, rects)
}

// Apply writes a position map into the flat view and, when ast is
// non-nil, into the tree view. A partial application would break the
// tree/flat invariant, so every rect in the map is written to both.
func Apply(d *core.Diagram, ast *core.DiagramAST, rects map[string]Rect) {
	for id, r := range rects {
		if fn := d.NodeByID(id); fn != nil {
			fn.X, fn.Y, fn.W, fn.H = r.X, r.Y, r.W, r.H
		}
		if ast != nil {
			if n := ast.FindNode(id); n != nil {
				x, y := r.X, r.Y
				n.X, n.Y = &x, &y
				n.W, n.H = r.W, r.H
			}
		}
	}
}

// TranslateSubtree moves a node and every descendant by the same
// delta, in both views. This is the drag contract: moving one box
// moves its whole subtree by the same vector, never re-stacking.
func TranslateSubtree(d *core.Diagram, ast *core.DiagramAST, id string, dx, dy float64) {
	d.Walk(id, func(fn *core.FlatNode) {
		fn.X += dx
		fn.Y += dy
		if ast != nil {
			if n := ast.FindNode(fn.ID); n != nil && n.HasAuthoredPos() {
				*n.X += dx
				*n.Y += dy
			}
		}
	})
}
