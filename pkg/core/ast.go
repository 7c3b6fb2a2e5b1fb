package core

// DiagramType identifies the top-level wrapper of a document.
type DiagramType string

// Recognized diagram types. Only component diagrams carry full
// semantics; the others share the same grammar.
const (
	DiagramComponent DiagramType = "uml2.5-component"
	DiagramClass     DiagramType = "uml2.5-class"
	DiagramSequence  DiagramType = "uml2.5-sequence"
	DiagramActivity  DiagramType = "uml2.5-activity"
)

// IsDiagramType reports whether s names one of the fixed diagram types.
func IsDiagramType(s string) bool {
	switch DiagramType(s) {
	case DiagramComponent, DiagramClass, DiagramSequence, DiagramActivity:
		return true
	}
	return false
}

// Side is one of the four cardinal sides of a node boundary.
type Side string

// Port sides.
const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// ParseSide converts a string to a Side. Returns false for anything
// that is not one of the four cardinal sides.
func ParseSide(s string) (Side, bool) {
	switch Side(s) {
	case SideLeft, SideRight, SideTop, SideBottom:
		return Side(s), true
	}
	return "", false
}

// Node is a declared box in the diagram tree. IDs are expected to be
// unique across the whole document; duplicates are not validated and
// yield undefined behavior downstream.
//
// X and Y are box-center coordinates. When authored in the source via
// `@ x,y` they are absolute and survive layout; otherwise the layout
// engine fills them in. W and H are always computed unless authored.
type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label,omitempty"`
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	W        float64  `json:"w,omitempty"`
	H        float64  `json:"h,omitempty"`
	Children []*Node  `json:"children,omitempty"`
	Ports    []*Port  `json:"ports,omitempty"`
}

// HasAuthoredPos reports whether the node carries `@ x,y` coordinates
// from the source text.
func (n *Node) HasAuthoredPos() bool {
	return n.X != nil && n.Y != nil
}

// FindNode searches the subtree rooted at n for a node by ID.
func (n *Node) FindNode(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.FindNode(id); found != nil {
			return found
		}
	}
	return nil
}

// FindPort returns the port with the given ID, or nil.
func (n *Node) FindPort(id string) *Port {
	for _, p := range n.Ports {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Port is a named attachment point on a node's boundary.
type Port struct {
	ID           string   `json:"id"`
	Label        string   `json:"label,omitempty"`
	Side         Side     `json:"side"`
	Offset       *float64 `json:"offset,omitempty"`
	ConnectorRef string   `json:"connectorRef,omitempty"`
}

// DiagramAST is the nested tree produced by one successful parse.
// It is rebuilt wholesale on every parse attempt; a failed parse
// exposes no partial tree.
type DiagramAST struct {
	Type       DiagramType  `json:"type"`
	RootNodes  []*Node      `json:"rootNodes"`
	Connectors []*Connector `json:"connectors"`
}

// FindNode searches all root subtrees for a node by ID.
func (d *DiagramAST) FindNode(id string) *Node {
	for _, r := range d.RootNodes {
		if found := r.FindNode(id); found != nil {
			return found
		}
	}
	return nil
}

// ParentOf returns the parent of the node with the given ID, or nil
// for root nodes and unknown IDs.
func (d *DiagramAST) ParentOf(id string) *Node {
	var parent *Node
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		for _, c := range n.Children {
			if c.ID == id {
				parent = n
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, r := range d.RootNodes {
		if r.ID == id {
			return nil
		}
		if walk(r) {
			return parent
		}
	}
	return nil
}
