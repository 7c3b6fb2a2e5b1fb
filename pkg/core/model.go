package core

// FlatNode is a node in the flattened diagram view. It mirrors one AST
// Node but records the tree shape as explicit parent/child ID links
// instead of owned subtrees, so subtree traversals are bounded walks
// over index lists rather than repeated array scans.
type FlatNode struct {
	ID       string   `json:"id"`
	Label    string   `json:"label,omitempty"`
	ParentID string   `json:"parentId,omitempty"` // empty for roots
	Depth    int      `json:"depth"`
	ChildIDs []string `json:"childIds,omitempty"`

	// Box-center geometry, filled by layout (or authored coordinates).
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`

	// Authored reports whether X/Y came from `@ x,y` in the source.
	Authored bool `json:"-"`
}

// PlacedPort is a port paired with the ID of the node that owns it.
type PlacedPort struct {
	NodeID string `json:"nodeId"`
	Port
}

// Diagram is the flattened view of a DiagramAST: parallel node, port
// and connector lists with explicit parent/depth links. The tree view
// and the flat view always describe the same structure; the builder
// produces both from one parse and position mutations must be applied
// to both or to neither.
type Diagram struct {
	Type       DiagramType   `json:"type"`
	Nodes      []*FlatNode   `json:"nodes"`
	Ports      []*PlacedPort `json:"ports"`
	Connectors []*Connector  `json:"connectors"`

	byID map[string]*FlatNode
}

// NewDiagram creates an empty diagram of the given type.
func NewDiagram(t DiagramType) *Diagram {
	return &Diagram{
		Type: t,
		byID: make(map[string]*FlatNode),
	}
}

// AddNode appends a node to the flat list and indexes it by ID.
func (d *Diagram) AddNode(n *FlatNode) {
	if d.byID == nil {
		d.byID = make(map[string]*FlatNode)
	}
	d.Nodes = append(d.Nodes, n)
	d.byID[n.ID] = n
}

// NodeByID returns the flat node with the given ID, or nil.
func (d *Diagram) NodeByID(id string) *FlatNode {
	if d.byID == nil {
		d.reindex()
	}
	return d.byID[id]
}

// reindex rebuilds the ID index, needed after JSON decoding.
func (d *Diagram) reindex() {
	d.byID = make(map[string]*FlatNode, len(d.Nodes))
	for _, n := range d.Nodes {
		d.byID[n.ID] = n
	}
}

// Roots returns the nodes with no parent, in flattening order.
func (d *Diagram) Roots() []*FlatNode {
	var roots []*FlatNode
	for _, n := range d.Nodes {
		if n.ParentID == "" {
			roots = append(roots, n)
		}
	}
	return roots
}

// ChildrenOf returns the direct children of a node, in declaration
// order.
func (d *Diagram) ChildrenOf(id string) []*FlatNode {
	n := d.NodeByID(id)
	if n == nil {
		return nil
	}
	children := make([]*FlatNode, 0, len(n.ChildIDs))
	for _, cid := range n.ChildIDs {
		if c := d.NodeByID(cid); c != nil {
			children = append(children, c)
		}
	}
	return children
}

// Walk visits the subtree rooted at id in pre-order. It is a no-op
// for unknown IDs.
func (d *Diagram) Walk(id string, visit func(*FlatNode)) {
	n := d.NodeByID(id)
	if n == nil {
		return
	}
	visit(n)
	for _, cid := range n.ChildIDs {
		d.Walk(cid, visit)
	}
}

// PortsOf returns the ports owned by a node.
func (d *Diagram) PortsOf(nodeID string) []*PlacedPort {
	var ports []*PlacedPort
	for _, p := range d.Ports {
		if p.NodeID == nodeID {
			ports = append(ports, p)
		}
	}
	return ports
}

// PortByID returns the placed port with the given port ID on the given
// node, or nil.
func (d *Diagram) PortByID(nodeID, portID string) *PlacedPort {
	for _, p := range d.Ports {
		if p.NodeID == nodeID && p.Port.ID == portID {
			return p
		}
	}
	return nil
}
