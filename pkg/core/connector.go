package core

import "strings"

// ConnectorKind discriminates the edge syntax a connector was written
// with. Interface connectors additionally carry the raw notation in
// EdgeType.
type ConnectorKind int

// Connector kinds.
const (
	// KindPlain is a plain arrow, -> or -->.
	KindPlain ConnectorKind = iota
	// KindDelegate is a dashed delegate arrow, ->delegate->.
	KindDelegate
	// KindInterface is a compact lollipop notation such as -())-.
	KindInterface
)

// String returns the display name of the connector kind.
func (k ConnectorKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindDelegate:
		return "delegate"
	case KindInterface:
		return "interface"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialize as
// their names in JSON output.
func (k ConnectorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Connector is a directed edge between two node IDs, optionally
// qualified by a port on either end.
//
// AutoGenerated and CrossLevel are only ever set by the diagram
// builder, never by the parser: they mark connectors manufactured by
// boundary-crossing synthesis.
type Connector struct {
	ID         string        `json:"id"`
	Name       string        `json:"name,omitempty"`
	Interface  string        `json:"interface,omitempty"`
	Kind       ConnectorKind `json:"kind"`
	EdgeType   string        `json:"edgeType,omitempty"` // raw notation, e.g. "-())-"
	Source     string        `json:"sourceId"`
	Target     string        `json:"targetId"`
	SourcePort string        `json:"sourcePort,omitempty"`
	TargetPort string        `json:"targetPort,omitempty"`
	Label      string        `json:"label,omitempty"`
	Stereotype string        `json:"stereotype,omitempty"`

	AutoGenerated bool `json:"isAutoGenerated,omitempty"`
	CrossLevel    bool `json:"isCrossLevel,omitempty"`
}

// IsDelegate reports whether the connector is a delegate arrow.
func (c *Connector) IsDelegate() bool {
	return c.Kind == KindDelegate
}

// InvertNotation flips the polarity of an interface notation string:
// every ball becomes a socket and vice versa. Non-paren characters
// (the delimiting dashes) pass through unchanged.
//
//	InvertNotation("-())-") == "-)((-"
func InvertNotation(notation string) string {
	var b strings.Builder
	b.Grow(len(notation))
	for _, r := range notation {
		switch r {
		case '(':
			b.WriteRune(')')
		case ')':
			b.WriteRune('(')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsInterfaceNotation reports whether s is a dash-delimited balanced
// run of parens, e.g. "-()-", "-())-", "-(-".
func IsInterfaceNotation(s string) bool {
	if len(s) < 3 || s[0] != '-' || s[len(s)-1] != '-' {
		return false
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return false
	}
	for i := 0; i < len(inner); i++ {
		if inner[i] != '(' && inner[i] != ')' {
			return false
		}
	}
	return true
}
