package token

// Position is a point in the source text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// IsValid reports whether the position points into real source; line
// numbers start at 1.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Span is a half-open source range. Diagnostics and parse errors
// carry one so an editor can underline the offending construct
// instead of a single point.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether the span covers the given byte offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid reports whether both ends of the span are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Span returns the source range covered by the token. Token literals
// never cross lines, so the end stays on the start line.
func (t Token) Span() Span {
	end := Position{
		Line:   t.Pos.Line,
		Column: t.Pos.Column + len(t.Literal),
		Offset: t.Pos.Offset + len(t.Literal),
	}
	return Span{Start: t.Pos, End: end}
}
