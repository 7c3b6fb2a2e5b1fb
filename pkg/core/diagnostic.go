package core

import (
	"fmt"

	"github.com/benedikt-weyer/umlit/pkg/token"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates the document could not be processed.
	SeverityError Severity = iota
	// SeverityWarning indicates a construct that was dropped but did
	// not abort processing.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal structural finding recorded while
// processing a document: an over-deep node that was dropped, a port
// whose target node does not exist, and the like. Parsing continues
// past these on the theory that a best-effort partial diagram is more
// useful while editing than total failure.
type Diagnostic struct {
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	Pos      token.Position `json:"pos"`
	// Span covers the construct the diagnostic is about, so an editor
	// can underline a range rather than a point.
	Span token.Span `json:"span"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at line %d, column %d: %s", d.Severity, d.Pos.Line, d.Pos.Column, d.Message)
}
