// Package output renders CLI results in text, markdown or JSON form.
//
// Output adapts to the environment: on a terminal results are styled
// tables and colored diagnostics, piped output falls back to
// markdown, and --output json produces machine-readable output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"

	"github.com/benedikt-weyer/umlit/pkg/core"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeJSON     Mode = "json"
	ModeMarkdown Mode = "markdown"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Renderer writes command results to an output and an error stream.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styled bool
}

// NewRenderer creates a renderer. ModeAuto resolves to text on a
// terminal and markdown otherwise.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	if mode == "" {
		r.mode = ModeAuto
	}
	if r.mode == "md" {
		r.mode = ModeMarkdown
	}
	if r.mode == ModeAuto {
		if isTerminal(out) {
			r.mode = ModeText
		} else {
			r.mode = ModeMarkdown
		}
	}
	r.styled = r.mode == ModeText && isTerminal(errOut)
	return r
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// Mode returns the resolved output mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders a header and rows, as a styled table in text mode and
// a pipe table in markdown mode.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)

	h := make(table.Row, len(header))
	for i, c := range header {
		h[i] = c
	}
	t.AppendHeader(h)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, c := range row {
			tr[i] = c
		}
		t.AppendRow(tr)
	}

	if r.mode == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// Error writes a styled error line to the error stream.
func (r *Renderer) Error(err error) {
	msg := "error: " + err.Error()
	if r.styled {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(r.errOut, msg)
}

// Diagnostics writes structural warnings to the error stream.
func (r *Renderer) Diagnostics(diags []core.Diagnostic) {
	for _, d := range diags {
		msg := d.String()
		if r.styled {
			msg = warnStyle.Render(msg)
		}
		fmt.Fprintln(r.errOut, msg)
	}
}
