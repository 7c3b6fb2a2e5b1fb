// Package config loads umlit configuration from file, environment and
// flags.
package config

import (
	"fmt"

	"github.com/benedikt-weyer/umlit/pkg/core"
	"github.com/benedikt-weyer/umlit/pkg/layout"
)

// Config holds all umlit configuration options.
type Config struct {
	// Theme is passed through to the diagram envelope for the external
	// renderer: light or dark.
	Theme string `koanf:"theme"`
	// DiagramType is the wrapper type assumed for documents without
	// an explicit `[diagram-type]` wrapper.
	DiagramType string `koanf:"diagram_type"`
	// Output selects the CLI output format: auto, text, json, markdown.
	Output string `koanf:"output"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Layout overrides the spacing constants of the layout engine.
	Layout layout.Config `koanf:"layout"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("unknown theme %q (expected light or dark)", c.Theme)
	}
	if !core.IsDiagramType(c.DiagramType) {
		return fmt.Errorf("unknown diagram type %q", c.DiagramType)
	}
	switch c.Output {
	case "auto", "text", "json", "markdown", "md":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
