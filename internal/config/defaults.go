package config

import "github.com/benedikt-weyer/umlit/pkg/layout"

// Default configuration values.
const (
	DefaultTheme       = "light"
	DefaultDiagramType = "uml2.5-component"
	DefaultOutput      = "auto" // auto-detect: TTY=text, non-TTY=markdown
)

// Default returns a Config with stock values.
func Default() *Config {
	return &Config{
		Theme:       DefaultTheme,
		DiagramType: DefaultDiagramType,
		Output:      DefaultOutput,
		Layout:      layout.DefaultConfig(),
	}
}
