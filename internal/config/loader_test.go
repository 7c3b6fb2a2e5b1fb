package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benedikt-weyer/umlit/internal/config"
	"github.com/benedikt-weyer/umlit/pkg/layout"
)

// writeConfig drops a config file into a fresh working directory so
// the upward search cannot pick up files outside the test.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTheme, cfg.Theme)
	assert.Equal(t, config.DefaultDiagramType, cfg.DiagramType)
	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, layout.DefaultConfig(), cfg.Layout)
}

func TestLoadConfigFile(t *testing.T) {
	writeConfig(t, config.ConfigFileName, "theme: dark\nlayout:\n  grid_spacing: 100\n")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 100.0, cfg.Layout.GridSpacing)
	// Untouched keys keep their defaults.
	assert.Equal(t, layout.DefaultConfig().LeafWidth, cfg.Layout.LeafWidth)
}

func TestLoadConfigFileAltExtension(t *testing.T) {
	writeConfig(t, config.ConfigFileNameAlt, "theme: dark\n")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestLoadExplicitConfigPath(t *testing.T) {
	path := writeConfig(t, "custom.yaml", "output: json\n")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
}

func TestLoadEnvLayoutKeys(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UMLIT_LAYOUT_GRID_SPACING", "120")
	t.Setenv("UMLIT_LAYOUT_PORT_STANDOFF", "42.5")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.Layout.GridSpacing)
	assert.Equal(t, 42.5, cfg.Layout.PortStandoff)
	assert.Equal(t, layout.DefaultConfig().LeafWidth, cfg.Layout.LeafWidth)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	writeConfig(t, config.ConfigFileName, "theme: dark\n")
	t.Setenv("UMLIT_THEME", "light")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("UMLIT_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "auto", "")
	flags.String("diagram-type", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "markdown", "--diagram-type", "uml2.5-class"}))

	cfg, err := config.Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output)
	assert.Equal(t, "uml2.5-class", cfg.DiagramType)
}

func TestLoadUnchangedFlagIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("theme", "dark", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := config.Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTheme, cfg.Theme)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad theme", "theme: sepia\n", "unknown theme"},
		{"bad output", "output: xml\n", "unknown output format"},
		{"bad diagram type", "diagram_type: uml2.5-deployment\n", "unknown diagram type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, config.ConfigFileName, tt.content)

			_, err := config.Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := config.Load("does-not-exist.yaml", nil)
	require.Error(t, err)
}
