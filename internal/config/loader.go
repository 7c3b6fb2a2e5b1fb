package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/benedikt-weyer/umlit/pkg/layout"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "umlit.yaml"
	ConfigFileNameAlt = "umlit.yml"
)

// maxUpwardSearchLevels limits how far up the directory tree to search
// for config files.
const maxUpwardSearchLevels = 10

// Load loads configuration from file, environment variables and
// flags. Precedence (highest to lowest): flags > env vars > config
// file > defaults. cfgFile may be empty; the file is then searched in
// the current directory and upward.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	l := layout.DefaultConfig()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"theme":                DefaultTheme,
		"diagram_type":         DefaultDiagramType,
		"output":               DefaultOutput,
		"verbose":              false,
		"layout.side_padding":  l.SidePadding,
		"layout.label_band":    l.LabelBand,
		"layout.vertical_pad":  l.VerticalPad,
		"layout.child_spacing": l.ChildSpacing,
		"layout.grid_spacing":  l.GridSpacing,
		"layout.port_standoff": l.PortStandoff,
		"layout.leaf_width":    l.LeafWidth,
		"layout.leaf_height":   l.LeafHeight,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		cfgFile = findConfigFile()
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// UMLIT_THEME -> theme, UMLIT_LAYOUT_GRID_SPACING ->
	// layout.grid_spacing. Layout keys themselves contain underscores,
	// so only the LAYOUT_ prefix nests.
	if err := k.Load(env.Provider("UMLIT_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "UMLIT_"))
		if rest, ok := strings.CutPrefix(key, "layout_"); ok {
			return "layout." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// findConfigFile searches the current directory and then upward for an
// umlit config file. Returns empty string if none is found.
func findConfigFile() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for i := 0; i < maxUpwardSearchLevels; i++ {
		for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
