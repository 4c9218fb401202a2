package app

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/facetworks/facet/pkg/svgconv"
	"github.com/facetworks/facet/pkg/viewer"
)

// DefaultConfigFile is looked up in the working directory when no
// config flag is given
const DefaultConfigFile = "facet.yaml"

// Config holds the GUI settings
type Config struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`

	// HitRadius is the clickable radius around a vertex, in pixels.
	HitRadius float64 `yaml:"hit_radius"`

	// Watch reloads the puzzle when the file changes on disk.
	Watch      bool `yaml:"watch"`
	DebounceMS int  `yaml:"debounce_ms"`

	Colors ColorConfig `yaml:"colors"`
}

// ColorConfig overrides the board chrome colors, in #rrggbb notation.
// Empty entries keep the built-in color.
type ColorConfig struct {
	Background string `yaml:"background"`
	MeshEdge   string `yaml:"mesh_edge"`
	DrawnEdge  string `yaml:"drawn_edge"`
	Pending    string `yaml:"pending"`
	Vertex     string `yaml:"vertex"`
	Active     string `yaml:"active"`
	Fallback   string `yaml:"fallback"`
}

// DefaultConfig returns the settings used without a config file
func DefaultConfig() *Config {
	cfg := &Config{
		HitRadius:  16,
		Watch:      true,
		DebounceMS: 250,
	}
	cfg.Window.Width = 1000
	cfg.Window.Height = 750
	return cfg
}

// LoadConfig reads a config file. An empty path falls back to
// facet.yaml in the working directory, and built-in defaults when that
// does not exist either. An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Palette resolves the configured colors on top of the built-in palette
func (c *Config) Palette() (viewer.Palette, error) {
	p := viewer.DefaultPalette()

	overrides := []struct {
		value  string
		target *color.RGBA
	}{
		{c.Colors.Background, &p.Background},
		{c.Colors.MeshEdge, &p.MeshEdge},
		{c.Colors.DrawnEdge, &p.DrawnEdge},
		{c.Colors.Pending, &p.Pending},
		{c.Colors.Vertex, &p.Vertex},
		{c.Colors.Active, &p.Active},
		{c.Colors.Fallback, &p.Fallback},
	}

	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		rgb, err := svgconv.ParseHexColor(o.value)
		if err != nil {
			return p, fmt.Errorf("invalid color %q: %w", o.value, err)
		}
		*o.target = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	}

	return p, nil
}
