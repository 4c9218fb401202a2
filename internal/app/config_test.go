package app

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetworks/facet/pkg/viewer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 750, cfg.Window.Height)
	assert.Equal(t, 16.0, cfg.HitRadius)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 250, cfg.DebounceMS)
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
  height: 480
hit_radius: 24
watch: false
debounce_ms: 100
colors:
  background: "#101010"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, 24.0, cfg.HitRadius)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 100, cfg.DebounceMS)
	assert.Equal(t, "#101010", cfg.Colors.Background)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "hit_radius: 8\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.HitRadius)
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.True(t, cfg.Watch)
}

func TestLoadConfigExplicitMissingFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "window: [\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestPaletteOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors.Background = "#ff0000"
	cfg.Colors.Active = "#0f0"

	p, err := cfg.Palette()
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, p.Background)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, p.Active)
	assert.Equal(t, viewer.DefaultPalette().DrawnEdge, p.DrawnEdge)
}

func TestPaletteRejectsBadColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors.Vertex = "red"

	_, err := cfg.Palette()
	assert.Error(t, err)
}
