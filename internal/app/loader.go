package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/facetworks/facet/pkg/svgconv"
	"github.com/facetworks/facet/pkg/tri"
)

// LoadMesh loads a puzzle from either a .tri or an .svg file. SVG files
// are converted in memory; nothing is written next to the input.
func LoadMesh(path string) (*tri.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".svg" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		doc, err := svgconv.Convert(f)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", path, err)
		}
		return doc.Mesh()
	}

	return tri.ParseFile(path)
}
