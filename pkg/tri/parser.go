package tri

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/facetworks/facet/pkg/geometry"
)

// Parse errors. Callers match them with errors.Is; the wrapping message
// carries the offending line number.
var (
	ErrParse           = errors.New("malformed mesh line")
	ErrInvalidVertex   = errors.New("invalid vertex")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidTriangle = errors.New("invalid triangle")
)

// Parse reads the line-oriented mesh text format and returns a Mesh.
//
// Every line is classified by its token count alone: 2 tokens form a
// vertex (x y floats), 3 a color (r g b bytes), 4 a triangle (three
// vertex indices and a color index). Any other token count, including a
// blank line, fails the parse. A triangle may only reference vertices
// and colors defined on earlier lines; the input is consumed in a
// single forward pass.
//
// On failure no partial mesh is returned.
func Parse(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := &Mesh{bounds: geometry.NewBounds()}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())

		var err error
		switch len(fields) {
		case 2:
			err = mesh.parseVertex(fields)
		case 3:
			err = mesh.parseColor(fields)
		case 4:
			err = mesh.parseTriangle(fields)
		default:
			err = fmt.Errorf("%w: %d tokens", ErrParse, len(fields))
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh: %w", err)
	}

	mesh.buildIndices()
	return mesh, nil
}

// ParseFile opens a mesh text file and parses it
func ParseFile(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func (m *Mesh) parseVertex(fields []string) error {
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidVertex, fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidVertex, fields[1])
	}

	point := geometry.NewVec2(x, y)
	m.vertices = append(m.vertices, point)
	m.bounds.Extend(point)
	return nil
}

func (m *Mesh) parseColor(fields []string) error {
	var rgb [3]float64
	for i, field := range fields {
		c, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidColor, field)
		}
		rgb[i] = float64(c) / 255.0
	}

	m.colors = append(m.colors, rgb)
	return nil
}

func (m *Mesh) parseTriangle(fields []string) error {
	var idx [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(fields[i], 10, 32)
		if err != nil {
			return fmt.Errorf("%w: vertex index %q", ErrInvalidTriangle, fields[i])
		}
		if int(v) >= len(m.vertices) {
			return fmt.Errorf("%w: vertex index %d not yet defined", ErrInvalidTriangle, v)
		}
		idx[i] = int(v)
	}
	if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
		return fmt.Errorf("%w: duplicate vertex indices", ErrInvalidTriangle)
	}

	colorIdx, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: color index %q", ErrInvalidTriangle, fields[3])
	}
	// The bound is deliberately inclusive: legacy puzzle files reference
	// one past the palette and rely on the renderer's fallback color.
	if int(colorIdx) > len(m.colors) {
		return fmt.Errorf("%w: color index %d not yet defined", ErrInvalidTriangle, colorIdx)
	}

	m.triangles = append(m.triangles, Triangle{
		V0:    idx[0],
		V1:    idx[1],
		V2:    idx[2],
		Color: int(colorIdx),
	})
	return nil
}
