package svgconv

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/facetworks/facet/pkg/tri"
)

// Conversion errors. Per-polygon failures are wrapped with the polygon's
// ordinal in document order.
var (
	ErrNoPolygons  = errors.New("no filled polygons in document")
	ErrNotTriangle = errors.New("polygon is not a triangle")
	ErrBadFill     = errors.New("unsupported fill")
	ErrBadPoints   = errors.New("malformed points attribute")
)

type point struct {
	X, Y float64
}

// Document is a parsed SVG triangulation: deduplicated vertices and
// colors in first-seen order, plus one triangle per filled polygon.
// Write it out as mesh text with WriteTo, or parse it straight into a
// Mesh with Mesh.
type Document struct {
	Width  float64
	Height float64

	vertices  []point
	colors    [][3]uint8
	triangles [][4]int // v0, v1, v2, colorIdx

	vertexIndex map[point]int
	colorIndex  map[[3]uint8]int
}

// VertexCount returns the number of distinct vertices
func (d *Document) VertexCount() int {
	return len(d.vertices)
}

// ColorCount returns the number of distinct fill colors
func (d *Document) ColorCount() int {
	return len(d.colors)
}

// TriangleCount returns the number of triangles
func (d *Document) TriangleCount() int {
	return len(d.triangles)
}

// Convert reads an SVG document and extracts its triangulation. Every
// polygon element with a hex fill must have exactly 3 distinct points;
// polygons with fill="none" or no fill at all are skipped. Coordinates
// are kept exactly as written (SVG y grows downward, and so does model
// space).
func Convert(reader io.Reader) (*Document, error) {
	doc := &Document{
		vertexIndex: make(map[point]int),
		colorIndex:  make(map[[3]uint8]int),
	}

	decoder := xml.NewDecoder(reader)
	polygon := 0
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading svg: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "svg":
			if err := doc.readDimensions(start); err != nil {
				return nil, err
			}
		case "polygon":
			polygon++
			if err := doc.addPolygon(start); err != nil {
				return nil, fmt.Errorf("polygon %d: %w", polygon, err)
			}
		}
	}

	if len(doc.triangles) == 0 {
		return nil, ErrNoPolygons
	}
	return doc, nil
}

// ConvertFile converts an SVG file into a mesh text file
func ConvertFile(in, out string) error {
	input, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer input.Close()

	doc, err := Convert(input)
	if err != nil {
		return fmt.Errorf("converting %s: %w", in, err)
	}

	output, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer output.Close()

	if _, err := doc.WriteTo(output); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

// WriteTo writes the document as mesh text: all vertices, then all
// colors, then all triangles, which keeps every reference pointing at
// an earlier line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, v := range d.vertices {
		n, err := fmt.Fprintf(w, "%g %g\n", v.X, v.Y)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, c := range d.colors {
		n, err := fmt.Fprintf(w, "%d %d %d\n", c[0], c[1], c[2])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, t := range d.triangles {
		n, err := fmt.Fprintf(w, "%d %d %d %d\n", t[0], t[1], t[2], t[3])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Mesh runs the document through the mesh text parser, so a converted
// puzzle gets exactly the same validation as one loaded from disk
func (d *Document) Mesh() (*tri.Mesh, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return tri.Parse(&buf)
}

func (d *Document) readDimensions(start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			w, err := parseDimension(attr.Value)
			if err != nil {
				return fmt.Errorf("svg width: %w", err)
			}
			d.Width = w
		case "height":
			h, err := parseDimension(attr.Value)
			if err != nil {
				return fmt.Errorf("svg height: %w", err)
			}
			d.Height = h
		}
	}
	return nil
}

func (d *Document) addPolygon(start xml.StartElement) error {
	var fill, points string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "fill":
			fill = attr.Value
		case "points":
			points = attr.Value
		}
	}

	// Unfilled polygons carry no puzzle color; skip them.
	if fill == "" || fill == "none" {
		return nil
	}

	rgb, err := ParseHexColor(fill)
	if err != nil {
		return err
	}
	pts, err := parsePoints(points)
	if err != nil {
		return err
	}
	if len(pts) != 3 {
		return fmt.Errorf("%w: %d points", ErrNotTriangle, len(pts))
	}

	var idx [3]int
	for i, p := range pts {
		idx[i] = d.internVertex(p)
	}
	if idx[0] == idx[1] || idx[1] == idx[2] || idx[0] == idx[2] {
		return fmt.Errorf("%w: degenerate corners", ErrNotTriangle)
	}

	colorIdx := d.internColor(rgb)
	d.triangles = append(d.triangles, [4]int{idx[0], idx[1], idx[2], colorIdx})
	return nil
}

func (d *Document) internVertex(p point) int {
	if i, ok := d.vertexIndex[p]; ok {
		return i
	}
	i := len(d.vertices)
	d.vertices = append(d.vertices, p)
	d.vertexIndex[p] = i
	return i
}

func (d *Document) internColor(rgb [3]uint8) int {
	if i, ok := d.colorIndex[rgb]; ok {
		return i
	}
	i := len(d.colors)
	d.colors = append(d.colors, rgb)
	d.colorIndex[rgb] = i
	return i
}

// parseDimension parses an svg length, tolerating a px suffix
func parseDimension(value string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), "px")
	return strconv.ParseFloat(trimmed, 64)
}

// ParseHexColor parses a #rrggbb or #rgb color notation
func ParseHexColor(fill string) ([3]uint8, error) {
	var rgb [3]uint8
	if !strings.HasPrefix(fill, "#") {
		return rgb, fmt.Errorf("%w: %q", ErrBadFill, fill)
	}
	hex := fill[1:]

	switch len(hex) {
	case 6:
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return rgb, fmt.Errorf("%w: %q", ErrBadFill, fill)
			}
			rgb[i] = uint8(v)
		}
	case 3:
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return rgb, fmt.Errorf("%w: %q", ErrBadFill, fill)
			}
			rgb[i] = uint8(v * 17) // f -> ff
		}
	default:
		return rgb, fmt.Errorf("%w: %q", ErrBadFill, fill)
	}
	return rgb, nil
}

// parsePoints parses the points attribute: coordinates separated by
// whitespace and/or commas
func parsePoints(points string) ([]point, error) {
	fields := strings.FieldsFunc(points, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("%w: odd coordinate count", ErrBadPoints)
	}

	pts := make([]point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPoints, fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPoints, fields[i+1])
		}
		pts = append(pts, point{X: x, Y: y})
	}
	return pts, nil
}
