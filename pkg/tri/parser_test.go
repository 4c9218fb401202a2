package tri

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleTriangle = `0 0
1 0
0 1
255 0 0
0 1 2 0
`

func TestParseSingleTriangle(t *testing.T) {
	mesh, err := Parse(strings.NewReader(singleTriangle))
	require.NoError(t, err)

	assert.Equal(t, 3, mesh.VertexCount())
	assert.Equal(t, 1, mesh.ColorCount())
	assert.Equal(t, 1, mesh.TriangleCount())

	assert.Equal(t, 1.0, mesh.Vertex(1).X)
	assert.Equal(t, 0.0, mesh.Vertex(1).Y)

	assert.Equal(t, [3]float64{1, 0, 0}, mesh.Color(0))

	tri := mesh.Triangle(0)
	assert.Equal(t, 0, tri.V0)
	assert.Equal(t, 1, tri.V1)
	assert.Equal(t, 2, tri.V2)
	assert.Equal(t, 0, tri.Color)
}

func TestParseColorNormalization(t *testing.T) {
	mesh, err := Parse(strings.NewReader("0 128 255\n"))
	require.NoError(t, err)

	rgb := mesh.Color(0)
	assert.Equal(t, 0.0, rgb[0])
	assert.InDelta(t, 128.0/255.0, rgb[1], 1e-12)
	assert.Equal(t, 1.0, rgb[2])
}

func TestParseBounds(t *testing.T) {
	mesh, err := Parse(strings.NewReader("-1 2\n3 -4\n0.5 0.5\n"))
	require.NoError(t, err)

	bounds := mesh.Bounds()
	assert.Equal(t, -1.0, bounds.Min.X)
	assert.Equal(t, -4.0, bounds.Min.Y)
	assert.Equal(t, 3.0, bounds.Max.X)
	assert.Equal(t, 2.0, bounds.Max.Y)
}

func TestParseRejectsBadLineShapes(t *testing.T) {
	cases := []string{
		"1\n",
		"1 2 3 4 5\n",
		"\n",
		"0 0\n\n1 1\n",
	}
	for _, input := range cases {
		_, err := Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrParse, "input %q", input)
	}
}

func TestParseRejectsBadVertex(t *testing.T) {
	_, err := Parse(strings.NewReader("0 abc\n"))
	assert.ErrorIs(t, err, ErrInvalidVertex)
}

func TestParseRejectsBadColor(t *testing.T) {
	_, err := Parse(strings.NewReader("256 0 0\n"))
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = Parse(strings.NewReader("r 0 0\n"))
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestParseRejectsBadTriangle(t *testing.T) {
	base := "0 0\n1 0\n0 1\n255 0 0\n"

	cases := []struct {
		name string
		line string
	}{
		{"forward vertex reference", "0 1 3 0"},
		{"duplicate vertices", "0 1 1 0"},
		{"negative vertex index", "-1 1 2 0"},
		{"bad vertex token", "x 1 2 0"},
		{"bad color token", "0 1 2 c"},
		{"color index past tolerance", "0 1 2 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(base + tc.line + "\n"))
			assert.ErrorIs(t, err, ErrInvalidTriangle)
		})
	}
}

// A color index equal to the palette size is accepted; only the renderer
// notices that the slot does not exist.
func TestParseColorIndexInclusiveBound(t *testing.T) {
	input := "0 0\n1 0\n0 1\n255 0 0\n0 1 2 1\n"
	mesh, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, mesh.Triangle(0).Color)
	assert.Equal(t, 1, mesh.ColorCount())
}

func TestParseTriangleBeforeVertices(t *testing.T) {
	_, err := Parse(strings.NewReader("0 1 2 0\n"))
	assert.ErrorIs(t, err, ErrInvalidTriangle)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.tri")
	require.NoError(t, os.WriteFile(path, []byte(singleTriangle), 0o644))

	mesh, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.TriangleCount())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.tri"))
	assert.Error(t, err)
}
