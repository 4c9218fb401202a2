package svgconv

import (
	"strings"
	"testing"

	"github.com/facetworks/facet/pkg/tri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoTriangleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="4px" height="4">
<polygon fill="#ff0000" points="0,0 4,0 4,4"/>
<polygon fill="#FF0000" points="0,0 4,4 0,4"/>
</svg>`

func TestConvertTwoTriangles(t *testing.T) {
	doc, err := Convert(strings.NewReader(twoTriangleSVG))
	require.NoError(t, err)

	assert.Equal(t, 4.0, doc.Width)
	assert.Equal(t, 4.0, doc.Height)

	// The shared corners and the case-insensitive fill deduplicate.
	assert.Equal(t, 4, doc.VertexCount())
	assert.Equal(t, 1, doc.ColorCount())
	assert.Equal(t, 2, doc.TriangleCount())
}

func TestConvertRoundTripsThroughMeshParser(t *testing.T) {
	doc, err := Convert(strings.NewReader(twoTriangleSVG))
	require.NoError(t, err)

	mesh, err := doc.Mesh()
	require.NoError(t, err)

	assert.Equal(t, 4, mesh.VertexCount())
	assert.Equal(t, 1, mesh.ColorCount())
	assert.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, [3]float64{1, 0, 0}, mesh.Color(0))

	// Both triangles share the diagonal (0,0)-(4,4), vertices 0 and 2.
	assert.Equal(t, []int{0, 1}, mesh.TrianglesWithEdge(tri.NewEdge(0, 2)))
}

func TestConvertWriteTo(t *testing.T) {
	doc, err := Convert(strings.NewReader(twoTriangleSVG))
	require.NoError(t, err)

	var sb strings.Builder
	n, err := doc.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len(sb.String())), n)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "0 0", lines[0])
	assert.Equal(t, "255 0 0", lines[4])
	assert.Equal(t, "0 1 2 0", lines[5])
	assert.Equal(t, "0 2 3 0", lines[6])
}

func TestConvertSkipsUnfilledPolygons(t *testing.T) {
	svg := `<svg width="2" height="2">
<polygon fill="none" points="0,0 1,0 1,1"/>
<polygon points="0,0 1,0 0,1"/>
<polygon fill="#0f0" points="0,0 2,0 2,2"/>
</svg>`
	doc, err := Convert(strings.NewReader(svg))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.TriangleCount())
}

func TestConvertShortHexFill(t *testing.T) {
	svg := `<svg><polygon fill="#1fa" points="0,0 1,0 1,1"/></svg>`
	doc, err := Convert(strings.NewReader(svg))
	require.NoError(t, err)

	mesh, err := doc.Mesh()
	require.NoError(t, err)

	rgb := mesh.Color(0)
	assert.InDelta(t, 0x11/255.0, rgb[0], 1e-12)
	assert.InDelta(t, 1.0, rgb[1], 1e-12)
	assert.InDelta(t, 0xaa/255.0, rgb[2], 1e-12)
}

func TestConvertWhitespaceSeparatedPoints(t *testing.T) {
	svg := `<svg><polygon fill="#000000" points="0 0, 1 0, 1 1"/></svg>`
	doc, err := Convert(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.VertexCount())
}

func TestConvertRejectsNonTriangles(t *testing.T) {
	svg := `<svg><polygon fill="#000000" points="0,0 1,0 1,1 0,1"/></svg>`
	_, err := Convert(strings.NewReader(svg))
	assert.ErrorIs(t, err, ErrNotTriangle)

	svg = `<svg><polygon fill="#000000" points="0,0 0,0 1,1"/></svg>`
	_, err = Convert(strings.NewReader(svg))
	assert.ErrorIs(t, err, ErrNotTriangle)
}

func TestConvertRejectsBadFill(t *testing.T) {
	for _, fill := range []string{"red", "#12345", "#gg0000", "rgb(1,2,3)"} {
		svg := `<svg><polygon fill="` + fill + `" points="0,0 1,0 1,1"/></svg>`
		_, err := Convert(strings.NewReader(svg))
		assert.ErrorIs(t, err, ErrBadFill, "fill %q", fill)
	}
}

func TestConvertRejectsBadPoints(t *testing.T) {
	svg := `<svg><polygon fill="#000000" points="0,0 1,0 1"/></svg>`
	_, err := Convert(strings.NewReader(svg))
	assert.ErrorIs(t, err, ErrBadPoints)

	svg = `<svg><polygon fill="#000000" points="0,0 a,0 1,1"/></svg>`
	_, err = Convert(strings.NewReader(svg))
	assert.ErrorIs(t, err, ErrBadPoints)
}

func TestConvertEmptyDocument(t *testing.T) {
	_, err := Convert(strings.NewReader(`<svg width="1" height="1"></svg>`))
	assert.ErrorIs(t, err, ErrNoPolygons)
}
