package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetworks/facet/pkg/tri"
)

// Two triangles sharing the edge between vertices 1 and 2.
const quadPuzzle = "0 0\n2 0\n2 2\n0 2\n255 0 0\n0 128 255\n0 1 2 0\n1 2 3 1\n"

func analyzeQuad(t *testing.T) *Result {
	t.Helper()
	mesh, err := tri.Parse(strings.NewReader(quadPuzzle))
	require.NoError(t, err)
	return Analyze(mesh)
}

func TestAnalyzeCounts(t *testing.T) {
	result := analyzeQuad(t)

	assert.Equal(t, 4, result.VertexCount)
	assert.Equal(t, 2, result.ColorCount)
	assert.Equal(t, 2, result.TriangleCount)
	assert.Equal(t, 5, result.EdgeCount)
}

func TestAnalyzeEdgeSharing(t *testing.T) {
	result := analyzeQuad(t)

	assert.Equal(t, 4, result.BoundaryEdges)
	assert.Equal(t, 1, result.InteriorEdges)

	for _, info := range result.AllEdges {
		if info.Edge == tri.NewEdge(1, 2) {
			assert.Equal(t, 2, info.Triangles)
		} else {
			assert.Equal(t, 1, info.Triangles)
		}
	}
}

func TestAnalyzeDegreeAndDimensions(t *testing.T) {
	result := analyzeQuad(t)

	assert.Equal(t, 3, result.MaxDegree)
	assert.InDelta(t, 2.0, result.Dimensions.X, 1e-10)
	assert.InDelta(t, 2.0, result.Dimensions.Y, 1e-10)
}

func TestAnalyzeEdgeLengths(t *testing.T) {
	result := analyzeQuad(t)
	diagonal := 2 * math.Sqrt2

	assert.InDelta(t, 2.0, result.MinEdgeLength, 1e-10)
	assert.InDelta(t, diagonal, result.MaxEdgeLength, 1e-10)
	assert.InDelta(t, (6+2*diagonal)/5, result.AvgEdgeLength, 1e-10)
}

func TestLongestAndShortestEdges(t *testing.T) {
	result := analyzeQuad(t)
	diagonal := 2 * math.Sqrt2

	longest := LongestEdges(result, 2)
	require.Len(t, longest, 2)
	assert.InDelta(t, diagonal, longest[0].Length, 1e-10)
	assert.InDelta(t, diagonal, longest[1].Length, 1e-10)

	shortest := ShortestEdges(result, 1)
	require.Len(t, shortest, 1)
	assert.InDelta(t, 2.0, shortest[0].Length, 1e-10)

	assert.Len(t, LongestEdges(result, 100), 5)
}

func TestTriangles(t *testing.T) {
	mesh, err := tri.Parse(strings.NewReader(quadPuzzle))
	require.NoError(t, err)

	infos := Triangles(mesh)
	require.Len(t, infos, 2)

	perimeter := 4 + 2*math.Sqrt2

	assert.Equal(t, 0, infos[0].ID)
	assert.Equal(t, 0, infos[0].Color)
	assert.InDelta(t, 2.0, infos[0].Area, 1e-10)
	assert.InDelta(t, perimeter, infos[0].Perimeter, 1e-10)

	assert.Equal(t, 1, infos[1].ID)
	assert.Equal(t, 1, infos[1].Color)
	assert.InDelta(t, 2.0, infos[1].Area, 1e-10)
	assert.InDelta(t, perimeter, infos[1].Perimeter, 1e-10)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	mesh, err := tri.Parse(strings.NewReader(""))
	require.NoError(t, err)

	result := Analyze(mesh)
	assert.Zero(t, result.EdgeCount)
	assert.Zero(t, result.MinEdgeLength)
	assert.Zero(t, result.AvgEdgeLength)
	assert.Zero(t, result.MaxDegree)
}
