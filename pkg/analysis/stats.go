package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/facetworks/facet/pkg/geometry"
	"github.com/facetworks/facet/pkg/tri"
)

// EdgeInfo describes one mesh edge
type EdgeInfo struct {
	Edge      tri.Edge
	Length    float64
	Triangles int // number of triangles sharing the edge
}

// Result contains the derived measurements of a puzzle mesh
type Result struct {
	VertexCount   int
	ColorCount    int
	TriangleCount int
	EdgeCount     int

	// Boundary edges sit on one triangle, interior edges on two or more.
	BoundaryEdges int
	InteriorEdges int

	// MaxDegree is the largest number of mesh edges at a single vertex.
	MaxDegree int

	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64

	Bounds     geometry.Bounds
	Dimensions geometry.Vec2

	AllEdges []EdgeInfo
}

// Analyze derives the measurements of a mesh
func Analyze(m *tri.Mesh) *Result {
	result := &Result{
		VertexCount:   m.VertexCount(),
		ColorCount:    m.ColorCount(),
		TriangleCount: m.TriangleCount(),
		Bounds:        m.Bounds(),
		AllEdges:      make([]EdgeInfo, 0),
	}
	result.Dimensions = result.Bounds.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, e := range m.Edges() {
		length := m.Vertex(e.A).Distance(m.Vertex(e.B))
		shared := len(m.TrianglesWithEdge(e))

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Edge:      e,
			Length:    length,
			Triangles: shared,
		})

		if shared == 1 {
			result.BoundaryEdges++
		} else {
			result.InteriorEdges++
		}

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	for v := 0; v < m.VertexCount(); v++ {
		if d := m.IncidentEdgeCount(v); d > result.MaxDegree {
			result.MaxDegree = d
		}
	}

	return result
}

// LongestEdges returns the n longest edges
func LongestEdges(result *Result, n int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if n > len(edges) {
		n = len(edges)
	}
	return edges[:n]
}

// ShortestEdges returns the n shortest edges
func ShortestEdges(result *Result, n int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if n > len(edges) {
		n = len(edges)
	}
	return edges[:n]
}

// EdgesByLength returns the edges whose length falls in [min, max]
func EdgesByLength(result *Result, min, max float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, e := range result.AllEdges {
		if e.Length >= min && e.Length <= max {
			edges = append(edges, e)
		}
	}
	return edges
}

// TriangleInfo describes one triangle of the mesh
type TriangleInfo struct {
	ID        int
	Area      float64
	Perimeter float64
	Color     int
}

// Triangles derives per-triangle measurements, in id order
func Triangles(m *tri.Mesh) []TriangleInfo {
	infos := make([]TriangleInfo, 0, m.TriangleCount())

	for id := 0; id < m.TriangleCount(); id++ {
		t := m.Triangle(id)
		a := m.Vertex(t.V0)
		b := m.Vertex(t.V1)
		c := m.Vertex(t.V2)

		infos = append(infos, TriangleInfo{
			ID:        id,
			Area:      math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2,
			Perimeter: a.Distance(b) + b.Distance(c) + c.Distance(a),
			Color:     t.Color,
		})
	}

	return infos
}

// FormatPoint formats a point for CLI output
func FormatPoint(v geometry.Vec2) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}
