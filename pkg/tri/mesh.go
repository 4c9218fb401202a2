package tri

import (
	"sort"

	"github.com/facetworks/facet/pkg/geometry"
)

// Triangle is an ordered triple of vertex indices plus a color index.
// A triangle is identified by its position in the mesh's triangle
// sequence (its id).
type Triangle struct {
	V0, V1, V2 int
	Color      int
}

// Mesh is an immutable triangulated planar mesh: vertices, triangles,
// a color palette, and adjacency indices derived once at build time.
// Build one with Parse or ParseFile. A Mesh is safe for concurrent
// readers; nothing mutates it after construction.
type Mesh struct {
	vertices  []geometry.Vec2
	colors    [][3]float64
	triangles []Triangle
	bounds    geometry.Bounds

	edgeTriangles map[Edge][]int
	triangleEdges [][3]Edge
	vertexEdges   []map[Edge]struct{}
}

// buildIndices derives the adjacency indices in one pass over the
// triangles: edge to containing triangle ids (in id order), triangle id
// to its 3 canonical edges, and vertex to its set of incident edges.
func (m *Mesh) buildIndices() {
	m.edgeTriangles = make(map[Edge][]int)
	m.triangleEdges = make([][3]Edge, len(m.triangles))
	m.vertexEdges = make([]map[Edge]struct{}, len(m.vertices))

	for id, t := range m.triangles {
		edges := [3]Edge{
			NewEdge(t.V0, t.V1),
			NewEdge(t.V1, t.V2),
			NewEdge(t.V0, t.V2),
		}
		m.triangleEdges[id] = edges

		for _, e := range edges {
			m.edgeTriangles[e] = append(m.edgeTriangles[e], id)
			m.addVertexEdge(e.A, e)
			m.addVertexEdge(e.B, e)
		}
	}
}

func (m *Mesh) addVertexEdge(v int, e Edge) {
	if m.vertexEdges[v] == nil {
		m.vertexEdges[v] = make(map[Edge]struct{})
	}
	m.vertexEdges[v][e] = struct{}{}
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// ColorCount returns the number of palette entries
func (m *Mesh) ColorCount() int {
	return len(m.colors)
}

// TriangleCount returns the number of triangles
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Vertex returns the position of a vertex
func (m *Mesh) Vertex(i int) geometry.Vec2 {
	return m.vertices[i]
}

// Color returns a palette entry as RGB components in [0,1]
func (m *Mesh) Color(i int) [3]float64 {
	return m.colors[i]
}

// Triangle returns the triangle with the given id
func (m *Mesh) Triangle(id int) Triangle {
	return m.triangles[id]
}

// TrianglesWithEdge returns the ids of the triangles containing the
// edge, in ascending id order. The result is nil if the edge is not a
// mesh edge and must not be modified by the caller.
func (m *Mesh) TrianglesWithEdge(e Edge) []int {
	return m.edgeTriangles[e]
}

// EdgesOfTriangle returns the 3 canonical edges of a triangle.
// Valid only for id < TriangleCount().
func (m *Mesh) EdgesOfTriangle(id int) [3]Edge {
	return m.triangleEdges[id]
}

// IncidentEdgeCount returns how many mesh edges touch the vertex,
// 0 for vertices that appear in no triangle.
func (m *Mesh) IncidentEdgeCount(v int) int {
	if v < 0 || v >= len(m.vertexEdges) {
		return 0
	}
	return len(m.vertexEdges[v])
}

// IsValidEdge reports whether both endpoints are valid vertex indices.
// The pair does not have to be a mesh edge: players may connect any two
// vertices, and non-mesh edges simply contribute to no triangle.
func (m *Mesh) IsValidEdge(e Edge) bool {
	return e.A >= 0 && e.A < len(m.vertices) && e.B >= 0 && e.B < len(m.vertices)
}

// NearestVertex scans vertices in index order and returns the first one
// within threshold distance of the point. The boolean is false when no
// vertex qualifies.
func (m *Mesh) NearestVertex(p geometry.Vec2, threshold float64) (int, bool) {
	for i, v := range m.vertices {
		if v.Distance(p) <= threshold {
			return i, true
		}
	}
	return 0, false
}

// Edges returns every mesh edge in canonical sort order
func (m *Mesh) Edges() []Edge {
	edges := make([]Edge, 0, len(m.edgeTriangles))
	for e := range m.edgeTriangles {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})
	return edges
}

// Bounds returns the bounding box of all vertices
func (m *Mesh) Bounds() geometry.Bounds {
	return m.bounds
}
