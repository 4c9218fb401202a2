package scene

import (
	"github.com/facetworks/facet/pkg/geometry"
	"github.com/facetworks/facet/pkg/puzzle"
	"github.com/facetworks/facet/pkg/tri"
)

// Static holds the flattened per-mesh arrays a renderer uploads once per
// puzzle: vertex positions, the triangle corner expansion, and the color
// palette. Coordinates are float32 here; the mesh keeps float64.
type Static struct {
	Positions    []float32 // x,y per vertex
	PointIndices []uint32  // one index per vertex, in order
	TriangleData []float32 // x,y,colorIndex per corner, 9 per triangle
	ColorTable   []float32 // r,g,b per palette entry
}

// BuildStatic flattens a mesh into renderer-ready arrays
func BuildStatic(m *tri.Mesh) *Static {
	s := &Static{
		Positions:    make([]float32, 0, m.VertexCount()*2),
		PointIndices: make([]uint32, 0, m.VertexCount()),
		TriangleData: make([]float32, 0, m.TriangleCount()*9),
		ColorTable:   make([]float32, 0, m.ColorCount()*3),
	}

	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		s.Positions = append(s.Positions, float32(v.X), float32(v.Y))
		s.PointIndices = append(s.PointIndices, uint32(i))
	}

	for id := 0; id < m.TriangleCount(); id++ {
		t := m.Triangle(id)
		for _, vi := range [3]int{t.V0, t.V1, t.V2} {
			v := m.Vertex(vi)
			s.TriangleData = append(s.TriangleData,
				float32(v.X), float32(v.Y), float32(t.Color))
		}
	}

	for i := 0; i < m.ColorCount(); i++ {
		rgb := m.Color(i)
		s.ColorTable = append(s.ColorTable,
			float32(rgb[0]), float32(rgb[1]), float32(rgb[2]))
	}

	return s
}

// Frame holds the per-frame arrays derived from the session state:
// segments for the drawn edges, index triples for the unlocked
// triangles, and the optional interactive feedback.
type Frame struct {
	EdgeSegments      []float32 // x0,y0,x1,y1 per drawn edge
	UnlockedTriangles []uint32  // v0,v1,v2 per unlocked triangle
	HighlightVertices []uint32
	PendingSegment    []float32 // empty, or x0,y0,x1,y1
}

type frameOptions struct {
	highlight   []int
	pendingFrom int
	pendingTo   geometry.Vec2
	hasPending  bool
}

// FrameOption adds interactive feedback to a frame
type FrameOption func(*frameOptions)

// WithHighlight marks vertices to be rendered highlighted
func WithHighlight(vertices ...int) FrameOption {
	return func(o *frameOptions) {
		o.highlight = append(o.highlight, vertices...)
	}
}

// WithPending adds the in-progress edge preview from a vertex to the cursor
func WithPending(from int, cursor geometry.Vec2) FrameOption {
	return func(o *frameOptions) {
		o.pendingFrom = from
		o.pendingTo = cursor
		o.hasPending = true
	}
}

// BuildFrame derives the per-frame arrays from the current session
// state. Drawn edges appear in canonical sort order, unlocked triangles
// in ascending id order, so equal states produce equal frames.
func BuildFrame(m *tri.Mesh, s *puzzle.State, opts ...FrameOption) *Frame {
	var o frameOptions
	for _, opt := range opts {
		opt(&o)
	}

	edges := s.ConnectedEdges()
	unlocked := s.UnlockedTriangles()

	f := &Frame{
		EdgeSegments:      make([]float32, 0, len(edges)*4),
		UnlockedTriangles: make([]uint32, 0, len(unlocked)*3),
	}

	for _, e := range edges {
		a, b := m.Vertex(e.A), m.Vertex(e.B)
		f.EdgeSegments = append(f.EdgeSegments,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y))
	}

	for _, id := range unlocked {
		t := m.Triangle(id)
		f.UnlockedTriangles = append(f.UnlockedTriangles,
			uint32(t.V0), uint32(t.V1), uint32(t.V2))
	}

	for _, v := range o.highlight {
		f.HighlightVertices = append(f.HighlightVertices, uint32(v))
	}

	if o.hasPending {
		from := m.Vertex(o.pendingFrom)
		f.PendingSegment = []float32{
			float32(from.X), float32(from.Y),
			float32(o.pendingTo.X), float32(o.pendingTo.Y),
		}
	}

	return f
}
