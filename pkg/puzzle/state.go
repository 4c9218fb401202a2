package puzzle

import (
	"sort"

	"github.com/facetworks/facet/pkg/tri"
)

// State tracks one play session on top of a mesh: which edges the
// player has drawn, which triangles are unlocked, and which edges and
// vertices have become permanent. The mesh itself is never mutated.
//
// Connect, Disconnect and DisconnectVertex are the only mutation entry
// points; each keeps every derived index consistent before returning.
// A State expects exclusive access during a call (one driving loop, no
// internal locking).
type State struct {
	mesh *tri.Mesh

	remaining []int
	unlocked  map[int]struct{}

	connected         map[tri.Edge]struct{}
	connectedByVertex map[int]map[tri.Edge]struct{}

	permanent         map[tri.Edge]struct{}
	permCountByVertex map[int]int
	permanentVertices map[int]struct{}
}

// NewState creates a fresh session bound to a mesh: every triangle
// still needs all 3 of its edges, nothing is drawn, nothing permanent.
func NewState(m *tri.Mesh) *State {
	s := &State{
		mesh:              m,
		remaining:         make([]int, m.TriangleCount()),
		unlocked:          make(map[int]struct{}),
		connected:         make(map[tri.Edge]struct{}),
		connectedByVertex: make(map[int]map[tri.Edge]struct{}),
		permanent:         make(map[tri.Edge]struct{}),
		permCountByVertex: make(map[int]int),
		permanentVertices: make(map[int]struct{}),
	}
	for id := range s.remaining {
		s.remaining[id] = 3
	}
	return s
}

// Connect draws an edge between two vertices. Drawing an edge that is
// already present is a no-op. Every triangle containing the edge has
// its remaining count decremented; a triangle that reaches 0 unlocks
// and ratchets its 3 edges permanent. Edges between vertices that do
// not form a mesh edge are recorded but touch no triangle.
//
// Endpoints must be valid vertex indices (see Mesh.IsValidEdge); the
// caller validates before calling.
func (s *State) Connect(e tri.Edge) {
	e = tri.NewEdge(e.A, e.B)
	if _, ok := s.connected[e]; ok {
		return
	}
	s.connected[e] = struct{}{}
	s.addConnectedAt(e.A, e)
	s.addConnectedAt(e.B, e)

	for _, id := range s.mesh.TrianglesWithEdge(e) {
		s.remaining[id]--
		if s.remaining[id] == 0 {
			s.unlock(id)
		}
	}
}

// unlock marks a triangle unlocked and makes its edges permanent. The
// per-vertex counters are bumped on every unlock event, so a re-unlock
// after a disconnect bumps them again; the equality against the
// incident edge count fires only on the first crossing, which is when
// the vertex turns permanent.
func (s *State) unlock(id int) {
	s.unlocked[id] = struct{}{}

	for _, e := range s.mesh.EdgesOfTriangle(id) {
		s.permanent[e] = struct{}{}
		for _, v := range [2]int{e.A, e.B} {
			s.permCountByVertex[v]++
			if s.permCountByVertex[v] == s.mesh.IncidentEdgeCount(v) {
				s.permanentVertices[v] = struct{}{}
			}
		}
	}
}

// Disconnect removes a drawn edge. Removing an edge that is not drawn
// is a no-op. Every triangle containing the edge re-locks if it was
// unlocked, then has its remaining count incremented. Permanence is a
// one-way ratchet: permanent edges and vertices stay permanent here.
func (s *State) Disconnect(e tri.Edge) {
	e = tri.NewEdge(e.A, e.B)
	if _, ok := s.connected[e]; !ok {
		return
	}
	delete(s.connected, e)
	s.removeConnectedAt(e.A, e)
	s.removeConnectedAt(e.B, e)

	for _, id := range s.mesh.TrianglesWithEdge(e) {
		if s.remaining[id] == 0 {
			delete(s.unlocked, id)
		}
		s.remaining[id]++
	}
}

// DisconnectVertex removes every non-permanent edge drawn at a vertex.
// This is the cancel gesture for clicking the same vertex twice. When
// the vertex is permanent and its drawn-edge count matches its
// permanent-edge count there is nothing elidable and the call returns
// immediately; otherwise permanent edges are skipped one by one.
func (s *State) DisconnectVertex(v int) {
	connectedAt := s.connectedByVertex[v]
	if _, perm := s.permanentVertices[v]; perm && len(connectedAt) == s.permCountByVertex[v] {
		return
	}

	// Disconnect mutates the per-vertex set, so iterate a snapshot.
	snapshot := make([]tri.Edge, 0, len(connectedAt))
	for e := range connectedAt {
		snapshot = append(snapshot, e)
	}
	for _, e := range snapshot {
		if _, perm := s.permanent[e]; perm {
			continue
		}
		s.Disconnect(e)
	}
}

// Finished reports whether every triangle is unlocked
func (s *State) Finished() bool {
	return len(s.unlocked) == s.mesh.TriangleCount()
}

// Remaining returns how many of the triangle's edges are still undrawn
func (s *State) Remaining(id int) int {
	return s.remaining[id]
}

// EdgeConnected reports whether the edge is currently drawn
func (s *State) EdgeConnected(e tri.Edge) bool {
	_, ok := s.connected[tri.NewEdge(e.A, e.B)]
	return ok
}

// EdgePermanent reports whether the edge has been ratcheted permanent
func (s *State) EdgePermanent(e tri.Edge) bool {
	_, ok := s.permanent[tri.NewEdge(e.A, e.B)]
	return ok
}

// VertexPermanent reports whether every mesh edge at the vertex is permanent
func (s *State) VertexPermanent(v int) bool {
	_, ok := s.permanentVertices[v]
	return ok
}

// ConnectedEdgeCount returns the number of drawn edges
func (s *State) ConnectedEdgeCount() int {
	return len(s.connected)
}

// UnlockedCount returns the number of unlocked triangles
func (s *State) UnlockedCount() int {
	return len(s.unlocked)
}

// ConnectedEdges returns the drawn edges in canonical sort order.
// The slice is a copy; mutating it does not affect the session.
func (s *State) ConnectedEdges() []tri.Edge {
	edges := make([]tri.Edge, 0, len(s.connected))
	for e := range s.connected {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})
	return edges
}

// UnlockedTriangles returns the unlocked triangle ids in ascending order.
// The slice is a copy; mutating it does not affect the session.
func (s *State) UnlockedTriangles() []int {
	ids := make([]int, 0, len(s.unlocked))
	for id := range s.unlocked {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *State) addConnectedAt(v int, e tri.Edge) {
	if s.connectedByVertex[v] == nil {
		s.connectedByVertex[v] = make(map[tri.Edge]struct{})
	}
	s.connectedByVertex[v][e] = struct{}{}
}

func (s *State) removeConnectedAt(v int, e tri.Edge) {
	delete(s.connectedByVertex[v], e)
}
