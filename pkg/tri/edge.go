package tri

// Edge is a canonical, unordered pair of vertex indices stored with the
// smaller index first. It is a derived key, never allocated on its own,
// and is used as a map key throughout the engine.
type Edge struct {
	A, B int
}

// NewEdge creates a canonical edge from two vertex indices
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Less orders edges by first index, then second
func (e Edge) Less(other Edge) bool {
	if e.A != other.A {
		return e.A < other.A
	}
	return e.B < other.B
}
