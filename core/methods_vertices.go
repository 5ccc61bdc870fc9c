package core

// AddVertex allocates a new vertex and returns its handle.
// Handles are dense: the n-th call returns VertexID(n-1).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() VertexID {
	g.vertices = append(g.vertices, vertex{
		linked:   make(map[VertexID]struct{}),
		capacity: make(map[VertexID]int64),
	})

	return VertexID(len(g.vertices) - 1)
}

// HasVertex reports whether v was allocated by g.
func (g *Graph) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.vertices)
}

// Len returns the number of vertices in the arena.
func (g *Graph) Len() int {
	return len(g.vertices)
}

// Vertices returns every handle in ascending order.
// Complexity: O(V)
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.vertices))
	for i := range g.vertices {
		out[i] = VertexID(i)
	}

	return out
}

// Neighbors returns the neighbor set of v in insertion order.
// The slice is owned by the Graph and must not be modified.
// Unknown handles yield nil.
func (g *Graph) Neighbors(v VertexID) []VertexID {
	if !g.HasVertex(v) {
		return nil
	}

	return g.vertices[v].neighbors
}

// Release drops every vertex at once. The Graph is empty afterwards and
// handles issued before the call are no longer valid.
func (g *Graph) Release() {
	g.vertices = nil
	g.edges = 0
}

// check validates a pair of handles for edge operations.
func (g *Graph) check(from, to VertexID) error {
	if from == NoVertex || to == NoVertex {
		return ErrNoVertex
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexNotFound
	}

	return nil
}
