package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a handle that the
	// Graph never allocated (or that was dropped by Release).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoVertex indicates the NoVertex handle was passed where a real
	// vertex is required.
	ErrNoVertex = errors.New("core: no vertex")

	// ErrEdgeNotFound indicates a capacity update on a missing edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// VertexID is a stable handle to a vertex inside one Graph.
type VertexID int

// NoVertex is the null handle.
const NoVertex VertexID = -1

// vertex is the per-handle storage slot of the arena.
type vertex struct {
	neighbors []VertexID            // insertion-ordered neighbor set
	linked    map[VertexID]struct{} // membership index for neighbors
	capacity  map[VertexID]int64    // neighbor → capacity
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacityHint preallocates room for n vertices.
func WithCapacityHint(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]vertex, 0, n)
		}
	}
}

// Graph is an arena of vertices with directed, capacitated adjacency.
type Graph struct {
	vertices []vertex
	edges    int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
