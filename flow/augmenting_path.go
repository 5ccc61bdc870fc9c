package flow

import (
	"github.com/katalvlaran/domino/bfs"
	"github.com/katalvlaran/domino/core"
)

// ShortestAugmentingPath finds a fewest-edge path source→…→sink that uses
// only edges with strictly positive capacity between members of set.
//
// It returns ok=false when the sink is unreachable. A returned path starts
// at source, ends at sink and never repeats a vertex. A nil set means
// every vertex of g.
//
// Contract violations (see validate) return an *InvariantError.
//
// Complexity: O(V log V + E) including validation.
func ShortestAugmentingPath(g *core.Graph, source, sink core.VertexID, set core.VertexSet) (path []core.VertexID, ok bool, err error) {
	set, err = validate(opShortestPath, g, source, sink, set)
	if err != nil {
		return nil, false, err
	}
	path = shortestPath(g, source, sink, set)

	return path, path != nil, nil
}

// shortestPath runs the BFS without validation. A nil set disables the
// membership filter; the residual arena is built from the set alone and
// needs none.
func shortestPath(g *core.Graph, source, sink core.VertexID, set core.VertexSet) []core.VertexID {
	positive := func(curr, nbr core.VertexID) bool {
		if set != nil && !set.Has(nbr) {
			return false
		}
		c, _ := g.Capacity(curr, nbr)
		return c > 0
	}
	res, err := bfs.BFS(g, source, bfs.WithFilterNeighbor(positive), bfs.WithStopAt(sink))
	if err != nil {
		return nil
	}
	path, err := res.PathTo(sink)
	if err != nil {
		return nil
	}

	return path
}
