package flow

import (
	"github.com/katalvlaran/domino/core"
)

// residualNetwork is the private working copy of one MaxFlow call.
// It never aliases vertices of the caller's graph.
type residualNetwork struct {
	graph  *core.Graph
	index  map[core.VertexID]core.VertexID // caller handle → residual handle
	origin []core.VertexID                 // residual handle → caller handle
}

// newResidual copies every member of set into a fresh arena, copies every
// edge between members with its capacity, then adds each missing reverse
// edge with capacity 0 so later augmentations can cancel flow.
//
// Complexity: O(V log V + E).
func newResidual(g *core.Graph, set core.VertexSet) (*residualNetwork, error) {
	members := set.Sorted()
	r := &residualNetwork{
		graph:  core.NewGraph(core.WithCapacityHint(len(members))),
		index:  make(map[core.VertexID]core.VertexID, len(members)),
		origin: members,
	}
	for _, v := range members {
		r.index[v] = r.graph.AddVertex()
	}

	for _, u := range members {
		for _, v := range g.Neighbors(u) {
			rv, ok := r.index[v]
			if !ok {
				continue
			}
			c, _ := g.Capacity(u, v)
			if err := r.graph.AddEdge(r.index[u], rv, c); err != nil {
				return nil, err
			}
		}
	}
	for _, u := range members {
		ru := r.index[u]
		for _, v := range g.Neighbors(u) {
			rv, ok := r.index[v]
			if !ok || r.graph.HasEdge(rv, ru) {
				continue
			}
			if err := r.graph.AddEdge(rv, ru, 0); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

// bottleneck returns the smallest capacity along path.
func (r *residualNetwork) bottleneck(path []core.VertexID) int64 {
	var b int64 = -1
	for i := 0; i+1 < len(path); i++ {
		c, _ := r.graph.Capacity(path[i], path[i+1])
		if b < 0 || c < b {
			b = c
		}
	}

	return b
}

// augment pushes amount along path: each forward edge loses amount and
// its reverse edge gains it.
func (r *residualNetwork) augment(path []core.VertexID, amount int64) error {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if err := r.graph.AddCapacity(u, v, -amount); err != nil {
			return err
		}
		if err := r.graph.AddCapacity(v, u, amount); err != nil {
			return err
		}
	}

	return nil
}

// originPath maps a residual path back to caller handles for logging.
func (r *residualNetwork) originPath(path []core.VertexID) []int {
	out := make([]int, len(path))
	for i, v := range path {
		out[i] = int(r.origin[v])
	}

	return out
}

// release drops the residual arena.
func (r *residualNetwork) release() {
	r.graph.Release()
	r.index = nil
	r.origin = nil
}
