package flow

import (
	"github.com/katalvlaran/domino/core"
)

// MaxFlow computes the maximum flow source→sink over the vertices in set
// with the Edmonds–Karp algorithm. A nil set means every vertex of g.
//
// The caller's graph is never modified: the algorithm works on a private
// residual copy that is released before MaxFlow returns.
//
// Contract violations return an *InvariantError (errors.Is(err,
// ErrInvariant)); they are never folded into a zero flow.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func MaxFlow(g *core.Graph, source, sink core.VertexID, set core.VertexSet, opts ...Option) (int64, error) {
	st, err := MaxFlowStats(g, source, sink, set, opts...)

	return st.Value, err
}

// MaxFlowStats is MaxFlow that also reports how many augmenting paths
// were pushed.
//
// Steps:
//  1. Validate the contract.
//  2. Build the residual arena (copy + zero-capacity reverse edges).
//  3. While a shortest augmenting path exists, push its bottleneck.
//  4. Flow = Σ over source's original out-edges into set of
//     (original capacity − residual capacity).
//  5. Release the residual arena.
func MaxFlowStats(g *core.Graph, source, sink core.VertexID, set core.VertexSet, opts ...Option) (Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	set, err := validate(opMaxFlow, g, source, sink, set)
	if err != nil {
		return Stats{}, err
	}

	res, err := newResidual(g, set)
	if err != nil {
		return Stats{}, err
	}
	defer res.release()

	rs, rt := res.index[source], res.index[sink]
	var st Stats
	for {
		path := shortestPath(res.graph, rs, rt, nil)
		if path == nil {
			break
		}
		b := res.bottleneck(path)
		if o.Verbose {
			o.Logger.Debug().
				Int("round", st.Augmentations+1).
				Ints("path", res.originPath(path)).
				Int64("bottleneck", b).
				Msg("augmenting path")
		}
		if err := res.augment(path, b); err != nil {
			return Stats{}, err
		}
		st.Augmentations++
	}

	for _, v := range g.Neighbors(source) {
		rv, ok := res.index[v]
		if !ok {
			continue
		}
		orig, _ := g.Capacity(source, v)
		left, _ := res.graph.Capacity(rs, rv)
		st.Value += orig - left
	}

	o.Logger.Debug().
		Int64("flow", st.Value).
		Int("augmentations", st.Augmentations).
		Int("vertices", set.Len()).
		Msg("max flow computed")

	return st, nil
}
