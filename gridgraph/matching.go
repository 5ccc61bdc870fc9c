package gridgraph

import (
	"github.com/katalvlaran/domino/flow"
)

// MatchingSize returns the size of a maximum black↔red matching, computed
// as the maximum source→sink flow. It never exceeds
// min(BlackCount(), RedCount()).
func (cb *Checkerboard) MatchingSize(opts ...flow.Option) (int64, error) {
	return flow.MaxFlow(cb.Graph, cb.Source, cb.Sink, cb.VertexSet(), opts...)
}

// HasPerfectMatching reports whether every cell can be paired with a
// grid-adjacent cell of the other color.
func (cb *Checkerboard) HasPerfectMatching(opts ...flow.Option) (bool, error) {
	if !cb.IsValid() {
		return false, nil
	}
	m, err := cb.MatchingSize(opts...)
	if err != nil {
		return false, err
	}

	return m == int64(cb.BlackCount()), nil
}
