package flow

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/domino/core"
)

const (
	opMaxFlow      = "max flow"
	opShortestPath = "shortest augmenting path"
)

// violation builds a stack-carrying InvariantError.
func violation(op string, v, nbr core.VertexID, reason error) error {
	return errors.WithStack(&InvariantError{Op: op, Vertex: v, Neighbor: nbr, Err: reason})
}

// validate checks the contract shared by MaxFlow and
// ShortestAugmentingPath and resolves a nil set to every vertex of g.
//
// Steps:
//  1. g non-nil; source and sink non-null and distinct.
//  2. source and sink are members of set.
//  3. every member is a vertex of g, and every neighbor it lists has a
//     non-negative capacity entry.
//
// Complexity: O(V log V + E) (members are checked in handle order so the
// reported violation is deterministic).
func validate(op string, g *core.Graph, source, sink core.VertexID, set core.VertexSet) (core.VertexSet, error) {
	if g == nil {
		return nil, violation(op, core.NoVertex, core.NoVertex, ErrGraphNil)
	}
	if source == core.NoVertex || sink == core.NoVertex {
		return nil, violation(op, core.NoVertex, core.NoVertex, ErrNilEndpoint)
	}
	if source == sink {
		return nil, violation(op, source, core.NoVertex, ErrSameEndpoint)
	}
	if set == nil {
		set = core.AllVertices(g)
	}
	if !set.Has(source) {
		return nil, violation(op, source, core.NoVertex, ErrSourceNotInSet)
	}
	if !set.Has(sink) {
		return nil, violation(op, sink, core.NoVertex, ErrSinkNotInSet)
	}

	for _, v := range set.Sorted() {
		if !g.HasVertex(v) {
			return nil, violation(op, v, core.NoVertex, ErrUnknownVertex)
		}
		for _, nbr := range g.Neighbors(v) {
			c, ok := g.Capacity(v, nbr)
			if !ok {
				return nil, violation(op, v, nbr, ErrMissingCapacity)
			}
			if c < 0 {
				return nil, violation(op, v, nbr, ErrNegativeCapacity)
			}
		}
	}

	return set, nil
}
