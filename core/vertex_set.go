package core

import "sort"

// VertexSet is the working universe of vertices for one algorithm call.
type VertexSet map[VertexID]struct{}

// NewVertexSet builds a set holding ids.
func NewVertexSet(ids ...VertexID) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// AllVertices returns a set holding every vertex of g.
func AllVertices(g *Graph) VertexSet {
	return NewVertexSet(g.Vertices()...)
}

// Add inserts ids into s.
func (s VertexSet) Add(ids ...VertexID) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Has reports membership. A nil set holds nothing.
func (s VertexSet) Has(id VertexID) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of members.
func (s VertexSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending handle order so that every
// traversal over a set is deterministic.
func (s VertexSet) Sorted() []VertexID {
	out := make([]VertexID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
