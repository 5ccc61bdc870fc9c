// Package core provides the arena-backed Graph used by the flow and
// gridgraph packages.
//
// A Graph owns every vertex it allocates. Vertices are addressed by dense
// integer handles (VertexID) handed out by AddVertex, so two vertices are
// the same node only when their handles are equal; structurally identical
// vertices stay distinct.
//
// Per vertex the Graph keeps:
//
//   - an ordered neighbor set (insertion order, no duplicates);
//   - a neighbor→capacity map with signed int64 capacities.
//
// Adjacency and capacity are stored separately: Link adds a neighbor
// without a capacity, SetCapacity sets a capacity without a neighbor,
// AddEdge does both. A vertex listing a neighbor with no capacity entry is
// inconsistent and is rejected by flow.MaxFlow and
// flow.ShortestAugmentingPath.
//
// Core Methods:
//
//	AddVertex() VertexID                         // O(1)
//	HasVertex(v VertexID) bool                   // O(1)
//	AddEdge(from, to VertexID, c int64) error    // O(1)
//	Link(from, to VertexID) error                // O(1)
//	SetCapacity(from, to VertexID, c int64) error// O(1)
//	AddCapacity(from, to VertexID, d int64) error// O(1)
//	Capacity(from, to VertexID) (int64, bool)    // O(1)
//	Neighbors(v VertexID) []VertexID             // O(1), shared slice
//	Vertices() []VertexID                        // O(V)
//	Release()                                    // O(1)
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Every tiling query builds
//	and releases its own graphs, so nothing is shared between callers.
package core
