// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; the flow package uses it
//     to walk only edges with positive residual capacity.
//   - WithStopAt ends the search as soon as a target is discovered. In BFS
//     a vertex's depth is final when it is first enqueued, so the path to
//     the target is already shortest at that point.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph keeps neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, visited set and result maps.
//
// Errors
//
//	ErrGraphNil            - nil graph.
//	ErrStartVertexNotFound - start handle not allocated by the graph.
//	ErrOptionViolation     - invalid option (negative MaxDepth).
//	ErrNotReached          - PathTo on a vertex the search never reached.
package bfs
