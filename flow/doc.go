// Package flow implements maximum s–t flow over a core.Graph with the
// Edmonds–Karp algorithm, plus the shortest augmenting-path search it is
// built on.
//
//   - ShortestAugmentingPath
//
//   - Method: breadth-first search over edges with strictly positive
//     capacity, restricted to a vertex set.
//
//   - Result: the fewest-edge source→sink path, or ok=false.
//
//   - MaxFlow / MaxFlowStats
//
//   - Method: residual copy of the vertex set (plus zero-capacity reverse
//     edges), repeated shortest augmenting paths, bottleneck push.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V + E) for the residual arena, released before return.
//
// # Vertex sets
//
// Both entry points take the working universe of vertices as a
// core.VertexSet. The set must contain source and sink; a nil set means
// "every vertex of the graph". Edges leaving the set are never traversed.
//
// # Errors
//
// Infeasibility is not an error: "no path" is ok=false and "no flow" is 0.
// Broken graph invariants are reported as *InvariantError, which matches
// ErrInvariant under errors.Is and wraps one of:
//
//	ErrGraphNil         - nil graph.
//	ErrNilEndpoint      - source or sink is core.NoVertex.
//	ErrSameEndpoint     - source equals sink.
//	ErrSourceNotInSet   - source missing from the vertex set.
//	ErrSinkNotInSet     - sink missing from the vertex set.
//	ErrUnknownVertex    - set member never allocated by the graph.
//	ErrMissingCapacity  - neighbor without a capacity entry.
//	ErrNegativeCapacity - capacity below zero.
//
// Invariant errors carry a stack trace (github.com/pkg/errors); format
// them with %+v to print it.
//
// # Options
//
//	WithVerbose()                 log each augmentation at debug level
//	WithLogger(zerolog.Logger)    destination logger (default: disabled)
package flow
