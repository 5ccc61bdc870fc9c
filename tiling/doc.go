// Package tiling decides whether a floor plan can be covered by 1×2
// dominoes.
//
// The floor is checkerboard-colored (gridgraph.Colorize), turned into a
// bipartite flow network (gridgraph.NewCheckerboard) and solved with
// Edmonds–Karp (flow.MaxFlow). A tiling exists iff the maximum matching
// pairs every black cell with a red neighbor.
//
// Pipeline:
//
//	floor text → Colorize → NewCheckerboard
//	          → black == red?              else Unbalanced
//	          → every region balanced?     else ComponentUnbalanced
//	          → MaxFlow == black count?    else Unmatched
//
// A negative answer is a normal result (Tileable=false, nil error). An
// error is returned only when the flow engine reports a broken graph
// invariant (flow.ErrInvariant), which indicates a bug, not bad input.
//
// Every call builds and releases its own graph; concurrent calls with
// different floors share nothing.
package tiling
