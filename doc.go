// Package domino decides whether a floor plan can be tiled by 1×2
// dominoes, by reducing the question to bipartite perfect matching and
// solving it as a maximum flow.
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/      arena Graph: VertexID handles, neighbor sets, capacities
//	bfs/       breadth-first walker with hooks, filters and early stop
//	flow/      shortest augmenting paths and Edmonds–Karp max flow
//	gridgraph/ checkerboard coloring and the black/red flow network
//	tiling/    the yes/no decision
//	cmd/tiling command-line driver
//
// Quick example:
//
//	ok, err := tiling.HasTiling("  \n  ") // true: two dominoes fit
//
// A floor is row-major text: '#' is blocked, '\n' ends a row, anything
// else is an open cell.
package domino
