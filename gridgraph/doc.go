// Package gridgraph turns a floor plan into the bipartite flow network
// used to decide domino tilings.
//
// What:
//
//   - Colorize labels every open cell of a raw floor plan black ('b') or
//     red ('r') so that grid-adjacent open cells always differ. The first
//     open cell in row-major order is black.
//   - NewCheckerboard parses labeled text into a core.Graph: one vertex per
//     open cell keyed by Coord, black→red unit edges between grid
//     neighbors (Conn4), source→black and red→sink unit edges.
//   - Components groups open cells into 4-connected regions; Balanced
//     reports whether every region holds as many black as red cells.
//   - Dump prints every vertex with its coordinates and adjacency.
//
// Floor text:
//
//	'#'  blocked cell (advances the column, no vertex)
//	'\n' row terminator
//	any other rune is an open cell; in labeled text 'b' is black and
//	every other open rune is red.
//
// Complexity:
//
//   - Colorize:        O(N) for N runes.
//   - NewCheckerboard: O(N) vertices and at most 4 edges per black cell.
//   - Components:      O(C log C) for C open cells.
//
// A Checkerboard belongs to one query; call Release when done with it.
package gridgraph
