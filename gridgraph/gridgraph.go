package gridgraph

import (
	"github.com/katalvlaran/domino/core"
)

// NewCheckerboard builds the flow network for labeled floor text.
//
// Behavior:
//  1. Scan runes tracking (row, col). '#' advances col; '\n' starts a new
//     row; 'b' creates a black vertex; any other rune creates a red one.
//     A repeated coordinate keeps the last vertex.
//  2. Link each black vertex to every red vertex at up/down/left/right
//     with capacity 1.
//  3. Add source→black and red→sink edges with capacity 1.
//
// Complexity: O(N) time and memory for N runes.
func NewCheckerboard(labeled string) *Checkerboard {
	cb := &Checkerboard{
		Graph:  core.NewGraph(core.WithCapacityHint(len(labeled) + 2)),
		black:  make(map[Coord]core.VertexID),
		red:    make(map[Coord]core.VertexID),
		coords: make(map[core.VertexID]Coord),
	}

	row, col := 0, 0
	for _, ch := range labeled {
		switch ch {
		case Blocked:
			col++
		case RowBreak:
			row++
			col = 0
		default:
			at := Coord{Row: row, Col: col}
			v := cb.Graph.AddVertex()
			if ch == BlackCell {
				cb.black[at] = v
			} else {
				cb.red[at] = v
			}
			cb.coords[v] = at
			col++
		}
	}

	cb.linkNeighbors()
	cb.attachTerminals()

	return cb
}

// linkNeighbors adds black→red unit edges between grid neighbors.
// Blacks are visited in row-major order so adjacency order is stable.
func (cb *Checkerboard) linkNeighbors() {
	for _, at := range sortedCoords(cb.black) {
		v := cb.black[at]
		for _, d := range conn4 {
			nbr, ok := cb.red[at.offset(d)]
			if !ok {
				continue
			}
			// handles come from this arena, AddEdge cannot fail
			_ = cb.Graph.AddEdge(v, nbr, 1)
		}
	}
}

// attachTerminals creates the source and sink vertices.
func (cb *Checkerboard) attachTerminals() {
	cb.Source = cb.Graph.AddVertex()
	cb.Sink = cb.Graph.AddVertex()
	for _, at := range sortedCoords(cb.black) {
		_ = cb.Graph.AddEdge(cb.Source, cb.black[at], 1)
	}
	for _, at := range sortedCoords(cb.red) {
		_ = cb.Graph.AddEdge(cb.red[at], cb.Sink, 1)
	}
}

// Lookup returns the vertex and color of the open cell at c, or ok=false
// when c is blocked or outside the floor.
func (cb *Checkerboard) Lookup(c Coord) (v core.VertexID, color Color, ok bool) {
	if v, ok = cb.black[c]; ok {
		return v, Black, true
	}
	if v, ok = cb.red[c]; ok {
		return v, Red, true
	}

	return core.NoVertex, NoColor, false
}

// Coord returns the grid position of a cell vertex. Source and sink have
// no position.
func (cb *Checkerboard) Coord(v core.VertexID) (Coord, bool) {
	c, ok := cb.coords[v]

	return c, ok
}

// BlackCount returns the number of black cells.
func (cb *Checkerboard) BlackCount() int { return len(cb.black) }

// RedCount returns the number of red cells.
func (cb *Checkerboard) RedCount() int { return len(cb.red) }

// IsValid reports whether black and red counts match, the precondition
// for a perfect matching.
func (cb *Checkerboard) IsValid() bool {
	return len(cb.black) == len(cb.red)
}

// VertexSet returns the working universe for flow computations: every
// cell plus source and sink.
func (cb *Checkerboard) VertexSet() core.VertexSet {
	return core.AllVertices(cb.Graph)
}

// Release drops the whole arena. The Checkerboard is unusable afterwards.
func (cb *Checkerboard) Release() {
	cb.Graph.Release()
	cb.black, cb.red, cb.coords = nil, nil, nil
	cb.Source, cb.Sink = core.NoVertex, core.NoVertex
}
