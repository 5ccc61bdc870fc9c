package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/domino/core"
)

// Markers used in floor text.
const (
	Blocked   = '#'
	RowBreak  = '\n'
	BlackCell = 'b'
	RedCell   = 'r'
)

// Color is the checkerboard class of an open cell.
type Color uint8

const (
	// NoColor marks a blocked or missing cell.
	NoColor Color = iota
	// Black cells are fed by the source.
	Black
	// Red cells drain into the sink.
	Red
)

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// Coord is a (row, column) position in the floor text.
type Coord struct {
	Row, Col int
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// offset returns c shifted by d.
func (c Coord) offset(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// conn4 lists the orthogonal neighbor offsets: up, down, left, right.
var conn4 = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Checkerboard is the bipartite flow network of one floor plan.
//
// Black and red vertices are keyed by their Coord; coords is the reverse
// mapping used only for construction and Dump. Source feeds every black
// vertex and every red vertex drains into Sink, all with capacity 1.
type Checkerboard struct {
	Graph  *core.Graph
	Source core.VertexID
	Sink   core.VertexID

	black  map[Coord]core.VertexID
	red    map[Coord]core.VertexID
	coords map[core.VertexID]Coord
}
