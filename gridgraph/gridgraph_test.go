package gridgraph_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domino/core"
	"github.com/katalvlaran/domino/gridgraph"
)

// TestNewCheckerboard_Square builds the 2×2 network and checks every edge.
//
//	b r
//	r b
func TestNewCheckerboard_Square(t *testing.T) {
	cb := gridgraph.NewCheckerboard("br\nrb")
	defer cb.Release()

	require.Equal(t, 2, cb.BlackCount())
	require.Equal(t, 2, cb.RedCount())
	require.True(t, cb.IsValid())
	require.Equal(t, 6, cb.Graph.Len(), "4 cells + source + sink")
	// 4 black→red + 2 source + 2 sink
	require.Equal(t, 8, cb.Graph.EdgeCount())

	b00, color, ok := cb.Lookup(gridgraph.Coord{Row: 0, Col: 0})
	require.True(t, ok)
	require.Equal(t, gridgraph.Black, color)
	r01, _, _ := cb.Lookup(gridgraph.Coord{Row: 0, Col: 1})
	r10, _, _ := cb.Lookup(gridgraph.Coord{Row: 1, Col: 0})

	if diff := cmp.Diff([]core.VertexID{r10, r01}, cb.Graph.Neighbors(b00)); diff != "" {
		t.Errorf("neighbors of (0,0) (-want +got):\n%s", diff)
	}
	c, ok := cb.Graph.Capacity(b00, r01)
	require.True(t, ok)
	require.EqualValues(t, 1, c)
	require.False(t, cb.Graph.HasEdge(r01, b00), "edges run black→red only")

	require.True(t, cb.Graph.HasEdge(cb.Source, b00))
	require.True(t, cb.Graph.HasEdge(r01, cb.Sink))
	require.False(t, cb.Graph.HasEdge(cb.Source, r01))
}

// TestNewCheckerboard_BlockedAndRows checks coordinates across '#' and '\n'.
func TestNewCheckerboard_BlockedAndRows(t *testing.T) {
	cb := gridgraph.NewCheckerboard("#b\nbr")

	v, color, ok := cb.Lookup(gridgraph.Coord{Row: 0, Col: 1})
	require.True(t, ok)
	assert.Equal(t, gridgraph.Black, color)
	at, ok := cb.Coord(v)
	require.True(t, ok)
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 1}, at)

	_, _, ok = cb.Lookup(gridgraph.Coord{Row: 0, Col: 0})
	assert.False(t, ok, "blocked cell has no vertex")
	_, _, ok = cb.Lookup(gridgraph.Coord{Row: -1, Col: 0})
	assert.False(t, ok, "outside the floor")

	_, ok = cb.Coord(cb.Source)
	assert.False(t, ok, "source has no position")

	// (0,1) black sits above (1,1) red; (1,0) black is left of it.
	r11, _, _ := cb.Lookup(gridgraph.Coord{Row: 1, Col: 1})
	assert.True(t, cb.Graph.HasEdge(v, r11))
	b10, _, _ := cb.Lookup(gridgraph.Coord{Row: 1, Col: 0})
	assert.True(t, cb.Graph.HasEdge(b10, r11))
	assert.False(t, cb.IsValid(), "2 black vs 1 red")
}

// TestNewCheckerboard_NonBlackRunesAreRed follows the builder's rule that
// only 'b' is black.
func TestNewCheckerboard_NonBlackRunesAreRed(t *testing.T) {
	cb := gridgraph.NewCheckerboard("bx")
	require.Equal(t, 1, cb.BlackCount())
	require.Equal(t, 1, cb.RedCount())
}

// TestMatchingSize covers perfect, partial and empty matchings.
func TestMatchingSize(t *testing.T) {
	cases := []struct {
		name     string
		floor    string
		matching int64
		perfect  bool
	}{
		{"empty", "", 0, true},
		{"all blocked", "###", 0, true},
		{"domino", "  ", 1, true},
		{"single", " ", 0, false},
		{"square", "  \n  ", 2, true},
		{"square minus corner", "  \n #", 1, false},
		{"diagonal", " #\n# ", 0, false},
		// a plus sign: the red center can pair with only one of four blacks
		{"plus", "# #\n   \n# #", 1, false},
		{"2x3", "   \n   ", 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cb := gridgraph.NewCheckerboard(gridgraph.Colorize(tc.floor))
			defer cb.Release()

			m, err := cb.MatchingSize()
			require.NoError(t, err)
			require.Equal(t, tc.matching, m)
			require.LessOrEqual(t, m, int64(min(cb.BlackCount(), cb.RedCount())))

			ok, err := cb.HasPerfectMatching()
			require.NoError(t, err)
			require.Equal(t, tc.perfect, ok)
		})
	}
}

// TestComponents groups open cells into 4-connected regions.
func TestComponents(t *testing.T) {
	cb := gridgraph.NewCheckerboard(gridgraph.Colorize("  #\n###\n   "))

	comps := cb.Components()
	want := [][]gridgraph.Coord{
		{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	}
	if diff := cmp.Diff(want, comps); diff != "" {
		t.Errorf("components (-want +got):\n%s", diff)
	}
	assert.False(t, cb.Balanced(), "second region has 3 cells")

	assert.True(t, gridgraph.NewCheckerboard(gridgraph.Colorize("  \n##\n  ")).Balanced())
	assert.Empty(t, gridgraph.NewCheckerboard("##").Components())
}

// TestDump prints every vertex with its adjacency.
func TestDump(t *testing.T) {
	cb := gridgraph.NewCheckerboard(gridgraph.Colorize("  "))

	var buf bytes.Buffer
	require.NoError(t, cb.Dump(&buf))
	want := "(0,0) black -> (0,1):1\n" +
		"(0,1) red -> sink:1\n" +
		"source -> (0,0):1\n" +
		"sink ->\n"
	require.Equal(t, want, buf.String())
}

// TestRelease drops the arena.
func TestRelease(t *testing.T) {
	cb := gridgraph.NewCheckerboard("br")
	cb.Release()

	require.Zero(t, cb.Graph.Len())
	require.Equal(t, core.NoVertex, cb.Source)
	require.Zero(t, cb.BlackCount())
}
