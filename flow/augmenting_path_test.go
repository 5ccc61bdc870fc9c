package flow_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domino/core"
	"github.com/katalvlaran/domino/flow"
)

// TestShortestAugmentingPath_Basic picks the fewest-edge route, skipping
// saturated edges.
func TestShortestAugmentingPath_Basic(t *testing.T) {
	// 0→1→2→3 and 0→3 saturated, 0→4→3 open
	g := build(t, 5, []edge{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1},
		{0, 3, 0},
		{0, 4, 9}, {4, 3, 9},
	})

	path, ok, err := flow.ShortestAugmentingPath(g, 0, 3, nil)
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff([]core.VertexID{0, 4, 3}, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

// TestShortestAugmentingPath_None reports ok=false without error.
func TestShortestAugmentingPath_None(t *testing.T) {
	g := build(t, 3, []edge{{0, 1, 1}, {1, 2, 0}})

	path, ok, err := flow.ShortestAugmentingPath(g, 0, 2, nil)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, path)
}

// TestShortestAugmentingPath_RespectsSet never routes through non-members.
func TestShortestAugmentingPath_RespectsSet(t *testing.T) {
	g := build(t, 4, []edge{{0, 1, 1}, {1, 3, 1}, {0, 2, 1}, {2, 3, 1}})

	path, ok, err := flow.ShortestAugmentingPath(g, 0, 3, core.NewVertexSet(0, 2, 3))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []core.VertexID{0, 2, 3}, path)
}

// TestShortestAugmentingPath_Invariants mirrors MaxFlow's contract checks.
func TestShortestAugmentingPath_Invariants(t *testing.T) {
	g := build(t, 2, []edge{{0, 1, 1}})
	require.NoError(t, g.Link(1, 0))

	_, ok, err := flow.ShortestAugmentingPath(g, 0, 1, nil)
	require.False(t, ok)
	require.ErrorIs(t, err, flow.ErrInvariant)
	require.ErrorIs(t, err, flow.ErrMissingCapacity)

	_, _, err = flow.ShortestAugmentingPath(g, core.NoVertex, 1, nil)
	require.ErrorIs(t, err, flow.ErrNilEndpoint)
}

// TestShortestAugmentingPath_BruteForce compares path length with an
// exhaustive enumeration of simple positive-capacity paths.
func TestShortestAugmentingPath_BruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 200; trial++ {
		n := 2 + r.Intn(6)
		var edges []edge
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v && r.Float64() < 0.3 {
					edges = append(edges, edge{u, v, int64(r.Intn(3))})
				}
			}
		}
		g := build(t, n, edges)
		src, dst := core.VertexID(0), core.VertexID(n-1)

		path, ok, err := flow.ShortestAugmentingPath(g, src, dst, nil)
		require.NoError(t, err)

		want := shortestByEnumeration(g, src, dst)
		if want < 0 {
			require.False(t, ok, "trial %d: no path expected, got %v", trial, path)
			continue
		}
		require.True(t, ok, "trial %d: path of %d edges expected", trial, want)
		require.Len(t, path, want+1, "trial %d", trial)
		require.Equal(t, src, path[0])
		require.Equal(t, dst, path[len(path)-1])

		seen := map[core.VertexID]bool{}
		for i, v := range path {
			require.False(t, seen[v], "trial %d: repeated vertex %d", trial, v)
			seen[v] = true
			if i+1 < len(path) {
				c, _ := g.Capacity(v, path[i+1])
				require.Positive(t, c, "trial %d: saturated edge on path", trial)
			}
		}
	}
}

// shortestByEnumeration returns the edge count of the shortest simple
// path using positive edges, or -1.
func shortestByEnumeration(g *core.Graph, src, dst core.VertexID) int {
	best := -1
	onPath := map[core.VertexID]bool{src: true}
	var walk func(u core.VertexID, depth int)
	walk = func(u core.VertexID, depth int) {
		if u == dst {
			if best < 0 || depth < best {
				best = depth
			}
			return
		}
		for _, v := range g.Neighbors(u) {
			if c, _ := g.Capacity(u, v); c <= 0 || onPath[v] {
				continue
			}
			onPath[v] = true
			walk(v, depth+1)
			onPath[v] = false
		}
	}
	walk(src, 0)

	return best
}
