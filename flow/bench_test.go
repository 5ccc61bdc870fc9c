package flow_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/domino/core"
	"github.com/katalvlaran/domino/flow"
)

// buildBipartite constructs a random unit-capacity matching network with
// n vertices per side: source=0, left=1..n, right=n+1..2n, sink=2n+1.
func buildBipartite(n int, p float64, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithCapacityHint(2*n + 2))
	for i := 0; i < 2*n+2; i++ {
		g.AddVertex()
	}
	sink := core.VertexID(2*n + 1)
	for i := 1; i <= n; i++ {
		_ = g.AddEdge(0, core.VertexID(i), 1)
		_ = g.AddEdge(core.VertexID(n+i), sink, 1)
		for j := 1; j <= n; j++ {
			if r.Float64() < p {
				_ = g.AddEdge(core.VertexID(i), core.VertexID(n+j), 1)
			}
		}
	}

	return g
}

// BenchmarkMaxFlow measures Edmonds–Karp on matching networks of
// increasing size.
func BenchmarkMaxFlow(b *testing.B) {
	cases := []struct {
		name string
		n    int
		p    float64
		seed int64
	}{
		{"Small", 50, 0.1, 42},
		{"Medium", 200, 0.03, 4242},
		{"Large", 500, 0.01, 424242},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			g := buildBipartite(tc.n, tc.p, tc.seed)
			sink := core.VertexID(2*tc.n + 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := flow.MaxFlow(g, 0, sink, nil); err != nil {
					b.Fatalf("MaxFlow: %v", err)
				}
			}
		})
	}
}
