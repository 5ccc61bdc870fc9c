package core_test

import (
	"fmt"

	"github.com/katalvlaran/domino/core"
)

// ExampleGraph builds a tiny capacitated graph and reads it back.
func ExampleGraph() {
	g := core.NewGraph()
	s, a, t := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_ = g.AddEdge(s, a, 2)
	_ = g.AddEdge(a, t, 1)

	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			c, _ := g.Capacity(u, v)
			fmt.Printf("%d->%d cap=%d\n", u, v, c)
		}
	}
	// Output:
	// 0->1 cap=2
	// 1->2 cap=1
}
