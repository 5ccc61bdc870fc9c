package core

// AddEdge links from→to and sets its capacity. Adding an existing edge
// overwrites the capacity and keeps the neighbor order.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to VertexID, capacity int64) error {
	if err := g.Link(from, to); err != nil {
		return err
	}

	return g.SetCapacity(from, to, capacity)
}

// Link adds to the neighbor set of from without touching capacities.
// Linking twice is a no-op.
func (g *Graph) Link(from, to VertexID) error {
	if err := g.check(from, to); err != nil {
		return err
	}
	v := &g.vertices[from]
	if _, ok := v.linked[to]; ok {
		return nil
	}
	v.linked[to] = struct{}{}
	v.neighbors = append(v.neighbors, to)
	g.edges++

	return nil
}

// SetCapacity records the capacity of from→to without touching adjacency.
func (g *Graph) SetCapacity(from, to VertexID, capacity int64) error {
	if err := g.check(from, to); err != nil {
		return err
	}
	g.vertices[from].capacity[to] = capacity

	return nil
}

// AddCapacity adds delta to the capacity of an existing edge from→to.
// Returns ErrEdgeNotFound if no capacity entry exists.
func (g *Graph) AddCapacity(from, to VertexID, delta int64) error {
	if err := g.check(from, to); err != nil {
		return err
	}
	caps := g.vertices[from].capacity
	if _, ok := caps[to]; !ok {
		return ErrEdgeNotFound
	}
	caps[to] += delta

	return nil
}

// Capacity looks up the capacity of from→to. The boolean is false when
// no entry exists, which is distinct from a saturated (zero) edge.
func (g *Graph) Capacity(from, to VertexID) (int64, bool) {
	if !g.HasVertex(from) {
		return 0, false
	}
	c, ok := g.vertices[from].capacity[to]

	return c, ok
}

// HasEdge reports whether to is in the neighbor set of from.
func (g *Graph) HasEdge(from, to VertexID) bool {
	if !g.HasVertex(from) {
		return false
	}
	_, ok := g.vertices[from].linked[to]

	return ok
}

// EdgeCount returns the number of directed neighbor links.
func (g *Graph) EdgeCount() int {
	return g.edges
}
