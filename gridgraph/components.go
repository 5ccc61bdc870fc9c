package gridgraph

import "sort"

// Components finds all 4-connected regions of open cells.
// Regions are listed in row-major order of their first cell; cells inside
// a region are in BFS order.
//
// Time:   O(C log C) for C open cells (sorting seeds).
// Memory: O(C).
func (cb *Checkerboard) Components() [][]Coord {
	seen := make(map[Coord]bool, len(cb.coords))
	var comps [][]Coord

	for _, start := range sortedCoords(cb.cells()) {
		if seen[start] {
			continue
		}
		queue := []Coord{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range conn4 {
				v := u.offset(d)
				if _, _, ok := cb.Lookup(v); !ok || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Balanced reports whether every region has as many black as red cells.
// A region with unequal counts can never be tiled, whatever the rest of
// the floor looks like.
func (cb *Checkerboard) Balanced() bool {
	for _, comp := range cb.Components() {
		diff := 0
		for _, c := range comp {
			if _, color, _ := cb.Lookup(c); color == Black {
				diff++
			} else {
				diff--
			}
		}
		if diff != 0 {
			return false
		}
	}

	return true
}

// cells returns every open cell keyed by coordinate.
func (cb *Checkerboard) cells() map[Coord]struct{} {
	out := make(map[Coord]struct{}, len(cb.black)+len(cb.red))
	for c := range cb.black {
		out[c] = struct{}{}
	}
	for c := range cb.red {
		out[c] = struct{}{}
	}

	return out
}

// sortedCoords returns the keys of m in row-major order.
func sortedCoords[V any](m map[Coord]V) []Coord {
	out := make([]Coord, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}
