package gridgraph

import "strings"

// Colorize labels the open cells of a raw floor plan.
//
// Blocked cells and row breaks pass through unchanged. The first open
// cell in row-major order fixes the anchor parity (row+col)&1 and is
// labeled black; every open cell with the same parity is black and every
// other one is red, so grid-adjacent open cells always get different
// labels.
func Colorize(floor string) string {
	var b strings.Builder
	b.Grow(len(floor))

	row, col := 0, 0
	anchor := -1
	for _, ch := range floor {
		switch ch {
		case Blocked:
			b.WriteRune(ch)
			col++
		case RowBreak:
			b.WriteRune(ch)
			row++
			col = 0
		default:
			parity := (row + col) & 1
			if anchor < 0 {
				anchor = parity
			}
			if parity == anchor {
				b.WriteRune(BlackCell)
			} else {
				b.WriteRune(RedCell)
			}
			col++
		}
	}

	return b.String()
}
