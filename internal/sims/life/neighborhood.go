package life

import "sphere-life/internal/core"

// LiveNeighbors counts the live cells among the eight neighbors of (x, y) on
// the given slice, wrapping around every edge. The center cell is never read.
func LiveNeighbors(g *core.Buffer[bool], x, y, slice int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.WrapAt(x+dx, y+dy, slice) {
				n++
			}
		}
	}
	return n
}
