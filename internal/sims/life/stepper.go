package life

import "sphere-life/internal/core"

// Band is a half-open range of rows [Start, End) owned by one worker.
type Band struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int { return b.End - b.Start }

// Partition splits height rows into n contiguous, disjoint bands that cover
// every row once. n is clamped to [1, height]; leftover rows go to the first
// bands.
func Partition(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n <= 0 {
		n = 1
	}
	if n > height {
		n = height
	}
	base, rem := height/n, height%n
	bands := make([]Band, n)
	start := 0
	for i := range bands {
		size := base
		if i < rem {
			size++
		}
		bands[i] = Band{Start: start, End: start + size}
		start += size
	}
	return bands
}

// Rule applies the survival/birth table to one cell and returns its next
// state together with the population change it causes.
func Rule(alive bool, neighbors int) (bool, int) {
	switch {
	case alive && neighbors < 2:
		return false, -1
	case alive && neighbors > 3:
		return false, -1
	case alive:
		return true, 0
	case neighbors == 3:
		return true, 1
	default:
		return false, 0
	}
}

// Step computes the next generation for the rows of band, reading slice
// active and writing slice 1-active. It returns the band's population delta.
// Bands are clamped to the grid height.
func Step(g *core.Buffer[bool], band Band, active int) int {
	w, h := g.Width(), g.Height()
	start, end := max(band.Start, 0), min(band.End, h)
	next := 1 - active
	data := g.Data()
	delta := 0
	for y := start; y < end; y++ {
		for x := 0; x < w; x++ {
			alive := data[g.Index(x, y, active)]
			state, d := Rule(alive, LiveNeighbors(g, x, y, active))
			data[g.Index(x, y, next)] = state
			delta += d
		}
	}
	return delta
}
