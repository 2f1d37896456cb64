package app

import (
	"math"

	"sphere-life/internal/core"
)

const (
	// MinBrush is the smallest spawn radius; zero spawns a single cell.
	MinBrush = 0
	// MaxBrush caps the spawn radius.
	MaxBrush = 32
	// rateStep is how much +/- change the target generation rate.
	rateStep = 5
)

// clampBrush keeps the spawn radius within [MinBrush, MaxBrush].
func clampBrush(r int) int {
	return min(max(r, MinBrush), MaxBrush)
}

// nudgeRate applies one +/- press to the target rate. Stepping below the
// first increment removes the limit; stepping up from unlimited starts at
// rateStep.
func nudgeRate(rate float64, dir int) float64 {
	next := rate + float64(dir)*rateStep
	if rate <= 0 && dir > 0 {
		return rateStep
	}
	if next < rateStep {
		return 0
	}
	return math.Round(next)
}

// cellAt converts a cursor position in screen pixels to board coordinates.
func cellAt(px, py, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// nextLayout cycles between the grid memory layouts.
func nextLayout(l core.Layout) core.Layout {
	if l == core.LayoutPlanar {
		return core.LayoutInterleaved
	}
	return core.LayoutPlanar
}
