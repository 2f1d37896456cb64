package ui

import (
	"fmt"
	"image"

	"sphere-life/internal/core"
)

// StatusBarHeight is the pixel height reserved below the board for the HUD.
const StatusBarHeight = 40

// StatusSource is what the HUD reads each frame.
type StatusSource interface {
	core.Automaton
	TargetRate() float64
}

// statusLines formats the HUD text. The first line matches the window title.
func statusLines(src StatusSource, brush int) []string {
	state := "paused"
	if src.Running() {
		state = "running"
	}
	rate := "unlimited"
	if r := src.TargetRate(); r > 0 {
		rate = fmt.Sprintf("%.0f gen/s", r)
	}
	return []string{
		src.Status(),
		fmt.Sprintf("[%s]  target %s  brush %d   T run  N step  C clear  R reseed  +/- rate  L layout", state, rate, brush),
	}
}

// BrushRect returns the screen rectangle covered by a brush of the given
// radius centred on cell (x, y).
func BrushRect(x, y, radius, scale int) image.Rectangle {
	if radius < 0 {
		radius = 0
	}
	if scale <= 0 {
		scale = 1
	}
	return image.Rect((x-radius)*scale, (y-radius)*scale, (x+radius+1)*scale, (y+radius+1)*scale)
}
