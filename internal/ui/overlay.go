//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the spawn brush under the cursor.
type Overlay struct {
	size  [2]int
	scale int
	pixel *ebiten.Image
	show  bool
}

// NewOverlay constructs an overlay for a w*h board drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{size: [2]int{w, h}, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle shows or hides the brush outline.
func (o *Overlay) Toggle() { o.show = !o.show }

// Draw outlines the brush at cell (x, y). Cursors outside the board draw
// nothing.
func (o *Overlay) Draw(screen *ebiten.Image, x, y, radius int) {
	if o == nil || !o.show {
		return
	}
	if x < 0 || y < 0 || x >= o.size[0] || y >= o.size[1] {
		return
	}
	r := BrushRect(x, y, radius, o.scale)
	col := color.RGBA{R: 255, G: 120, B: 40, A: 200}
	o.fill(screen, r.Min.X, r.Min.Y, r.Dx(), 1, col)
	o.fill(screen, r.Min.X, r.Max.Y-1, r.Dx(), 1, col)
	o.fill(screen, r.Min.X, r.Min.Y, 1, r.Dy(), col)
	o.fill(screen, r.Max.X-1, r.Min.Y, 1, r.Dy(), col)
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
