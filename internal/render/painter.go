//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell data into a single ebiten image.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	f := NewFrame(w, h)
	fw, fh := f.Size()
	return &GridPainter{frame: f, img: ebiten.NewImage(fw, fh)}
}

// Blit uploads the provided cells and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	w, h := gp.frame.Size()
	if len(cells) != w*h {
		return
	}
	gp.frame.Fill(cells, on, off)
	gp.img.WritePixels(gp.frame.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.frame.Size() }
