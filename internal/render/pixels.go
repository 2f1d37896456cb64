package render

import (
	"fmt"
	"image"
	"image/color"

	"sphere-life/internal/core"
)

// Frame is an RGBA pixel buffer sized to a cell grid. Pixels are addressed
// through a depth-4 interleaved view so each cell's channels stay adjacent.
type Frame struct {
	buf  []byte
	view *core.View[uint8]
}

// NewFrame allocates a frame for a w*h grid.
func NewFrame(w, h int) *Frame {
	b := core.NewBuffer[uint8](w, h, 4)
	return &Frame{buf: b.Data(), view: b.View()}
}

// NewFrameRGBA paints into img's pixels directly. img must be tightly packed
// (stride 4*width), as image.NewRGBA returns.
func NewFrameRGBA(img *image.RGBA) (*Frame, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride != 4*w {
		return nil, fmt.Errorf("render: stride %d is not 4*%d", img.Stride, w)
	}
	view, err := core.NewView(img.Pix, w, h, 4, core.LayoutInterleaved)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Frame{buf: view.Data(), view: view}, nil
}

// Size returns the frame dimensions in pixels.
func (f *Frame) Size() (int, int) { return f.view.Width(), f.view.Height() }

// Pix exposes the RGBA bytes.
func (f *Frame) Pix() []byte { return f.buf }

// Fill paints every cell of the row-major 0/1 slice with on or off. Cells
// beyond the frame are ignored.
func (f *Frame) Fill(cells []uint8, on, off color.Color) {
	fillBinary(f.view, cells, on, off)
}

// Image wraps the frame as an image.RGBA sharing the same bytes.
func (f *Frame) Image() *image.RGBA {
	w, h := f.Size()
	return &image.RGBA{Pix: f.buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
}

func rgba8(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinary converts binary cell data (0/1) into RGBA pixels in dst.
func fillBinary(dst *core.View[uint8], cells []uint8, on, off color.Color) {
	onPx, offPx := rgba8(on), rgba8(off)
	w := dst.Width()
	n := min(len(cells), w*dst.Height())
	for i := 0; i < n; i++ {
		px := offPx
		if cells[i] != 0 {
			px = onPx
		}
		x, y := i%w, i/w
		for ch, v := range px {
			dst.Put(x, y, ch, v)
		}
	}
}
