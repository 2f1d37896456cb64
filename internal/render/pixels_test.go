package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"sphere-life/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameFill(t *testing.T) {
	f := NewFrame(3, 2)
	on := color.RGBA{R: 255, G: 200, B: 10, A: 255}
	off := color.RGBA{A: 255}
	f.Fill([]uint8{1, 0, 0, 0, 0, 1}, on, off)

	pix := f.Pix()
	require.Len(t, pix, 3*2*4)
	assert.Equal(t, []byte{255, 200, 10, 255}, pix[0:4])
	assert.Equal(t, []byte{0, 0, 0, 255}, pix[4:8])
	assert.Equal(t, []byte{255, 200, 10, 255}, pix[20:24])

	img := f.Image()
	assert.Equal(t, on, img.RGBAAt(2, 1))
	assert.Equal(t, off, img.RGBAAt(1, 1))
}

func TestFrameFillIgnoresExtraCells(t *testing.T) {
	f := NewFrame(1, 1)
	f.Fill([]uint8{0, 1, 1}, color.White, color.Black)
	assert.Equal(t, []byte{0, 0, 0, 255}, f.Pix())
}

func TestNewFrameRGBAWritesIntoImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	f, err := NewFrameRGBA(img)
	require.NoError(t, err)
	f.Fill([]uint8{0, 0, 0, 1}, color.White, color.Black)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 0))
}

func TestNewFrameRGBARejectsBadImages(t *testing.T) {
	sub := image.NewRGBA(image.Rect(0, 0, 4, 4)).SubImage(image.Rect(0, 0, 2, 2)).(*image.RGBA)
	_, err := NewFrameRGBA(sub)
	assert.Error(t, err)

	short := &image.RGBA{Pix: make([]byte, 4), Stride: 8, Rect: image.Rect(0, 0, 2, 2)}
	_, err = NewFrameRGBA(short)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrShortBuffer))
}
