//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
)

// HUD renders the status bar below the simulation view.
type HUD struct {
	src   StatusSource
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided session.
func NewHUD(src StatusSource) *HUD {
	return &HUD{src: src}
}

// Draw paints the status bar at vertical offset top. brush is the current
// spawn radius.
func (h *HUD) Draw(screen *ebiten.Image, top, brush int) {
	if h == nil || h.src == nil {
		return
	}
	width := screen.Bounds().Dx()
	if width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, StatusBarHeight)
	}
	h.panel.Fill(color.RGBA{R: 24, G: 26, B: 32, A: 255})

	face := basicfont.Face7x13
	for i, line := range statusLines(h.src, brush) {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i > 0 {
			col = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+10+i*lineHeight, col)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(top))
	screen.DrawImage(h.panel, op)
}
