//go:build ebiten

package app

import (
	"image/color"

	"sphere-life/internal/core"
	"sphere-life/internal/render"
	"sphere-life/internal/sims/life"
	"sphere-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life session to the ebiten.Game interface.
type Game struct {
	session *life.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale   int
	brush   int
	density float64

	drawing bool
	last    core.Vector
	title   string
}

// New constructs a Game for the provided session.
func New(s *life.Session, scale, brush int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.Size()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(s),
		overlay:  ui.NewOverlay(size.W, size.H, scale),
		onColor:  color.RGBA{R: 240, G: 240, B: 240, A: 255},
		offColor: color.Black,
		scale:    scale,
		brush:    clampBrush(brush),
		density:  s.Config().Density,
	}
}

// Update handles input and keeps the window title in sync with the counters.
// The session steps on its own goroutines; Update never advances it directly
// except for single steps.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.session.Running() {
			g.session.Stop()
		} else {
			g.session.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.session.Running() {
		g.session.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.ClearAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.ResetAndReseed(g.density)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.session.SetTargetRate(nudgeRate(g.session.TargetRate(), 1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.session.SetTargetRate(nudgeRate(g.session.TargetRate(), -1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.session.SetLayout(nextLayout(g.session.Layout()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.overlay.Toggle()
	}

	g.updateBrush()
	g.updateStroke()

	if title := g.session.Status(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func (g *Game) updateBrush() {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.brush++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.brush--
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		g.brush++
	} else if dy < 0 {
		g.brush--
	}
	g.brush = clampBrush(g.brush)
}

func (g *Game) updateStroke() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drawing = false
		return
	}
	px, py := ebiten.CursorPosition()
	x, y := cellAt(px, py, g.scale)
	if size := g.session.Size(); x < 0 || y < 0 || x >= size.W || y >= size.H {
		g.drawing = false
		return
	}
	cur := core.Vec2(float64(x), float64(y))
	if !g.drawing {
		g.drawing = true
		g.last = cur
	}
	g.session.SpawnStroke(g.last, cur, g.brush)
	g.last = cur
}

// Draw renders the board, the brush outline and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Cells(), g.onColor, g.offColor, g.scale)
	px, py := ebiten.CursorPosition()
	x, y := cellAt(px, py, g.scale)
	g.overlay.Draw(screen, x, y, g.brush)
	g.hud.Draw(screen, g.session.Size().H*g.scale, g.brush)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H*g.scale + ui.StatusBarHeight
}
