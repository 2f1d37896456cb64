//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"sphere-life/internal/app"
	"sphere-life/internal/sims/life"
	"sphere-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lc, err := cfg.Life()
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	session := life.NewSession(lc)
	session.Reset(lc.Seed)

	game := app.New(session, cfg.Scale, cfg.Brush)
	size := session.Size()

	ebiten.SetWindowTitle(session.Status())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale+ui.StatusBarHeight)

	err = ebiten.RunGame(game)
	session.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
