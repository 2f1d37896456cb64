package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// history records the population after each generation.
type history struct {
	points plotter.XYs
}

func newHistory(capacity int) *history {
	return &history{points: make(plotter.XYs, 0, capacity)}
}

func (h *history) add(generation, population int64) {
	h.points = append(h.points, plotter.XY{X: float64(generation), Y: float64(population)})
}

func (h *history) bounds() (int64, int64) {
	if len(h.points) == 0 {
		return 0, 0
	}
	lo, hi := h.points[0].Y, h.points[0].Y
	for _, p := range h.points[1:] {
		lo = min(lo, p.Y)
		hi = max(hi, p.Y)
	}
	return int64(lo), int64(hi)
}

// plot renders the population curve to a PNG file.
func (h *history) plot(path, title string) error {
	if len(h.points) < 2 {
		return fmt.Errorf("need at least two samples, have %d", len(h.points))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Live cells"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(h.points)
	if err != nil {
		return fmt.Errorf("create line: %w", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
