package app

import (
	"flag"
	"fmt"

	"sphere-life/internal/core"
	"sphere-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Threads int
	Rate    float64
	Density float64
	Seed    int64
	Layout  string
	Brush   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Width:   d.Width,
		Height:  d.Height,
		Scale:   3,
		TPS:     60,
		Threads: d.Threads,
		Rate:    d.TargetRate,
		Density: d.Density,
		Seed:    d.Seed,
		Layout:  d.Layout.String(),
		Brush:   1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Threads, "threads", c.Threads, "number of row bands stepped concurrently")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "target generations per second (0 = unlimited)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive on reseed")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.StringVar(&c.Layout, "layout", c.Layout, "grid memory layout: interleaved|planar")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial spawn brush radius")
}

// Life converts the flags into a session configuration.
func (c *Config) Life() (life.Config, error) {
	layout, ok := core.ParseLayout(c.Layout)
	if !ok {
		return life.Config{}, fmt.Errorf("unknown layout %q", c.Layout)
	}
	cfg := life.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.Threads = c.Threads
	cfg.TargetRate = c.Rate
	cfg.Density = c.Density
	cfg.Seed = c.Seed
	cfg.Layout = layout
	return cfg, nil
}
