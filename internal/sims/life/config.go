package life

import (
	"runtime"
	"strconv"

	"sphere-life/internal/core"
)

// Config holds parameters for a Life session.
type Config struct {
	Width  int
	Height int

	// Threads is the number of row bands stepped concurrently.
	Threads int
	// TargetRate is the step rate the pacer aims for, in generations per
	// second. Zero runs unthrottled.
	TargetRate float64
	// Density is the probability a cell starts alive on reseed.
	Density float64
	Seed    int64
	Layout  core.Layout
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:      256,
		Height:     256,
		Threads:    runtime.NumCPU(),
		TargetRate: 60,
		Density:    0.45,
		Seed:       42,
		Layout:     core.LayoutInterleaved,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["threads"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Threads = parsed
		}
	}
	if v, ok := cfg["rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.TargetRate = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["layout"]; ok {
		if parsed, ok := core.ParseLayout(v); ok {
			c.Layout = parsed
		}
	}
	return c
}

func (c Config) normalized() Config {
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	if c.Threads <= 0 {
		c.Threads = 1
	}
	if c.Threads > c.Height {
		c.Threads = c.Height
	}
	if c.TargetRate < 0 {
		c.TargetRate = 0
	}
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
	return c
}
