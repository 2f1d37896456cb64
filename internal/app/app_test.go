package app

import (
	"flag"
	"testing"

	"sphere-life/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "80", "-h", "40", "-threads", "4", "-rate", "0", "-layout", "cv", "-seed", "7"}))

	lc, err := cfg.Life()
	require.NoError(t, err)
	assert.Equal(t, 80, lc.Width)
	assert.Equal(t, 40, lc.Height)
	assert.Equal(t, 4, lc.Threads)
	assert.Zero(t, lc.TargetRate)
	assert.EqualValues(t, 7, lc.Seed)
	assert.Equal(t, core.LayoutPlanar, lc.Layout)

	cfg.Layout = "hex"
	_, err = cfg.Life()
	assert.Error(t, err)
}

func TestNudgeRate(t *testing.T) {
	assert.Equal(t, 65.0, nudgeRate(60, 1))
	assert.Equal(t, 55.0, nudgeRate(60, -1))
	assert.Equal(t, 0.0, nudgeRate(5, -1))
	assert.Equal(t, 0.0, nudgeRate(0, -1))
	assert.Equal(t, 5.0, nudgeRate(0, 1))
}

func TestClampBrush(t *testing.T) {
	assert.Equal(t, 0, clampBrush(-3))
	assert.Equal(t, 4, clampBrush(4))
	assert.Equal(t, MaxBrush, clampBrush(1000))
}

func TestCellAt(t *testing.T) {
	x, y := cellAt(10, 5, 3)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)
	x, y = cellAt(-1, -4, 3)
	assert.Equal(t, -1, x)
	assert.Equal(t, -2, y)
}

func TestNextLayout(t *testing.T) {
	assert.Equal(t, core.LayoutPlanar, nextLayout(core.LayoutInterleaved))
	assert.Equal(t, core.LayoutInterleaved, nextLayout(core.LayoutPlanar))
}
