package life

import (
	"fmt"
	"sync"
	"time"

	"sphere-life/internal/core"
	"sphere-life/internal/monitoring"

	"github.com/google/uuid"
)

// Session is one Life board together with its clock and counters. It is the
// handle the rendering and input collaborators hold.
type Session struct {
	id    uuid.UUID
	cfg   Config
	grid  *core.Buffer[bool]
	clock *SimClock

	rngMu sync.Mutex
	rng   *core.RNG
}

var _ core.Automaton = (*Session)(nil)

// NewSession returns an empty session for cfg using the wall clock.
func NewSession(cfg Config) *Session {
	return NewSessionWithClock(cfg, core.RealClock{})
}

// NewSessionWithClock returns an empty session whose pacer reads time from
// clock.
func NewSessionWithClock(cfg Config, clock core.Clock) *Session {
	cfg = cfg.normalized()
	grid := core.NewBufferLayout[bool](cfg.Width, cfg.Height, 2, cfg.Layout)
	pacer := core.NewPacer(clock, cfg.TargetRate)
	return &Session{
		id:    uuid.New(),
		cfg:   cfg,
		grid:  grid,
		clock: NewSimClock(grid, cfg.Threads, pacer),
		rng:   core.NewRNG(cfg.Seed),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the normalized configuration.
func (s *Session) Config() Config { return s.cfg }

// Clock exposes the underlying simulation clock.
func (s *Session) Clock() *SimClock { return s.clock }

// Name returns the simulation identifier.
func (s *Session) Name() string { return "life" }

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// CellAlive reports the state of (x, y) in the current generation. The
// coordinates wrap.
func (s *Session) CellAlive(x, y int) bool {
	var alive bool
	s.clock.View(func(g *core.Buffer[bool], active int) {
		alive = g.WrapAt(x, y, active)
	})
	return alive
}

// Cells returns a row-major 0/1 copy of the current generation.
func (s *Session) Cells() []uint8 {
	out := make([]uint8, s.cfg.Width*s.cfg.Height)
	s.clock.View(func(g *core.Buffer[bool], active int) {
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if g.At(x, y, active) {
					out[y*g.Width()+x] = 1
				}
			}
		}
	})
	return out
}

// Snapshot returns a deep copy of both slices together with the index of the
// active one.
func (s *Session) Snapshot() (*core.Buffer[bool], int) {
	var (
		snap   *core.Buffer[bool]
		active int
	)
	s.clock.View(func(g *core.Buffer[bool], a int) {
		snap, active = g.Clone(), a
	})
	return snap, active
}

// Layout reports the grid's current memory layout.
func (s *Session) Layout() core.Layout {
	var l core.Layout
	s.clock.View(func(g *core.Buffer[bool], _ int) { l = g.Layout() })
	return l
}

// SetLayout re-lays both slices in place between passes. Cell values and the
// counters are unchanged.
func (s *Session) SetLayout(l core.Layout) {
	var from core.Layout
	s.clock.Edit(func(g *core.Buffer[bool], _ int) {
		from = g.Layout()
		g.Reformat(l)
	})
	if from != l {
		monitoring.Logf("life[%s]: layout %s -> %s", s.id, from, l)
	}
}

// Spawn brings the square of the given radius around (x, y) to life and
// resynchronizes the population.
func (s *Session) Spawn(x, y, radius int) {
	s.clock.Spawn(x, y, radius)
	s.clock.Survey()
}

// SpawnStroke spawns along the segment between two pointer samples so a fast
// drag leaves no gaps.
func (s *Session) SpawnStroke(from, to core.Vector, radius int) {
	for _, p := range core.Segment(from, to) {
		s.clock.Spawn(p.X, p.Y, radius)
	}
	s.clock.Survey()
}

// ClearAll stops the simulation, kills every cell and zeroes the counters.
func (s *Session) ClearAll() {
	s.clock.Stop()
	s.clock.Reset()
	monitoring.Logf("life[%s]: cleared", s.id)
}

// ResetAndReseed clears the board and counters, then brings each cell of the
// first slice to life with probability density. The running state is kept;
// a running session continues from the new board at generation 0.
func (s *Session) ResetAndReseed(density float64) {
	w, h := s.cfg.Width, s.cfg.Height
	seed := make([]bool, w*h)
	s.rngMu.Lock()
	pop := int64(s.rng.FillDensity(seed, density))
	s.rngMu.Unlock()

	s.clock.Reseed(func(g *core.Buffer[bool], active int) int64 {
		for i, alive := range seed {
			if alive {
				g.Put(i%w, i/w, active, true)
			}
		}
		return pop
	})
	monitoring.Logf("life[%s]: reseeded %dx%d density=%.2f population=%d", s.id, w, h, density, pop)
}

// Reset reseeds the RNG and repopulates the board at the configured density.
func (s *Session) Reset(seed int64) {
	s.rngMu.Lock()
	s.rng = core.NewRNG(seed)
	s.rngMu.Unlock()
	s.ResetAndReseed(s.cfg.Density)
}

// Start launches the worker goroutines.
func (s *Session) Start() {
	if s.clock.Running() {
		return
	}
	s.clock.Start()
	monitoring.Logf("life[%s]: started %d workers, target %.1f gen/s", s.id, len(s.clock.Bands()), s.clock.Pacer().Target())
}

// Stop blocks until the workers have exited.
func (s *Session) Stop() {
	if !s.clock.Running() {
		s.clock.Stop()
		return
	}
	s.clock.Stop()
	monitoring.Logf("life[%s]: stopped at generation %d", s.id, s.clock.Generation())
}

// Running reports whether the workers are stepping.
func (s *Session) Running() bool { return s.clock.Running() }

// Step advances one generation while stopped. It is ignored while running.
func (s *Session) Step() {
	if !s.clock.StepOnce() {
		monitoring.Logf("life[%s]: step ignored, simulation is running", s.id)
	}
}

// Generation returns the number of completed generations.
func (s *Session) Generation() int64 { return s.clock.Generation() }

// Population returns the tracked live-cell count.
func (s *Session) Population() int64 { return s.clock.Population() }

// Survey recounts the live cells and returns the count.
func (s *Session) Survey() int64 { return s.clock.Survey() }

// TargetRate returns the pacer's target in generations per second.
func (s *Session) TargetRate() float64 { return s.clock.Pacer().Target() }

// SetTargetRate changes the pacer's target. Zero removes the limit.
func (s *Session) SetTargetRate(rate float64) { s.clock.Pacer().SetTarget(rate) }

// Delay returns the pacer's current per-generation delay.
func (s *Session) Delay() time.Duration { return s.clock.Pacer().Delay() }

// Status formats the counters for a window title.
func (s *Session) Status() string {
	return fmt.Sprintf("Generations: %d    Population: %d    Refresh Delay: %d ms",
		s.Generation(), s.Population(), s.Delay().Milliseconds())
}
