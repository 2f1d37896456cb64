package life

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"sphere-life/internal/core"
	"sphere-life/internal/monitoring"

	"golang.org/x/sync/errgroup"
)

// ErrRunning is returned by Run when the clock is already stepping.
var ErrRunning = errors.New("life: simulation already running")

type runState struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// SimClock owns the double-buffered board and steps it with one goroutine per
// row band. Band 0 coordinates every pass: it hands the active slice index to
// the other bands, steps its own rows, collects all deltas, then commits the
// generation and flips the slices before any band may start the next pass.
type SimClock struct {
	grid  *core.Buffer[bool]
	bands []Band
	pacer *core.Pacer

	// mu guards the grid contents and active. A pass holds it for its whole
	// duration, so edits from collaborators land between passes.
	mu       sync.RWMutex
	active   int
	observer func(generation, population int64)

	generation atomic.Int64
	population atomic.Int64
	running    atomic.Bool

	runMu sync.Mutex
	cur   *runState
}

// NewSimClock builds a clock over a depth-2 grid split into threads bands.
func NewSimClock(grid *core.Buffer[bool], threads int, pacer *core.Pacer) *SimClock {
	if pacer == nil {
		pacer = core.NewPacer(nil, 0)
	}
	return &SimClock{
		grid:  grid,
		bands: Partition(grid.Height(), threads),
		pacer: pacer,
	}
}

// Bands returns the row partition used by the workers.
func (c *SimClock) Bands() []Band { return append([]Band(nil), c.bands...) }

// Pacer exposes the rate controller.
func (c *SimClock) Pacer() *core.Pacer { return c.pacer }

// Running reports whether workers are stepping.
func (c *SimClock) Running() bool { return c.running.Load() }

// Generation returns the number of completed passes.
func (c *SimClock) Generation() int64 { return c.generation.Load() }

// Population returns the tracked live-cell count.
func (c *SimClock) Population() int64 { return c.population.Load() }

// Active returns the index of the slice holding the current generation.
func (c *SimClock) Active() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// Start launches the workers in the background. It is a no-op when running.
func (c *SimClock) Start() {
	c.launch(context.Background(), 0)
}

// Stop signals the workers and blocks until they have exited. The pass in
// flight completes first. Calling Stop on a stopped clock does nothing.
func (c *SimClock) Stop() {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	st := c.cur
	if st == nil {
		return
	}
	st.cancel()
	<-st.done
	c.cur = nil
	if st.err != nil {
		monitoring.Logf("life: workers stopped with error: %v", st.err)
	}
}

// Run steps the board in the foreground until ctx is cancelled or, when
// passes > 0, that many generations have completed.
func (c *SimClock) Run(ctx context.Context, passes int) error {
	st, ok := c.launch(ctx, passes)
	if !ok {
		return ErrRunning
	}
	<-st.done
	c.runMu.Lock()
	if c.cur == st {
		c.cur = nil
	}
	c.runMu.Unlock()
	return st.err
}

// StepOnce advances exactly one generation. It reports false when the clock
// is running.
func (c *SimClock) StepOnce() bool {
	return c.Run(context.Background(), 1) == nil
}

func (c *SimClock) launch(parent context.Context, passes int) (*runState, bool) {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	if c.cur != nil {
		select {
		case <-c.cur.done:
		default:
			return nil, false
		}
	}
	ctx, cancel := context.WithCancel(parent)
	st := &runState{cancel: cancel, done: make(chan struct{})}
	c.cur = st
	c.running.Store(true)
	c.pacer.Reset()
	go func() {
		st.err = c.run(ctx, passes)
		c.running.Store(false)
		cancel()
		close(st.done)
	}()
	return st, true
}

func (c *SimClock) run(ctx context.Context, passes int) error {
	g, ctx := errgroup.WithContext(ctx)
	workers := len(c.bands) - 1
	jobs := make([]chan int, workers)
	results := make(chan int, workers)
	for i := range jobs {
		in := make(chan int)
		jobs[i] = in
		band := c.bands[i+1]
		g.Go(func() error {
			for active := range in {
				results <- Step(c.grid, band, active)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer func() {
			for _, in := range jobs {
				close(in)
			}
		}()
		for n := 0; passes <= 0 || n < passes; n++ {
			if ctx.Err() != nil {
				return nil
			}
			c.pacer.Begin()
			c.pass(jobs, results)
			sleep := c.pacer.End()
			if passes > 0 && n+1 >= passes {
				return nil
			}
			if err := c.pacer.Wait(ctx, sleep); err != nil {
				return nil
			}
		}
		return nil
	})
	return g.Wait()
}

// pass runs one generation across every band and commits it.
func (c *SimClock) pass(jobs []chan int, results <-chan int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	active := c.active
	for _, in := range jobs {
		in <- active
	}
	delta := Step(c.grid, c.bands[0], active)
	for range jobs {
		delta += <-results
	}
	gen := c.generation.Add(1)
	pop := max(0, c.population.Load()+int64(delta))
	c.population.Store(pop)
	c.active = 1 - active
	if c.observer != nil {
		c.observer(gen, pop)
	}
}

// Observe registers fn to be called after every committed pass with the new
// counters. fn runs on the coordinating goroutine while the grid is locked and
// must not call back into the clock. A nil fn removes the observer.
func (c *SimClock) Observe(fn func(generation, population int64)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = fn
}

// Spawn sets every cell in the square of the given radius around (x, y)
// alive on the active slice, wrapping at the edges. A negative radius is
// treated as zero; a radius reaching past the board covers every cell. The
// population counter is not touched; call Survey.
func (c *SimClock) Spawn(x, y, radius int) {
	radius = max(radius, 0)
	rx, ry := min(radius, c.grid.Width()), min(radius, c.grid.Height())
	c.mu.Lock()
	defer c.mu.Unlock()
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			c.grid.WrapPut(x+dx, y+dy, c.active, true)
		}
	}
}

// Survey recounts the live cells on the active slice and stores the result
// as the population.
func (c *SimClock) Survey() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var n int64
	for y := 0; y < c.grid.Height(); y++ {
		for x := 0; x < c.grid.Width(); x++ {
			if c.grid.At(x, y, c.active) {
				n++
			}
		}
	}
	c.population.Store(n)
	return n
}

// Reset clears both slices, zeroes the counters and drops the pacer's
// accumulated delay.
func (c *SimClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for z := 0; z < c.grid.Depth(); z++ {
		c.grid.ClearPlane(core.AxisZ, z, false)
	}
	c.active = 0
	c.generation.Store(0)
	c.population.Store(0)
	c.pacer.ResetDelay()
}

// Reseed clears the board and zeroes the generation, then lets fill populate
// slice 0 and stores the live count it returns. The whole sequence holds the
// grid lock, so a running clock resumes from the new board at generation 0.
func (c *SimClock) Reseed(fill func(g *core.Buffer[bool], active int) int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Clear(false)
	c.active = 0
	c.generation.Store(0)
	c.population.Store(max(0, fill(c.grid, c.active)))
}

// Edit runs fn with exclusive access to the grid between passes.
func (c *SimClock) Edit(fn func(g *core.Buffer[bool], active int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.grid, c.active)
}

// View runs fn with shared access to the grid between passes.
func (c *SimClock) View(fn func(g *core.Buffer[bool], active int)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.grid, c.active)
}
