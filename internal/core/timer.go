package core

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts the time source so pacing can be tested without sleeping.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealClock implements Clock with the time package.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// After waits for d and then sends the current time.
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// PacerWindow is how often the pacer re-measures the step rate.
const PacerWindow = time.Second

// Pacer throttles a stepping loop towards a target steps-per-second rate.
// Once per window it compares the measured rate with the target and nudges
// the per-step delay by one millisecond per step/s of error.
type Pacer struct {
	mu sync.Mutex

	clock  Clock
	target float64
	delay  time.Duration
	rate   float64

	windowStart time.Time
	passes      int
	passStart   time.Time
}

// NewPacer constructs a Pacer. A non-positive target disables throttling.
func NewPacer(clock Clock, target float64) *Pacer {
	if clock == nil {
		clock = RealClock{}
	}
	p := &Pacer{clock: clock}
	p.SetTarget(target)
	return p
}

// SetTarget changes the target rate. It is safe to call while stepping.
func (p *Pacer) SetTarget(rate float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rate <= 0 {
		rate = 0
		p.delay = 0
	}
	p.target = rate
}

// Target returns the target rate in steps per second.
func (p *Pacer) Target() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.target
}

// Delay returns the current per-step delay.
func (p *Pacer) Delay() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.delay
}

// Rate returns the rate measured over the last complete window.
func (p *Pacer) Rate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rate
}

// Reset forgets the measurement window, e.g. after the loop was paused.
func (p *Pacer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.windowStart = time.Time{}
	p.passes = 0
}

// ResetDelay zeroes the accumulated delay and forgets the window.
func (p *Pacer) ResetDelay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.delay = 0
	p.windowStart = time.Time{}
	p.passes = 0
}

// Begin marks the start of a step.
func (p *Pacer) Begin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.passStart = p.clock.Now()
	if p.windowStart.IsZero() {
		p.windowStart = p.passStart
	}
}

// End records a completed step and returns how long to sleep before the
// next one. A step that already took a full target interval gets no sleep.
func (p *Pacer) End() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.clock.Now()
	if p.windowStart.IsZero() {
		p.windowStart = now
	}
	p.passes++
	if elapsed := now.Sub(p.windowStart); elapsed >= PacerWindow {
		p.rate = float64(p.passes) / elapsed.Seconds()
		if p.target > 0 {
			p.delay += time.Duration((p.rate - p.target) * float64(time.Millisecond))
			if p.delay < 0 {
				p.delay = 0
			}
		}
		p.windowStart = now
		p.passes = 0
	}
	if p.target <= 0 {
		return 0
	}
	interval := time.Duration(float64(time.Second) / p.target)
	if !p.passStart.IsZero() && now.Sub(p.passStart) >= interval {
		return 0
	}
	return p.delay
}

// Wait sleeps for d on the pacer's clock or until ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}
