package search

import (
	"sync"
	"time"
)

// DefaultDelay is the autocomplete quiescence window
const DefaultDelay = 300 * time.Millisecond

// Gate runs only the most recently scheduled function, once input has been
// quiet for the configured delay.
type Gate struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
}

// NewGate creates a gate. A non-positive delay falls back to DefaultDelay.
func NewGate(delay time.Duration) *Gate {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Gate{delay: delay}
}

// Schedule replaces any pending invocation with fn
func (g *Gate) Schedule(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
	}
	g.gen++
	gen := g.gen
	g.timer = time.AfterFunc(g.delay, func() {
		g.mu.Lock()
		// a timer that already fired can't be stopped; the generation check drops it
		if gen != g.gen {
			g.mu.Unlock()
			return
		}
		g.timer = nil
		g.mu.Unlock()
		fn()
	})
}

// Stop cancels the pending invocation, if any
func (g *Gate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.gen++
}

// Pending reports whether an invocation is waiting to fire
func (g *Gate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timer != nil
}

// Delay returns the quiescence window
func (g *Gate) Delay() time.Duration {
	return g.delay
}
