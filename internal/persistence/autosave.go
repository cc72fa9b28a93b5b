package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/julianstephens/smartpack/internal/logger"
	"github.com/julianstephens/smartpack/internal/models"
)

// AutoSaver debounces saves: it holds at most one pending state, and every
// Schedule replaces it and restarts the quiet-period timer.
type AutoSaver struct {
	gateway *Gateway
	delay   time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *models.TripState
	seq     uint64
	stopped bool

	// saveMu orders writes so an older state never lands after a newer one.
	saveMu  sync.Mutex
	written uint64
}

func NewAutoSaver(gateway *Gateway, delay time.Duration) *AutoSaver {
	return &AutoSaver{gateway: gateway, delay: delay}
}

// Schedule queues state for saving after the delay. States with autosave
// turned off are ignored.
func (a *AutoSaver) Schedule(state models.TripState) {
	if !state.Settings.Autosave {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}

	a.seq++
	a.pending = &state
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// Pending reports whether a write is waiting for its timer.
func (a *AutoSaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

// Flush writes the pending state now. It returns false only when a write was
// attempted and failed.
func (a *AutoSaver) Flush() bool {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	state, seq := a.take()
	a.mu.Unlock()

	if state == nil {
		return true
	}
	return a.write(*state, seq)
}

// Cancel drops the pending write, if any. Later Schedule calls still work.
func (a *AutoSaver) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
}

// Stop drops any pending write and ignores later Schedule calls.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
	a.stopped = true
}

func (a *AutoSaver) fire() {
	a.mu.Lock()
	state, seq := a.take()
	a.mu.Unlock()
	if state != nil {
		a.write(*state, seq)
	}
}

// take empties the pending slot. Callers hold mu.
func (a *AutoSaver) take() (*models.TripState, uint64) {
	state := a.pending
	a.pending = nil
	return state, a.seq
}

func (a *AutoSaver) write(state models.TripState, seq uint64) bool {
	a.saveMu.Lock()
	defer a.saveMu.Unlock()
	if seq <= a.written {
		return true
	}
	ok := a.gateway.Save(context.Background(), state)
	if ok {
		a.written = seq
	} else {
		logger.Warn("Autosave failed")
	}
	return ok
}
