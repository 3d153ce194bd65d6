package state

import (
	"sync"
	"time"
)

// Stopper cancels a pending resumption. *time.Timer satisfies it.
type Stopper interface {
	Stop() bool
}

// Scheduler resumes f after d. The redraw sequencer takes one step per
// resumption.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

// WallClock schedules on real time.
type WallClock struct{}

func (WallClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Revision is a logical clock stamped on every geometry change so mirrors can
// drop stale snapshots.
type Revision struct {
	counter uint64
	mu      sync.Mutex
}

// Tick increments the clock and returns the new value.
func (r *Revision) Tick() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	return r.counter
}

// Update advances the clock to a received value. It reports whether the value
// was newer than anything seen.
func (r *Revision) Update(rev uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rev > r.counter {
		r.counter = rev
		return true
	}
	return false
}

// Current returns the last value.
func (r *Revision) Current() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counter
}
