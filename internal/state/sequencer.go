package state

import (
	"sync"
	"time"
)

// DefaultRedrawInterval is the cadence of a scripted redraw.
const DefaultRedrawInterval = 200 * time.Millisecond

// Sequencer replays a vertex list into a Geometry, one vertex per wake-up.
//
// Start and Stop must be called with the lock held; the timer callbacks take
// the same lock before touching the geometry.
type Sequencer struct {
	lock     sync.Locker
	sched    Scheduler
	interval time.Duration

	geometry *Geometry
	items    []Vertex
	cursor   int
	gen      uint64
	timer    Stopper

	// OnStep runs (under the lock) after each appended vertex.
	OnStep func()
	// OnDone runs (under the lock) once the list is exhausted.
	OnDone func()
}

// NewSequencer builds a sequencer that serializes its steps through lock.
func NewSequencer(lock sync.Locker, sched Scheduler, interval time.Duration) *Sequencer {
	if sched == nil {
		sched = WallClock{}
	}
	if interval <= 0 {
		interval = DefaultRedrawInterval
	}
	return &Sequencer{lock: lock, sched: sched, interval: interval}
}

// Running reports whether a redraw is in progress.
func (s *Sequencer) Running() bool {
	return s.geometry != nil && s.cursor < len(s.items)
}

// Progress returns how many of the items have been drawn.
func (s *Sequencer) Progress() (done, total int) {
	return s.cursor, len(s.items)
}

// Start fixes the anchor, clears g and begins the replay. The first vertex
// is appended immediately. A run already in progress is cancelled.
func (s *Sequencer) Start(g *Geometry, items []Vertex) {
	s.Stop()
	g.FixAnchor()
	g.ReplaceAll(nil)

	s.geometry = g
	s.items = make([]Vertex, len(items))
	copy(s.items, items)
	s.cursor = 0
	s.advance(s.gen)
}

// Stop abandons the current run. Vertices already appended stay.
func (s *Sequencer) Stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.geometry = nil
	s.items = nil
	s.cursor = 0
}

func (s *Sequencer) advance(gen uint64) {
	if gen != s.gen || !s.Running() {
		return
	}
	s.geometry.AppendVertex(s.items[s.cursor])
	s.cursor++
	if s.OnStep != nil {
		s.OnStep()
	}
	if s.cursor >= len(s.items) {
		s.timer = nil
		if s.OnDone != nil {
			s.OnDone()
		}
		return
	}
	s.timer = s.sched.AfterFunc(s.interval, func() {
		s.lock.Lock()
		defer s.lock.Unlock()
		s.advance(gen)
	})
}
