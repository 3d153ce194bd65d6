package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScheduler queues resumptions until the test fires them.
type fakeScheduler struct {
	mu      sync.Mutex
	pending []*fakeTimer
	delays  []time.Duration
}

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Stopper {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{f: f}
	s.pending = append(s.pending, t)
	s.delays = append(s.delays, d)
	return t
}

// fire runs the oldest pending resumption and reports whether there was one.
func (s *fakeScheduler) fire() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()
	if !t.stopped {
		t.f()
	}
	return true
}

func (s *fakeScheduler) drain() {
	for s.fire() {
	}
}

func verts(pts ...Point) []Vertex {
	vs := make([]Vertex, len(pts))
	for i, p := range pts {
		vs[i] = NewVertex(p)
	}
	return vs
}

func TestSequencerAppendsOnePerStep(t *testing.T) {
	var mu sync.Mutex
	sched := &fakeScheduler{}
	seq := NewSequencer(&mu, sched, 0)
	g := NewGeometry()
	g.PlaceFirst(Point{9, 9})

	items := verts(Point{1, 2}, Point{3, 4}, Point{5, 6})
	mu.Lock()
	seq.Start(g, items)
	mu.Unlock()

	assert.True(t, g.AnchorFixed())
	assert.Equal(t, []Point{{1, 2}}, positions(g.Vertices()))
	assert.True(t, seq.Running())
	done, total := seq.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)

	require.True(t, sched.fire())
	assert.Equal(t, []Point{{1, 2}, {3, 4}}, positions(g.Vertices()))
	done, _ = seq.Progress()
	assert.Equal(t, 2, done)
	require.True(t, sched.fire())
	assert.Equal(t, []Point{{1, 2}, {3, 4}, {5, 6}}, positions(g.Vertices()))

	assert.False(t, seq.Running())
	assert.False(t, sched.fire())
	for _, d := range sched.delays {
		assert.Equal(t, DefaultRedrawInterval, d)
	}
}

func TestSequencerCallbacks(t *testing.T) {
	var mu sync.Mutex
	sched := &fakeScheduler{}
	seq := NewSequencer(&mu, sched, 50*time.Millisecond)
	steps, done := 0, 0
	seq.OnStep = func() { steps++ }
	seq.OnDone = func() { done++ }

	mu.Lock()
	seq.Start(NewGeometry(), verts(Point{1, 1}, Point{2, 2}))
	mu.Unlock()
	sched.drain()

	assert.Equal(t, 2, steps)
	assert.Equal(t, 1, done)
	assert.Equal(t, []time.Duration{50 * time.Millisecond}, sched.delays)
}

func TestSequencerStop(t *testing.T) {
	var mu sync.Mutex
	sched := &fakeScheduler{}
	seq := NewSequencer(&mu, sched, 0)
	g := NewGeometry()

	mu.Lock()
	seq.Start(g, verts(Point{1, 1}, Point{2, 2}, Point{3, 3}))
	seq.Stop()
	mu.Unlock()
	sched.drain()

	assert.False(t, seq.Running())
	assert.Equal(t, []Point{{1, 1}}, positions(g.Vertices()))
}

func TestSequencerRestartCancelsPrevious(t *testing.T) {
	var mu sync.Mutex
	sched := &fakeScheduler{}
	seq := NewSequencer(&mu, sched, 0)
	g := NewGeometry()

	mu.Lock()
	seq.Start(g, verts(Point{1, 1}, Point{2, 2}, Point{3, 3}))
	seq.Start(g, verts(Point{7, 7}, Point{8, 8}))
	mu.Unlock()
	sched.drain()

	assert.Equal(t, []Point{{7, 7}, {8, 8}}, positions(g.Vertices()))
}

func TestSequencerWallClock(t *testing.T) {
	var mu sync.Mutex
	seq := NewSequencer(&mu, WallClock{}, time.Millisecond)
	g := NewGeometry()
	finished := make(chan struct{})
	seq.OnDone = func() { close(finished) }

	mu.Lock()
	seq.Start(g, verts(Point{1, 1}, Point{2, 2}, Point{3, 3}))
	mu.Unlock()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("redraw did not finish")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, g.Len())
}

func TestRevision(t *testing.T) {
	var r Revision
	assert.Equal(t, uint64(1), r.Tick())
	assert.True(t, r.Update(5))
	assert.False(t, r.Update(5))
	assert.False(t, r.Update(3))
	assert.Equal(t, uint64(6), r.Tick())
	assert.Equal(t, uint64(6), r.Current())
}
