// Package editor ties the polygon state machine together: it routes input
// events to placement, drag and undo, runs scripted redraws and hands frames
// to the renderer.
package editor

import (
	"context"
	"errors"
	"image"
	"log"
	"sync"
	"time"

	"PolyBoard/internal/exchange"
	"PolyBoard/internal/imageload"
	"PolyBoard/internal/render"
	"PolyBoard/internal/state"
)

// Severity classifies a status message.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "success"
}

const (
	MsgRedrawing     = "Redrawing from JSON..."
	MsgInvalidJSON   = "Invalid JSON format."
	MsgImageLoaded   = "Background image loaded."
	MsgImageFailed   = "Could not load image."
	KeyUndo          = "BackSpace"
	defaultLogPrefix = "[EDITOR] "
)

// Options configures an Editor. The zero value is usable.
type Options struct {
	Scheduler      state.Scheduler
	RedrawInterval time.Duration
	PinRadius      float64
	Logger         *log.Logger
	// ReadOnly editors ignore input; they only mirror remote geometry.
	ReadOnly bool
}

// Editor owns the geometry, pulse, drag and background of one session. All
// methods are safe to call from any goroutine; they are serialized by one
// lock, which also covers redraw steps fired from timers.
type Editor struct {
	mu         sync.Mutex
	geometry   *state.Geometry
	pulse      state.Pulse
	drag       state.Drag
	seq        *state.Sequencer
	background image.Image
	rev        state.Revision
	pinRadius  float64
	readOnly   bool
	logger     *log.Logger

	loadCtx    context.Context
	loadCancel context.CancelFunc

	onStatus func(msg string, sev Severity)
	pending  *statusMsg

	// OnChange receives every geometry change with its revision. It is
	// called with the editor lock held and must not call back into the
	// editor.
	OnChange func(rev uint64, vs []state.Vertex)
}

// New creates an empty editor.
func New(opts Options) *Editor {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	pin := opts.PinRadius
	if pin <= 0 {
		pin = render.PinRadius
	}
	ctx, cancel := context.WithCancel(context.Background())
	e := &Editor{
		geometry:   state.NewGeometry(),
		pulse:      state.NewPulse(),
		pinRadius:  pin,
		readOnly:   opts.ReadOnly,
		logger:     logger,
		loadCtx:    ctx,
		loadCancel: cancel,
	}
	e.seq = state.NewSequencer(&e.mu, opts.Scheduler, opts.RedrawInterval)
	e.seq.OnStep = func() {
		done, total := e.seq.Progress()
		e.logger.Printf("%sredraw step %d/%d", defaultLogPrefix, done, total)
		e.changedLocked()
	}
	e.seq.OnDone = func() {
		e.logger.Printf("%sredraw finished with %d points", defaultLogPrefix, e.geometry.Len())
	}
	return e
}

// Close stops a running redraw and drops any pending image load.
func (e *Editor) Close() {
	e.loadCancel()
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seq.Stop()
	e.drag.Cancel()
}

// Tick advances the pulse animation by one step.
func (e *Editor) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pulse.Tick()
}

// Frame snapshots what the renderer needs.
func (e *Editor) Frame() render.Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	return render.Frame{
		Vertices:    e.geometry.Vertices(),
		PulseRadius: e.pulse.Radius,
		Background:  e.background,
		PinRadius:   e.pinRadius,
	}
}

// Render draws the current frame onto s.
func (e *Editor) Render(s render.Surface) {
	render.Draw(s, e.Frame())
}

// Step runs one animation tick: pulse first, then the frame reflecting it.
func (e *Editor) Step(s render.Surface) {
	e.Tick()
	e.Render(s)
}

// Vertices returns a copy of the geometry.
func (e *Editor) Vertices() []state.Vertex {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.geometry.Vertices()
}

// Pulse returns the animator state.
func (e *Editor) Pulse() state.Pulse {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pulse
}

// DragState returns the drag controller's phase.
func (e *Editor) DragState() state.DragState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drag.State()
}

// AnchorFixed reports whether the next click appends rather than anchors.
func (e *Editor) AnchorFixed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.geometry.AnchorFixed()
}

// Redrawing reports whether a scripted redraw is running.
func (e *Editor) Redrawing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seq.Running()
}

// Revision returns the revision of the latest change.
func (e *Editor) Revision() uint64 {
	return e.rev.Current()
}

// Background returns the current background image, or nil.
func (e *Editor) Background() image.Image {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.background
}

// ExportJSON encodes the geometry without changing it.
func (e *Editor) ExportJSON() ([]byte, error) {
	return exchange.Export(e.Vertices())
}

// ImportJSON validates text and starts a scripted redraw of it. On failure
// the geometry is left alone and an error status is reported.
func (e *Editor) ImportJSON(text []byte) error {
	vs, err := exchange.Import(text)
	if err != nil {
		e.logger.Printf("%simport rejected: %v", defaultLogPrefix, err)
		e.status(MsgInvalidJSON, SeverityError)
		return err
	}
	e.mu.Lock()
	e.drag.Cancel()
	e.seq.Start(e.geometry, vs)
	e.mu.Unlock()

	e.logger.Printf("%sredrawing %d points", defaultLogPrefix, len(vs))
	e.status(MsgRedrawing, SeveritySuccess)
	return nil
}

// StopRedraw abandons a running redraw, keeping what was drawn so far.
func (e *Editor) StopRedraw() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seq.Stop()
}

// SetBackground replaces the background image wholesale.
func (e *Editor) SetBackground(img image.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.background = img
}

// LoadBackground decodes data asynchronously. The visible background only
// changes once decoding succeeds; failures keep the previous one.
func (e *Editor) LoadBackground(name string, data []byte, done func(error)) {
	imageload.LoadAsync(e.loadCtx, name, data, func(img image.Image, err error) {
		if err != nil {
			var de *imageload.DecodeError
			if errors.As(err, &de) {
				e.logger.Printf("%sbackground %q rejected: %v", defaultLogPrefix, de.Name, de.Err)
			}
			e.status(MsgImageFailed, SeverityError)
		} else {
			e.SetBackground(img)
			e.status(MsgImageLoaded, SeveritySuccess)
		}
		if done != nil {
			done(err)
		}
	})
}

// Mirror replaces the geometry with a remote snapshot if rev is newer than
// anything applied so far.
func (e *Editor) Mirror(rev uint64, vs []state.Vertex) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.rev.Update(rev) {
		return false
	}
	e.drag.Cancel()
	e.geometry.FixAnchor()
	e.geometry.ReplaceAll(vs)
	return true
}

type statusMsg struct {
	msg string
	sev Severity
}

// SetOnStatus installs the receiver of user-visible messages. It is called
// without the editor lock held. The latest message reported while no
// receiver was installed is delivered to f right away.
func (e *Editor) SetOnStatus(f func(msg string, sev Severity)) {
	e.mu.Lock()
	e.onStatus = f
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()
	if f != nil && pending != nil {
		f(pending.msg, pending.sev)
	}
}

// Report sends msg to the status channel.
func (e *Editor) Report(msg string, sev Severity) {
	e.status(msg, sev)
}

func (e *Editor) status(msg string, sev Severity) {
	e.mu.Lock()
	f := e.onStatus
	if f == nil {
		e.pending = &statusMsg{msg: msg, sev: sev}
	}
	e.mu.Unlock()
	if f != nil {
		f(msg, sev)
	}
}

func (e *Editor) changedLocked() {
	rev := e.rev.Tick()
	if e.OnChange != nil {
		e.OnChange(rev, e.geometry.Vertices())
	}
}
