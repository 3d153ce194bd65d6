package editor

import (
	"PolyBoard/internal/state"
)

// EventType is the kind of input delivered by the host.
type EventType int

const (
	EventPress EventType = iota
	EventMove
	EventRelease
	EventClick
	EventKeyDown
)

func (t EventType) String() string {
	switch t {
	case EventPress:
		return "press"
	case EventMove:
		return "move"
	case EventRelease:
		return "release"
	case EventClick:
		return "click"
	case EventKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Event is one input event. Pos is already in canvas coordinates.
type Event struct {
	Type EventType
	Pos  state.Point
	Key  string
}

// HandleEvent routes ev and reports whether the host should suppress its
// default handling of it.
func (e *Editor) HandleEvent(ev Event) bool {
	switch ev.Type {
	case EventPress:
		e.Press(ev.Pos)
	case EventMove:
		e.Move(ev.Pos)
	case EventRelease:
		e.Release()
	case EventClick:
		e.Click(ev.Pos)
	case EventKeyDown:
		return e.KeyDown(ev.Key)
	}
	return false
}

// Press arms a drag when p lands on the active pin, using the pulse radius
// of this moment.
func (e *Editor) Press(p state.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly || e.seq.Running() {
		return false
	}
	return e.drag.Press(e.geometry, p, e.pulse.Radius)
}

// Move drags the grabbed pin to p.
func (e *Editor) Move(p state.Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag.Move(e.geometry, p) {
		e.changedLocked()
	}
}

// Release ends any drag.
func (e *Editor) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.drag.Release()
}

// Click places a point: the anchor first, then appended points. A click the
// host emits where a drag gesture just ended is ignored.
func (e *Editor) Click(p state.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.drag.ConsumeDragged(p) {
		return false
	}
	if e.readOnly {
		return false
	}
	if e.seq.Running() {
		e.logger.Printf("%sclick ignored during redraw", defaultLogPrefix)
		return false
	}
	e.geometry.PlaceFirst(p)
	e.changedLocked()
	return true
}

// Undo removes the last point unless only the anchor is left.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly || e.seq.Running() {
		return false
	}
	_, ok := e.geometry.RemoveLast()
	if !ok {
		return false
	}
	if id, dragging := e.drag.Target(); dragging && !e.geometry.Contains(id) {
		e.drag.Cancel()
	}
	e.changedLocked()
	return true
}

// KeyDown handles the undo key. It reports true for that key whether or
// not anything was removed, so the host drops its default action.
func (e *Editor) KeyDown(key string) bool {
	if key != KeyUndo {
		return false
	}
	e.Undo()
	return true
}
