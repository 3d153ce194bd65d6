package state

import "github.com/google/uuid"

// DragState is the phase of the drag gesture.
type DragState int

const (
	DragIdle DragState = iota
	DragArmed
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragArmed:
		return "armed"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// ClickSlop is how far a click may land from where a drag ended and still be
// taken as that drag's trailing click.
const ClickSlop = 3.0

// Drag translates press/move/release into geometry mutations. Only the last
// vertex can be grabbed.
type Drag struct {
	state  DragState
	target uuid.UUID
	// dragged is set when the last gesture ended after real movement, so a
	// host click trailing it at end is not taken as a placement.
	dragged bool
	end     Point
}

func (d *Drag) State() DragState { return d.state }

// Target returns the id of the grabbed vertex, if any.
func (d *Drag) Target() (uuid.UUID, bool) {
	if d.state == DragIdle {
		return uuid.Nil, false
	}
	return d.target, true
}

// Press arms the drag if c hits the last vertex within radius.
func (d *Drag) Press(g *Geometry, c Point, radius float64) bool {
	d.dragged = false
	last, ok := g.Last()
	if !ok || !last.Defined {
		return false
	}
	if !IsHit(c, last.Pos, radius) {
		return false
	}
	d.state = DragArmed
	d.target = last.ID
	return true
}

// Move drags the grabbed vertex to c. If the vertex vanished (undo, import)
// the drag is dropped.
func (d *Drag) Move(g *Geometry, c Point) bool {
	if d.state == DragIdle {
		return false
	}
	if !g.UpdateByRef(d.target, c) {
		d.Cancel()
		return false
	}
	d.state = DragDragging
	d.end = c
	return true
}

// Release ends the gesture regardless of where the cursor is.
func (d *Drag) Release() {
	if d.state == DragDragging {
		d.dragged = true
	}
	d.Cancel()
}

// Cancel returns to idle without recording a drag.
func (d *Drag) Cancel() {
	d.state = DragIdle
	d.target = uuid.Nil
}

// ConsumeDragged reports whether a click at c is the trailing click of the
// drag that just ended. Whatever the answer, the next click is a fresh one.
func (d *Drag) ConsumeDragged(c Point) bool {
	was := d.dragged && c.Dist(d.end) <= ClickSlop
	d.dragged = false
	return was
}
