// Package exchange converts polygon geometry to and from its JSON exchange
// format: an array of objects with numeric "x" and "y" fields.
package exchange

import (
	"bytes"
	"encoding/json"
	"fmt"

	"PolyBoard/internal/state"
)

// MinPoints is the shortest list Import accepts.
const MinPoints = 2

// FormatError reports an import payload that is not a usable point list.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid point list: %s: %v", e.Reason, e.Err)
	}
	return "invalid point list: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Err }

type point struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

// Export encodes the vertices in order. Undefined vertices are written as {}.
func Export(vs []state.Vertex) ([]byte, error) {
	out := make([]point, 0, len(vs))
	for _, v := range vs {
		if !v.Defined {
			out = append(out, point{})
			continue
		}
		x, y := v.Pos.X, v.Pos.Y
		out = append(out, point{X: &x, Y: &y})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode points: %w", err)
	}
	return data, nil
}

// Import parses text into fresh vertices for a scripted redraw. Elements
// without numeric x and y are kept as undefined vertices so the order is
// preserved.
func Import(text []byte) ([]state.Vertex, error) {
	return decode(text, MinPoints)
}

// Decode is Import without the minimum length, for mirrored snapshots.
func Decode(text []byte) ([]state.Vertex, error) {
	return decode(text, 0)
}

func decode(text []byte, minPoints int) ([]state.Vertex, error) {
	text = bytes.TrimSpace(text)
	if !json.Valid(text) {
		return nil, &FormatError{Reason: "not valid JSON"}
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(text, &raw); err != nil || raw == nil {
		return nil, &FormatError{Reason: "not an array", Err: err}
	}
	if len(raw) < minPoints {
		return nil, &FormatError{Reason: fmt.Sprintf("need at least %d points, got %d", minPoints, len(raw))}
	}

	vs := make([]state.Vertex, 0, len(raw))
	for _, r := range raw {
		var p point
		if err := json.Unmarshal(r, &p); err != nil || p.X == nil || p.Y == nil {
			vs = append(vs, state.UndefinedVertex())
			continue
		}
		vs = append(vs, state.NewVertex(state.Point{X: *p.X, Y: *p.Y}))
	}
	return vs, nil
}
