package state

import (
	"github.com/google/uuid"
)

// Geometry is the ordered vertex sequence of the polygon being edited.
// Insertion order is vertex order. It is not safe for concurrent use; the
// editor serializes access.
type Geometry struct {
	vertices    []Vertex
	anchorFixed bool
}

// NewGeometry returns an empty geometry with no anchor.
func NewGeometry() *Geometry {
	return &Geometry{vertices: make([]Vertex, 0)}
}

// AnchorFixed reports whether the first pin has been placed (or a redraw has
// claimed it).
func (g *Geometry) AnchorFixed() bool { return g.anchorFixed }

// FixAnchor marks the anchor as placed without touching the vertices.
func (g *Geometry) FixAnchor() { g.anchorFixed = true }

// Len returns the number of vertices.
func (g *Geometry) Len() int { return len(g.vertices) }

// Vertices returns a copy of the sequence.
func (g *Geometry) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// First returns the anchor vertex.
func (g *Geometry) First() (Vertex, bool) {
	if len(g.vertices) == 0 {
		return Vertex{}, false
	}
	return g.vertices[0], true
}

// Last returns the active vertex.
func (g *Geometry) Last() (Vertex, bool) {
	if len(g.vertices) == 0 {
		return Vertex{}, false
	}
	return g.vertices[len(g.vertices)-1], true
}

// Contains reports whether a vertex with the given id is present.
func (g *Geometry) Contains(id uuid.UUID) bool {
	return g.indexOf(id) >= 0
}

// PlaceFirst replaces the sequence with [p] and fixes the anchor. Once the
// anchor is fixed it appends instead.
func (g *Geometry) PlaceFirst(p Point) Vertex {
	if g.anchorFixed {
		return g.Append(p)
	}
	v := NewVertex(p)
	g.vertices = []Vertex{v}
	g.anchorFixed = true
	return v
}

// Append adds p to the end of the sequence.
func (g *Geometry) Append(p Point) Vertex {
	v := NewVertex(p)
	g.vertices = append(g.vertices, v)
	return v
}

// AppendVertex adds an existing vertex (used by the redraw sequencer, which may
// carry undefined vertices).
func (g *Geometry) AppendVertex(v Vertex) {
	g.vertices = append(g.vertices, v)
}

// UpdateByRef moves the vertex with the given id to p. It returns false if the
// vertex is no longer present.
func (g *Geometry) UpdateByRef(id uuid.UUID, p Point) bool {
	i := g.indexOf(id)
	if i < 0 {
		return false
	}
	g.vertices[i].Pos = p
	g.vertices[i].Defined = true
	return true
}

// UpdateLast moves the last vertex to p.
func (g *Geometry) UpdateLast(p Point) bool {
	last, ok := g.Last()
	if !ok {
		return false
	}
	return g.UpdateByRef(last.ID, p)
}

// RemoveLast drops the final vertex. The anchor is never removed, so this is
// a no-op when one or no vertex remains.
func (g *Geometry) RemoveLast() (Vertex, bool) {
	if len(g.vertices) <= 1 {
		return Vertex{}, false
	}
	last := g.vertices[len(g.vertices)-1]
	g.vertices = g.vertices[:len(g.vertices)-1]
	return last, true
}

// ReplaceAll swaps in a new sequence.
func (g *Geometry) ReplaceAll(vs []Vertex) {
	g.vertices = make([]Vertex, len(vs))
	copy(g.vertices, vs)
}

// Points returns the positions of the defined vertices in order.
func (g *Geometry) Points() []Point {
	pts := make([]Point, 0, len(g.vertices))
	for _, v := range g.vertices {
		if v.Defined {
			pts = append(pts, v.Pos)
		}
	}
	return pts
}

func (g *Geometry) indexOf(id uuid.UUID) int {
	for i := range g.vertices {
		if g.vertices[i].ID == id {
			return i
		}
	}
	return -1
}
