package state

import (
	"math"

	"github.com/google/uuid"
)

// Point is a position in canvas space.
type Point struct{ X, Y float64 }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Vertex is one element of the polygon. Its ID is assigned at creation and is
// the only thing used to track it; two vertices may share a position.
type Vertex struct {
	ID      uuid.UUID
	Pos     Point
	Defined bool // false for imported elements without numeric x/y
}

// NewVertex creates a defined vertex at p with a fresh identity.
func NewVertex(p Point) Vertex {
	return Vertex{ID: uuid.New(), Pos: p, Defined: true}
}

// UndefinedVertex creates a placeholder for malformed imported data.
func UndefinedVertex() Vertex {
	return Vertex{ID: uuid.New()}
}

// IsHit reports whether cursor lies within radius of target.
func IsHit(cursor, target Point, radius float64) bool {
	return cursor.Dist(target) <= radius
}
