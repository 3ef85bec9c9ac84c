// File: quad/types.go
// Labelled Vertex and Side value objects. Labels are fixed identities:
// vertices run A..D in drawing order and side i connects vertex i to
// vertex (i+1)%4, so the sides are AB, BC, CD, DA. Positions are the
// only externally mutable state, and only through
// Model.SetVertexPositions.

package quad

import (
	"math"

	"github.com/ctessum/geom"
)

// VertexLabel identifies one corner of the quadrilateral.
type VertexLabel uint8

const (
	// VertexA is corner A (index 0).
	VertexA VertexLabel = iota
	// VertexB is corner B (index 1).
	VertexB
	// VertexC is corner C (index 2).
	VertexC
	// VertexD is corner D (index 3).
	VertexD
)

var vertexNames = [...]string{"A", "B", "C", "D"}

// String returns the single-letter label.
func (l VertexLabel) String() string {
	if l.valid() {
		return vertexNames[l]
	}

	return "?"
}

func (l VertexLabel) valid() bool { return l <= VertexD }

// SideLabel identifies one edge of the quadrilateral.
type SideLabel uint8

const (
	// SideAB connects A to B (index 0).
	SideAB SideLabel = iota
	// SideBC connects B to C (index 1).
	SideBC
	// SideCD connects C to D (index 2).
	SideCD
	// SideDA connects D to A (index 3).
	SideDA
)

var sideNames = [...]string{"AB", "BC", "CD", "DA"}

// String returns the two-letter label.
func (l SideLabel) String() string {
	if l <= SideDA {
		return sideNames[l]
	}

	return "??"
}

// Vertex is one corner: fixed identity, mutable 2D position, and a
// derived interior angle.
//
// The angle cache is only meaningful once the owning Model has finished
// a recompute pass after the most recent batch of position changes;
// Angle reports ok=false in the stale window. Vertices are created once
// at Model construction and live for the whole session; disposable
// scratch duplicates exist only inside Clone copies.
type Vertex struct {
	label    VertexLabel
	pos      geom.Point
	angle    float64
	hasAngle bool
}

// Label returns the fixed identity of the corner.
func (v *Vertex) Label() VertexLabel { return v.label }

// Position returns the current 2D position.
func (v *Vertex) Position() geom.Point { return v.pos }

// Angle returns the cached interior angle in radians. ok is false while
// the angle is stale, i.e. between a position write and the completion
// of the owning Model's batch recompute.
func (v *Vertex) Angle() (angle float64, ok bool) {
	return v.angle, v.hasAngle
}

// DistanceTo returns the Euclidean distance to another vertex.
func (v *Vertex) DistanceTo(o *Vertex) float64 {
	return math.Hypot(o.pos.X-v.pos.X, o.pos.Y-v.pos.Y)
}

// setPosition mutates the position only; recomputing the angle is the
// Model's responsibility.
func (v *Vertex) setPosition(p geom.Point) {
	v.pos = p
	v.hasAngle = false
}

func (v *Vertex) setAngle(a float64) {
	v.angle = a
	v.hasAngle = true
}

// Side is one edge: fixed identity plus non-owning references to its
// two endpoint vertices (the Model owns the vertices).
type Side struct {
	label  SideLabel
	v1, v2 *Vertex
	length float64
}

// Label returns the fixed identity of the edge.
func (s *Side) Label() SideLabel { return s.label }

// Vertices returns the two endpoints, in label order.
func (s *Side) Vertices() (*Vertex, *Vertex) { return s.v1, s.v2 }

// Length returns the Euclidean length cached by the last recompute;
// it is always consistent with the current vertex positions once the
// owning Model finishes a batch.
func (s *Side) Length() float64 { return s.length }

// Segment returns the line segment from the first endpoint to the
// second.
func (s *Side) Segment() (geom.Point, geom.Point) {
	return s.v1.pos, s.v2.pos
}

// Midpoint returns the point halfway along the segment.
func (s *Side) Midpoint() geom.Point {
	return geom.Point{
		X: (s.v1.pos.X + s.v2.pos.X) / 2,
		Y: (s.v1.pos.Y + s.v2.pos.Y) / 2,
	}
}

func (s *Side) recomputeLength() {
	s.length = s.v1.DistanceTo(s.v2)
}
