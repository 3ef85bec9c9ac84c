// File: classify/types.go
// The NamedShape enumeration, the relation pair identifiers, the Facts
// input record, and the Result record.

package classify

import "errors"

// ErrIncompleteFacts indicates an angle or length was NaN or infinite.
// The owning model must finish its batch recompute before classifying;
// hitting this error is a sequencing bug in the caller, not user input.
var ErrIncompleteFacts = errors.New("classify: facts contain non-finite angle or length")

// NamedShape is the closed set of shape classifications.
type NamedShape uint8

const (
	// Square — all right angles and all sides equal.
	Square NamedShape = iota

	// Rectangle — all right angles, sides not all equal.
	Rectangle

	// Rhombus — both opposite pairs parallel and all sides equal,
	// excluding squares.
	Rhombus

	// Parallelogram — both opposite pairs parallel, sides not all equal.
	Parallelogram

	// Trapezoid — exactly one opposite pair parallel.
	Trapezoid

	// IsoscelesTrapezoid — one pair parallel and the non-parallel
	// opposite pair equal in length.
	IsoscelesTrapezoid

	// Kite — convex, no parallel pairs, two adjacent equal-length side
	// pairs arranged symmetrically about one diagonal.
	Kite

	// Dart — a kite with one reflex corner on the symmetry diagonal.
	Dart

	// ConcaveQuadrilateral — one reflex corner, no kite symmetry.
	ConcaveQuadrilateral

	// ConvexQuadrilateral — convex with no other relation.
	ConvexQuadrilateral

	// Triangle — one interior angle is flat (≈π), so the quadrilateral
	// degenerates to a visual triangle.
	Triangle
)

// shapeNames is indexed by NamedShape.
var shapeNames = [...]string{
	Square:               "square",
	Rectangle:            "rectangle",
	Rhombus:              "rhombus",
	Parallelogram:        "parallelogram",
	Trapezoid:            "trapezoid",
	IsoscelesTrapezoid:   "isosceles trapezoid",
	Kite:                 "kite",
	Dart:                 "dart",
	ConcaveQuadrilateral: "concave quadrilateral",
	ConvexQuadrilateral:  "convex quadrilateral",
	Triangle:             "triangle",
}

// String returns the human-readable shape name.
func (s NamedShape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}

	return "unknown"
}

// Vertex and side indices used by Facts and the pair identifiers.
// Vertices run A=0..D=3 in drawing order; side i connects vertex i to
// vertex (i+1)%4, so AB=0, BC=1, CD=2, DA=3.
const (
	IdxA = 0
	IdxB = 1
	IdxC = 2
	IdxD = 3

	IdxAB = 0
	IdxBC = 1
	IdxCD = 2
	IdxDA = 3
)

// SidePair identifies one of the six unordered side pairs.
type SidePair uint8

const (
	// SidesABBC — adjacent pair sharing vertex B.
	SidesABBC SidePair = iota
	// SidesABCD — opposite pair AB & CD.
	SidesABCD
	// SidesABDA — adjacent pair sharing vertex A.
	SidesABDA
	// SidesBCCD — adjacent pair sharing vertex C.
	SidesBCCD
	// SidesBCDA — opposite pair BC & DA.
	SidesBCDA
	// SidesCDDA — adjacent pair sharing vertex D.
	SidesCDDA
)

// sidePairIdx maps each SidePair to its two side indices.
var sidePairIdx = [...][2]int{
	SidesABBC: {IdxAB, IdxBC},
	SidesABCD: {IdxAB, IdxCD},
	SidesABDA: {IdxAB, IdxDA},
	SidesBCCD: {IdxBC, IdxCD},
	SidesBCDA: {IdxBC, IdxDA},
	SidesCDDA: {IdxCD, IdxDA},
}

var sidePairNames = [...]string{
	SidesABBC: "AB=BC",
	SidesABCD: "AB=CD",
	SidesABDA: "AB=DA",
	SidesBCCD: "BC=CD",
	SidesBCDA: "BC=DA",
	SidesCDDA: "CD=DA",
}

// Indexes returns the two side indices of the pair.
func (p SidePair) Indexes() (int, int) {
	return sidePairIdx[p][0], sidePairIdx[p][1]
}

// Opposite reports whether the pair is an opposite (non-adjacent) pair.
func (p SidePair) Opposite() bool {
	return p == SidesABCD || p == SidesBCDA
}

// String returns the pair in "AB=CD" notation.
func (p SidePair) String() string {
	if int(p) < len(sidePairNames) {
		return sidePairNames[p]
	}

	return "unknown"
}

// VertexPair identifies one of the six unordered vertex pairs.
type VertexPair uint8

const (
	// VerticesAB — adjacent pair A & B.
	VerticesAB VertexPair = iota
	// VerticesAC — opposite pair A & C.
	VerticesAC
	// VerticesAD — adjacent pair A & D.
	VerticesAD
	// VerticesBC — adjacent pair B & C.
	VerticesBC
	// VerticesBD — opposite pair B & D.
	VerticesBD
	// VerticesCD — adjacent pair C & D.
	VerticesCD
)

// vertexPairIdx maps each VertexPair to its two vertex indices.
var vertexPairIdx = [...][2]int{
	VerticesAB: {IdxA, IdxB},
	VerticesAC: {IdxA, IdxC},
	VerticesAD: {IdxA, IdxD},
	VerticesBC: {IdxB, IdxC},
	VerticesBD: {IdxB, IdxD},
	VerticesCD: {IdxC, IdxD},
}

var vertexPairNames = [...]string{
	VerticesAB: "A=B",
	VerticesAC: "A=C",
	VerticesAD: "A=D",
	VerticesBC: "B=C",
	VerticesBD: "B=D",
	VerticesCD: "C=D",
}

// Indexes returns the two vertex indices of the pair.
func (p VertexPair) Indexes() (int, int) {
	return vertexPairIdx[p][0], vertexPairIdx[p][1]
}

// Opposite reports whether the pair is an opposite (non-adjacent) pair.
func (p VertexPair) Opposite() bool {
	return p == VerticesAC || p == VerticesBD
}

// String returns the pair in "A=C" notation.
func (p VertexPair) String() string {
	if int(p) < len(vertexPairNames) {
		return vertexPairNames[p]
	}

	return "unknown"
}

// Facts is the consistent derived-state input to Classify: reflex-aware
// interior angles in radians (A..D), Euclidean side lengths (AB..DA),
// and the authoritative parallel results for the two opposite pairs.
type Facts struct {
	Angles  [4]float64
	Lengths [4]float64

	// ParallelABCD is the authoritative parallel result for AB & CD.
	ParallelABCD bool

	// ParallelBCDA is the authoritative parallel result for BC & DA.
	ParallelBCDA bool
}

// Result is the full classification record: the single shape tag plus
// every relation set derived along the way.
type Result struct {
	// Shape is the one matching NamedShape.
	Shape NamedShape

	// ParallelSides holds 0, 1, or 2 of the opposite side pairs.
	ParallelSides []SidePair

	// EqualSides holds every side pair whose lengths compare equal
	// within InterLength, in ascending SidePair order.
	EqualSides []SidePair

	// EqualAngles holds every vertex pair whose angles compare equal
	// within InterAngle, in ascending VertexPair order.
	EqualAngles []VertexPair
}
