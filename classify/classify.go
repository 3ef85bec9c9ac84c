package classify

import (
	"math"

	"github.com/shapemodel/quadshape/tolerance"
)

// Classify names the quadrilateral described by facts.
//
// The procedure is evaluated in strict priority order — the first
// matching rule wins, which makes the classification total and mutually
// exclusive even though several geometric predicates overlap (a square
// also satisfies the rhombus, two-parallel-pair, and all-right-angle
// predicates).
//
// Returns ErrIncompleteFacts if any angle or length is non-finite;
// that can only happen when the caller classified mid-batch, which is a
// sequencing bug rather than a user-facing condition.
//
// Complexity: O(1) — fixed-size inputs, constant pair counts.
func Classify(f Facts, tol tolerance.Config) (Result, error) {
	for i := 0; i < 4; i++ {
		if !finite(f.Angles[i]) || !finite(f.Lengths[i]) {
			return Result{}, ErrIncompleteFacts
		}
	}

	res := Result{
		ParallelSides: parallelSides(f),
		EqualSides:    equalSides(f, tol),
		EqualAngles:   equalAngles(f, tol),
	}
	res.Shape = decide(f, res, tol)

	return res, nil
}

// decide walks the priority-ordered rules. Callers have already
// computed the relation sets in res.
func decide(f Facts, res Result, tol tolerance.Config) NamedShape {
	// Rule 1: a flat corner degenerates the quadrilateral to a triangle.
	for i := 0; i < 4; i++ {
		if tol.AngleIs(f.Angles[i], math.Pi) {
			return Triangle
		}
	}

	// Rule 2: a reflex corner makes the shape non-convex. A simple
	// quadrilateral admits at most one reflex corner.
	if r, ok := reflexVertex(f); ok {
		if kiteAxisPattern(res, axisThrough(r)) {
			return Dart
		}

		return ConcaveQuadrilateral
	}

	// Rule 3: all right angles.
	if allRightAngles(f, tol) {
		if allSidesEqual(f, tol) {
			return Square
		}

		return Rectangle
	}

	// Rule 4: both opposite pairs parallel.
	if f.ParallelABCD && f.ParallelBCDA {
		if allSidesEqual(f, tol) {
			return Rhombus
		}

		return Parallelogram
	}

	// Rule 5: exactly one opposite pair parallel — the trapezoid family.
	// The isosceles test applies to the other, non-parallel pair.
	if f.ParallelABCD != f.ParallelBCDA {
		other := SidesBCDA
		if f.ParallelBCDA {
			other = SidesABCD
		}
		if containsSidePair(res.EqualSides, other) {
			return IsoscelesTrapezoid
		}

		return Trapezoid
	}

	// Rule 6: no parallel pairs, but kite symmetry about either diagonal.
	if kiteAxisPattern(res, diagonalBD) || kiteAxisPattern(res, diagonalAC) {
		return Kite
	}

	// Rule 7: fallback.
	return ConvexQuadrilateral
}

// diagonal identifies one of the two diagonals as a kite symmetry axis.
type diagonal uint8

const (
	// diagonalAC — axis through vertices A and C.
	diagonalAC diagonal = iota
	// diagonalBD — axis through vertices B and D.
	diagonalBD
)

// axisThrough returns the diagonal passing through vertex index v.
func axisThrough(v int) diagonal {
	if v == IdxA || v == IdxC {
		return diagonalAC
	}

	return diagonalBD
}

// kiteAxisPattern reports whether the equal-side set contains the two
// adjacent equal pairs of a kite symmetric about the given diagonal.
//
// An axis through B and D swaps A with C, mapping AB onto CB and
// AD onto CD: the pattern is AB=BC and CD=DA. An axis through A and C
// swaps B with D: BC=CD and DA=AB.
func kiteAxisPattern(res Result, axis diagonal) bool {
	if axis == diagonalBD {
		return containsSidePair(res.EqualSides, SidesABBC) &&
			containsSidePair(res.EqualSides, SidesCDDA)
	}

	return containsSidePair(res.EqualSides, SidesBCCD) &&
		containsSidePair(res.EqualSides, SidesABDA)
}

// reflexVertex returns the index of the reflex corner, if any.
func reflexVertex(f Facts) (int, bool) {
	for i := 0; i < 4; i++ {
		if f.Angles[i] > math.Pi {
			return i, true
		}
	}

	return 0, false
}

// allRightAngles reports whether all four angles are within StaticAngle
// of π/2.
func allRightAngles(f Facts, tol tolerance.Config) bool {
	for i := 0; i < 4; i++ {
		if !tol.AngleIs(f.Angles[i], math.Pi/2) {
			return false
		}
	}

	return true
}

// allSidesEqual reports whether every pair of side lengths compares
// equal within InterLength. All-pairs equality is equivalent to the
// spread max−min lying inside the open interval.
func allSidesEqual(f Facts, tol tolerance.Config) bool {
	lo, hi := f.Lengths[0], f.Lengths[0]
	for i := 1; i < 4; i++ {
		lo = math.Min(lo, f.Lengths[i])
		hi = math.Max(hi, f.Lengths[i])
	}

	return tol.LengthsEqual(lo, hi)
}

// parallelSides collects the opposite pairs flagged parallel, in
// ascending SidePair order.
func parallelSides(f Facts) []SidePair {
	var out []SidePair
	if f.ParallelABCD {
		out = append(out, SidesABCD)
	}
	if f.ParallelBCDA {
		out = append(out, SidesBCDA)
	}

	return out
}

// equalSides runs the all-pairs length comparison over the six side
// pairs.
func equalSides(f Facts, tol tolerance.Config) []SidePair {
	var out []SidePair
	for p := SidesABBC; p <= SidesCDDA; p++ {
		i, j := p.Indexes()
		if tol.LengthsEqual(f.Lengths[i], f.Lengths[j]) {
			out = append(out, p)
		}
	}

	return out
}

// equalAngles runs the all-pairs angle comparison over the six vertex
// pairs.
func equalAngles(f Facts, tol tolerance.Config) []VertexPair {
	var out []VertexPair
	for p := VerticesAB; p <= VerticesCD; p++ {
		i, j := p.Indexes()
		if tol.AnglesEqual(f.Angles[i], f.Angles[j]) {
			out = append(out, p)
		}
	}

	return out
}

// containsSidePair reports membership in an ascending pair slice.
func containsSidePair(set []SidePair, p SidePair) bool {
	for _, q := range set {
		if q == p {
			return true
		}
	}

	return false
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
