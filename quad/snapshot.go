package quad

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/shapemodel/quadshape/classify"
	"github.com/shapemodel/quadshape/tolerance"
)

// Snapshot is an immutable value copy of the model's derived state at
// one instant: per-vertex angles, per-side lengths, the authoritative
// parallel results, the shape tag, and the enclosed area. Describers
// diff consecutive snapshots to decide what changed since the last
// narration; a snapshot computes nothing beyond the copy itself.
type Snapshot struct {
	// Angles holds the interior angles in A,B,C,D order, radians.
	Angles [4]float64

	// Lengths holds the side lengths in AB,BC,CD,DA order.
	Lengths [4]float64

	// ParallelABCD and ParallelBCDA are the authoritative parallel
	// results at snapshot time.
	ParallelABCD bool
	ParallelBCDA bool

	// Shape is the classification tag at snapshot time.
	Shape classify.NamedShape

	// Area is the enclosed area by the shoelace formula.
	Area float64
}

// Snapshot copies the current derived state. Call only between batches;
// inside a batch the derived state is undefined by contract.
// Complexity: O(1)
func (m *Model) Snapshot() Snapshot {
	var s Snapshot
	for i := 0; i < 4; i++ {
		a, ok := m.vertices[i].Angle()
		if !ok {
			panic("quad: snapshot before batch recompute completed")
		}
		s.Angles[i] = a
		s.Lengths[i] = m.sides[i].length
	}
	s.ParallelABCD = m.pairs[0].AreParallel()
	s.ParallelBCDA = m.pairs[1].AreParallel()
	s.Shape = m.result.Shape

	ps := m.Positions()
	ring := []geom.Point{ps[0], ps[1], ps[2], ps[3], ps[0]}
	s.Area = math.Abs(geom.Polygon{ring}.Area())

	return s
}

// Delta reports which derived quantities moved beyond tolerance between
// two snapshots.
type Delta struct {
	ShapeChanged    bool
	AreaChanged     bool
	AngleChanged    [4]bool
	LengthChanged   [4]bool
	ParallelChanged [2]bool
}

// Any reports whether anything changed.
func (d Delta) Any() bool {
	if d.ShapeChanged || d.AreaChanged || d.ParallelChanged[0] || d.ParallelChanged[1] {
		return true
	}
	for i := 0; i < 4; i++ {
		if d.AngleChanged[i] || d.LengthChanged[i] {
			return true
		}
	}

	return false
}

// Diff compares the snapshot against an earlier one using the given
// tolerance intervals: angles through InterAngle, lengths through
// InterLength. Area is compared through InterLength as well; consumers
// needing finer area resolution diff it themselves.
func (s Snapshot) Diff(prev Snapshot, tol tolerance.Config) Delta {
	var d Delta
	d.ShapeChanged = s.Shape != prev.Shape
	d.AreaChanged = !tol.LengthsEqual(s.Area, prev.Area)
	for i := 0; i < 4; i++ {
		d.AngleChanged[i] = !tol.AnglesEqual(s.Angles[i], prev.Angles[i])
		d.LengthChanged[i] = !tol.LengthsEqual(s.Lengths[i], prev.Lengths[i])
	}
	d.ParallelChanged[0] = s.ParallelABCD != prev.ParallelABCD
	d.ParallelChanged[1] = s.ParallelBCDA != prev.ParallelBCDA

	return d
}
