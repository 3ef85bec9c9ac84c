package quad

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/shapemodel/quadshape/classify"
	"github.com/shapemodel/quadshape/tolerance"
)

// Model is the quadrilateral aggregate: it owns the four vertices, the
// four sides, and the two parallel-pair checkers, applies position
// updates as atomic batches, and keeps the derived state and the
// classification consistent after every batch.
//
// All work happens synchronously on the caller's goroutine; there is no
// background scheduling and no suspension point inside a batch. The
// Model is not safe for concurrent use.
type Model struct {
	vertices [4]*Vertex
	sides    [4]*Side
	pairs    [2]*ParallelPair

	tol     tolerance.Config
	result  classify.Result
	initial [4]geom.Point
	subs    []func(*Model)

	// Log receives diagnostic entries: rejected updates, parallel flag
	// flips, angle-sum drift. Nothing is logged on the happy path.
	Log logrus.FieldLogger
}

// Option configures a Model before its first recompute.
type Option func(*Model)

// WithTolerances overrides the default tolerance intervals.
func WithTolerances(cfg tolerance.Config) Option {
	return func(m *Model) { m.tol = cfg }
}

// WithLogger overrides the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Model) { m.Log = l }
}

// WithInitialPositions overrides the starting configuration, in A,B,C,D
// order. The positions are also what Reset restores.
func WithInitialPositions(ps [4]geom.Point) Option {
	return func(m *Model) { m.initial = ps }
}

// DefaultPositions is the starting configuration when none is given:
// an axis-aligned square of side 2.
func DefaultPositions() [4]geom.Point {
	return [4]geom.Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}
}

// New builds a Model, validates the tolerance set and the initial
// configuration, and runs the first recompute so that every derived
// value is defined before the constructor returns.
// Complexity: O(1)
func New(opts ...Option) (*Model, error) {
	m := &Model{
		tol:     tolerance.Default(),
		initial: DefaultPositions(),
		Log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.tol.Validate(); err != nil {
		return nil, err
	}
	if err := QuadrilateralAllowed(m.initial); err != nil {
		return nil, fmt.Errorf("quad: initial positions: %w", err)
	}

	for i := 0; i < 4; i++ {
		m.vertices[i] = &Vertex{label: VertexLabel(i), pos: m.initial[i]}
	}
	for i := 0; i < 4; i++ {
		m.sides[i] = &Side{
			label: SideLabel(i),
			v1:    m.vertices[i],
			v2:    m.vertices[(i+1)%4],
		}
	}
	m.pairs[0] = newParallelPair(m, SideAB, SideCD)
	m.pairs[1] = newParallelPair(m, SideBC, SideDA)

	m.recompute()

	return m, nil
}

// SetVertexPositions applies one logical user action as a single batch:
// every write in updates lands before any derived value is recomputed,
// and a disallowed configuration (crossed non-adjacent sides, vertices
// within MinVertexSeparation) rejects the whole batch with the model
// left bit-identical to its pre-call state.
//
// A nil return means the batch was applied, every derived value is
// fresh, and subscribers were notified exactly once. Rejections return
// ErrCrossedSides, ErrCoincidentVertices, ErrUnknownVertex, or
// ErrNonFinitePosition and fire no notification.
// Complexity: O(len(updates)) + O(1) recompute.
func (m *Model) SetVertexPositions(updates map[VertexLabel]geom.Point) error {
	candidate, err := m.PositionsWith(updates)
	if err != nil {
		return err
	}
	if err = QuadrilateralAllowed(candidate); err != nil {
		m.Log.WithFields(logrus.Fields{
			"updates": len(updates),
			"reason":  err,
		}).Debug("rejected vertex update batch")

		return err
	}

	// All writes first; angles go stale until recompute finishes.
	for i := 0; i < 4; i++ {
		m.vertices[i].setPosition(candidate[i])
	}
	m.recompute()
	m.notify()

	return nil
}

// PositionsWith returns the candidate position set that applying
// updates would produce, without mutating the model. Callers pair it
// with QuadrilateralAllowed or QuadrilateralNotCrossed to test a
// speculative move — e.g. a side drag moving two vertices together —
// before committing it.
func (m *Model) PositionsWith(updates map[VertexLabel]geom.Point) ([4]geom.Point, error) {
	candidate := m.Positions()
	for label, p := range updates {
		if !label.valid() {
			return candidate, fmt.Errorf("%w: %d", ErrUnknownVertex, label)
		}
		if !finitePoint(p) {
			return candidate, fmt.Errorf("%w: vertex %s", ErrNonFinitePosition, label)
		}
		candidate[label] = p
	}

	return candidate, nil
}

// Reset restores the construction-time positions as one batch.
func (m *Model) Reset() error {
	return m.SetVertexPositions(map[VertexLabel]geom.Point{
		VertexA: m.initial[0],
		VertexB: m.initial[1],
		VertexC: m.initial[2],
		VertexD: m.initial[3],
	})
}

// SetTolerances swaps the tolerance intervals at runtime — the
// embedding application widens them for coarse input devices — then
// reclassifies and notifies once, since the parallel and equality
// relations depend on the intervals.
func (m *Model) SetTolerances(cfg tolerance.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.tol = cfg
	m.recompute()
	m.notify()

	return nil
}

// OnChange registers fn to run after every successful batch, in
// registration order, on the caller's goroutine.
func (m *Model) OnChange(fn func(*Model)) {
	m.subs = append(m.subs, fn)
}

// Clone returns an independent scratch copy sharing no mutable state
// with the receiver: same positions, tolerances, and logger, fresh
// vertices/sides/checkers, no subscribers. Speculative what-if checks
// run on clones and discard them; the live model is never mutated
// speculatively.
// Complexity: O(1)
func (m *Model) Clone() *Model {
	clone := &Model{
		tol:     m.tol,
		initial: m.initial,
		Log:     m.Log,
	}
	for i := 0; i < 4; i++ {
		clone.vertices[i] = &Vertex{label: VertexLabel(i), pos: m.vertices[i].pos}
	}
	for i := 0; i < 4; i++ {
		clone.sides[i] = &Side{
			label: SideLabel(i),
			v1:    clone.vertices[i],
			v2:    clone.vertices[(i+1)%4],
		}
	}
	clone.pairs[0] = newParallelPair(clone, SideAB, SideCD)
	clone.pairs[1] = newParallelPair(clone, SideBC, SideDA)
	clone.recompute()

	return clone
}

// Vertex returns the corner with the given label, or nil for an invalid
// label. The returned pointer stays valid for the life of the model.
func (m *Model) Vertex(l VertexLabel) *Vertex {
	if !l.valid() {
		return nil
	}

	return m.vertices[l]
}

// Side returns the edge with the given label, or nil for an invalid
// label.
func (m *Model) Side(l SideLabel) *Side {
	if l > SideDA {
		return nil
	}

	return m.sides[l]
}

// ParallelPairABCD returns the checker for the opposite pair AB↔CD.
func (m *Model) ParallelPairABCD() *ParallelPair { return m.pairs[0] }

// ParallelPairBCDA returns the checker for the opposite pair BC↔DA.
func (m *Model) ParallelPairBCDA() *ParallelPair { return m.pairs[1] }

// Shape returns the current classification tag.
func (m *Model) Shape() classify.NamedShape { return m.result.Shape }

// Classification returns a copy of the full classification record from
// the last recompute: the shape tag plus the parallel, equal-side, and
// equal-angle relation sets.
func (m *Model) Classification() classify.Result {
	out := m.result
	out.ParallelSides = append([]classify.SidePair(nil), m.result.ParallelSides...)
	out.EqualSides = append([]classify.SidePair(nil), m.result.EqualSides...)
	out.EqualAngles = append([]classify.VertexPair(nil), m.result.EqualAngles...)

	return out
}

// Positions returns the four current vertex positions in A,B,C,D order.
func (m *Model) Positions() [4]geom.Point {
	var ps [4]geom.Point
	for i := 0; i < 4; i++ {
		ps[i] = m.vertices[i].pos
	}

	return ps
}

// Tolerances returns the active tolerance intervals.
func (m *Model) Tolerances() tolerance.Config { return m.tol }

// recompute rebuilds every derived value from the now-consistent
// position set, in the contract order: angles, then lengths, then the
// parallel checkers, then one classifier invocation.
func (m *Model) recompute() {
	angles := interiorAngles(m.Positions())
	for i := 0; i < 4; i++ {
		m.vertices[i].setAngle(angles[i])
	}
	var lengths [4]float64
	for i := 0; i < 4; i++ {
		m.sides[i].recomputeLength()
		lengths[i] = m.sides[i].length
	}

	facts := classify.Facts{
		Angles:       angles,
		Lengths:      lengths,
		ParallelABCD: m.pairs[0].AreParallel(),
		ParallelBCDA: m.pairs[1].AreParallel(),
	}
	res, err := classify.Classify(facts, m.tol)
	if err != nil {
		// Only reachable through a sequencing bug inside this package.
		panic(fmt.Sprintf("quad: classification with stale derived state: %v", err))
	}
	m.result = res

	m.pairs[0].refreshDebug()
	m.pairs[1].refreshDebug()

	// Convex interior angles must sum to 2π; drift beyond the combined
	// static interval indicates numerically hostile input worth a trace.
	if _, reflex := reflexAngle(angles); !reflex {
		if sum := floats.Sum(angles[:]); math.Abs(sum-2*math.Pi) >= 4*m.tol.StaticAngle {
			m.Log.WithFields(logrus.Fields{"sum": sum}).Warn("interior angle sum drift")
		}
	}
}

// reflexAngle returns the index of the first angle above π, if any.
func reflexAngle(angles [4]float64) (int, bool) {
	for i, a := range angles {
		if a > math.Pi {
			return i, true
		}
	}

	return 0, false
}

func (m *Model) notify() {
	for _, fn := range m.subs {
		fn(m)
	}
}
