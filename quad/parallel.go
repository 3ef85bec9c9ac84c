package quad

import "github.com/sirupsen/logrus"

// ParallelPair checks one opposite side pair for parallelism. The Model
// owns one instance per pair: AB↔CD and BC↔DA.
//
// AreParallel is the authoritative query and recomputes from the
// current vertex angles on every call. DebugParallel is a diagnostic
// flag refreshed once per successful batch; it can hold a stale or
// contradictory value while a multi-vertex batch is in flight and must
// never feed the classifier or other correctness-sensitive consumers.
type ParallelPair struct {
	m     *Model
	sides [2]SideLabel

	// conn holds the two vertices at the ends of the canonical
	// connecting side, picked from the pair identity rather than the
	// stored order, so swapping the stored sides cannot change the
	// result.
	conn [2]VertexLabel

	debug bool
}

// newParallelPair wires a checker for an opposite pair. Two opposite
// sides s and s+2 are connected by side s+1, whose endpoints carry the
// co-interior angles.
func newParallelPair(m *Model, a, b SideLabel) *ParallelPair {
	lo := a
	if b < lo {
		lo = b
	}

	return &ParallelPair{
		m:     m,
		sides: [2]SideLabel{a, b},
		conn:  [2]VertexLabel{VertexLabel(lo + 1), VertexLabel((lo + 2) % 4)},
	}
}

// Sides returns the pair in stored order.
func (p *ParallelPair) Sides() (SideLabel, SideLabel) {
	return p.sides[0], p.sides[1]
}

// AreParallel recomputes the authoritative parallel result: the two
// sides are parallel iff the interior angles at the ends of the
// connecting side sum to π within ParallelAngle.
//
// Panics if either angle is stale — the Model sequences its batches so
// that cannot happen from outside; hitting the panic means a bug inside
// this package.
func (p *ParallelPair) AreParallel() bool {
	a1, ok1 := p.m.vertices[p.conn[0]].Angle()
	a2, ok2 := p.m.vertices[p.conn[1]].Angle()
	if !ok1 || !ok2 {
		panic("quad: parallel query before batch recompute completed")
	}

	return p.m.tol.Parallel(a1, a2)
}

// DebugParallel returns the diagnostic flag as of the last successful
// batch. Telemetry only.
func (p *ParallelPair) DebugParallel() bool { return p.debug }

// refreshDebug recomputes the diagnostic flag after a batch and logs
// flips for telemetry.
func (p *ParallelPair) refreshDebug() {
	was := p.debug
	p.debug = p.AreParallel()
	if was != p.debug {
		p.m.Log.WithFields(logrus.Fields{
			"pair":     p.sides[0].String() + "/" + p.sides[1].String(),
			"parallel": p.debug,
		}).Debug("parallel diagnostic flag flipped")
	}
}
