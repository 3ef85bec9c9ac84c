// File: quad/export_test.go
// Exposes internals needed by the white-box symmetry and geometry
// tests without widening the public API.
package quad

import "github.com/ctessum/geom"

// NewParallelPairForTest builds a checker with an explicit stored side
// order so tests can verify that the order cannot affect the result.
func NewParallelPairForTest(m *Model, a, b SideLabel) *ParallelPair {
	return newParallelPair(m, a, b)
}

// SegmentsProperlyCrossForTest exposes the crossing predicate.
func SegmentsProperlyCrossForTest(a, b, c, d geom.Point) bool {
	return segmentsProperlyCross(a, b, c, d)
}

// InteriorAnglesForTest exposes the reflex-aware angle computation.
func InteriorAnglesForTest(ps [4]geom.Point) [4]float64 {
	return interiorAngles(ps)
}

// SignedAreaForTest exposes the shoelace sum.
func SignedAreaForTest(ps [4]geom.Point) float64 {
	return signedArea(ps)
}
