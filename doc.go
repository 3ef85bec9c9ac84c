// Package quadshape is a geometric constraint-and-classification engine
// for a draggable four-vertex planar polygon.
//
// 🚀 What is quadshape?
//
//	Given four vertex positions it derives every geometric fact needed to
//	describe the shape — side lengths, interior angles, parallel side
//	pairs, equal side/angle pairs — and classifies the configuration into
//	exactly one named shape (square, rectangle, rhombus, parallelogram,
//	trapezoid, isosceles trapezoid, kite, dart, concave, convex, or a
//	triangle-degenerate corner). All comparisons use configurable
//	tolerance intervals, never exact equality.
//
// ✨ Why choose quadshape?
//
//   - Batched, all-or-nothing vertex updates — derived state is never
//     observable half-recomputed during a multi-vertex move
//   - Total, mutually-exclusive classification via a strict rule order
//   - Pure synchronous computation — no goroutines, no I/O
//   - Speculative what-if checks on scratch copies, never on live state
//
// Under the hood, everything is organized under three subpackages:
//
//	tolerance/ — the four named tolerance values and their comparisons
//	classify/  — the NamedShape decision procedure over scalar facts
//	quad/      — vertices, sides, parallel-pair checkers, the Model,
//	             validity checks and immutable snapshots
//
// Quick ASCII example:
//
//	    D───C
//	    │   │
//	    A───B
//
//	four labelled corners, four labelled sides (AB, BC, CD, DA),
//	classified SQUARE when all angles are right and all sides equal.
//
// A small CLI lives in cmd/quadshape for inspecting configurations:
//
//	quadshape classify --a 0,0 --b 1,0 --c 1,1 --d 0,1
package quadshape
