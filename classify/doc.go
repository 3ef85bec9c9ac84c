// Package classify names a quadrilateral from its derived geometric
// facts: four interior angles, four side lengths, and the two opposite
// side-pair parallel results.
//
// 🚀 What is classify?
//
//	A pure, total decision procedure into a closed set of shapes:
//	Square, Rectangle, Rhombus, Parallelogram, Trapezoid,
//	IsoscelesTrapezoid, Kite, Dart, ConcaveQuadrilateral,
//	ConvexQuadrilateral, Triangle (a flat-corner degenerate).
//
// ✨ Key guarantees:
//
//   - Totality & exclusivity: every valid fact set maps to exactly one
//     NamedShape — rules are evaluated in a strict priority order and
//     the first match wins, so overlapping predicates (a square is also
//     a rhombus, a parallelogram, …) never produce two answers
//   - All comparisons go through tolerance.Config open intervals
//   - Besides the shape tag, the result carries the full relation sets:
//     parallel side pairs, equal-length side pairs, equal-angle vertex
//     pairs — for describers and other consumers
//
// Rule order (first match wins):
//
//	 1. any flat corner (≈π)                   → Triangle
//	 2. a reflex corner (>π): kite pattern
//	    about the reflex diagonal?             → Dart : ConcaveQuadrilateral
//	 3. all right angles: all sides equal?     → Square : Rectangle
//	 4. both pairs parallel: all sides equal?  → Rhombus : Parallelogram
//	 5. one pair parallel: other pair equal?   → IsoscelesTrapezoid : Trapezoid
//	 6. two adjacent equal pairs (kite axis)   → Kite
//	 7. otherwise                              → ConvexQuadrilateral
//
// ⚙️ Usage:
//
//	import "github.com/shapemodel/quadshape/classify"
//
//	res, err := classify.Classify(classify.Facts{
//	  Angles:       angles,  // A, B, C, D — radians, reflex-aware
//	  Lengths:      lengths, // AB, BC, CD, DA
//	  ParallelABCD: p1,
//	  ParallelBCDA: p2,
//	}, tolerance.Default())
//	fmt.Println(res.Shape) // e.g. Square
//
// Vertices are indexed A=0, B=1, C=2, D=3 and sides AB=0, BC=1, CD=2,
// DA=3 throughout; the quad package owns the labelled identity types.
package classify
