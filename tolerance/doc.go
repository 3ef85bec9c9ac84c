// Package tolerance defines the named comparison intervals used by the
// quadrilateral engine, because user input and floating-point geometry
// never produce perfectly exact relationships.
//
// 🚀 What is tolerance?
//
//	Four independently configurable scalar intervals:
//	  • StaticAngle   — tightest; an angle against a fixed constant
//	    (π for "flat", π/2 for "right angle")
//	  • InterAngle    — two different vertices' angles against each other
//	  • InterLength   — two different sides' lengths against each other
//	  • ParallelAngle — the parallel-pair test only; usually wider than
//	    InterAngle so "parallel enough" is easier to achieve than
//	    "exactly equal angles" (a deliberate usability relaxation)
//
// ✨ Key guarantees:
//
//   - Every comparison is the strict open interval |a−b| < tol, never ≤,
//     matching the transitive behavior expected by the classifier
//   - All values are validated non-negative
//   - Widening a value can only make more pairs compare equal, never
//     fewer (monotone in tolerance)
//
// ⚙️ Usage:
//
//	import "github.com/shapemodel/quadshape/tolerance"
//
//	cfg, err := tolerance.New(
//	  tolerance.WithInterAngle(0.02),
//	  tolerance.WithParallelAngle(0.05),
//	)
//
// Runtime widening for coarse input devices (touch, external hardware):
//
//	wide := cfg.Widened(2) // every interval doubled
package tolerance
