// Package quad owns the quadrilateral aggregate: four labelled
// vertices, four labelled sides, two opposite-pair parallel checkers,
// the batched-update Model, validity checks, and immutable snapshots.
//
// 🚀 What is quad?
//
//	The stateful heart of the engine. External input (drag handlers,
//	devices, reset) proposes new vertex positions; the Model validates
//	and applies them as one atomic batch, recomputes every derived
//	value, reclassifies the shape, and notifies its subscribers — all
//	synchronously on the caller's goroutine.
//
// ✨ Key guarantees:
//
//   - Batch ordering: every position write lands before any derived
//     value (angle, length, parallel state, classification) is
//     recomputed. Angle is a function of three points, so per-vertex
//     recomputes during a multi-vertex move would be transiently wrong;
//     batching removes that bug class by construction
//   - All-or-nothing: a rejected update (crossed sides, coincident
//     vertices) leaves the model bit-identical to its pre-call state
//   - Exactly one change notification per successful update, zero per
//     rejection
//   - Speculative what-if checks run on Clone() scratch copies or on
//     the pure QuadrilateralAllowed/QuadrilateralNotCrossed functions,
//     never against live state
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/ctessum/geom"
//
//	  "github.com/shapemodel/quadshape/quad"
//	)
//
//	m, err := quad.New()
//	m.OnChange(func(m *quad.Model) {
//	  fmt.Println("now a", m.Shape())
//	})
//	err = m.SetVertexPositions(map[quad.VertexLabel]geom.Point{
//	  quad.VertexC: {X: 3, Y: 2},
//	})
//
// The diagnostic DebugParallel flag on each checker is refreshed only
// after successful batches and exists for telemetry; correctness-
// sensitive consumers must call AreParallel instead.
package quad
