// File: classify/example_test.go
package classify_test

import (
	"fmt"
	"math"

	"github.com/shapemodel/quadshape/classify"
	"github.com/shapemodel/quadshape/tolerance"
)

// ExampleClassify demonstrates naming a unit square from its derived
// facts and inspecting the relation sets.
// Scenario:
//
//   - Vertices (0,0),(1,0),(1,1),(0,1): all right angles, unit sides,
//     both opposite pairs parallel.
//
// Complexity: O(1)
func ExampleClassify() {
	facts := classify.Facts{
		Angles:       [4]float64{math.Pi / 2, math.Pi / 2, math.Pi / 2, math.Pi / 2},
		Lengths:      [4]float64{1, 1, 1, 1},
		ParallelABCD: true,
		ParallelBCDA: true,
	}

	res, _ := classify.Classify(facts, tolerance.Default())
	fmt.Println("shape:", res.Shape)
	fmt.Println("parallel pairs:", len(res.ParallelSides))
	fmt.Println("equal side pairs:", len(res.EqualSides))

	// Output:
	// shape: square
	// parallel pairs: 2
	// equal side pairs: 6
}

// ExampleClassify_priority demonstrates the rule ordering: a rhombus
// satisfies the two-parallel-pair predicate AND all-sides-equal, but a
// square additionally satisfies all-right-angles, which outranks both.
func ExampleClassify_priority() {
	rhombus := classify.Facts{
		Angles:       [4]float64{math.Pi / 3, 2 * math.Pi / 3, math.Pi / 3, 2 * math.Pi / 3},
		Lengths:      [4]float64{2, 2, 2, 2},
		ParallelABCD: true,
		ParallelBCDA: true,
	}
	square := rhombus
	square.Angles = [4]float64{math.Pi / 2, math.Pi / 2, math.Pi / 2, math.Pi / 2}

	r1, _ := classify.Classify(rhombus, tolerance.Default())
	r2, _ := classify.Classify(square, tolerance.Default())
	fmt.Println(r1.Shape)
	fmt.Println(r2.Shape)

	// Output:
	// rhombus
	// square
}
