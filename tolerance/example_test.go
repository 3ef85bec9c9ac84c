// File: tolerance/example_test.go
package tolerance_test

import (
	"fmt"
	"math"

	"github.com/shapemodel/quadshape/tolerance"
)

// ExampleConfig_Parallel demonstrates the co-interior angle parallel
// test: two opposite sides are parallel when the angles at the ends of
// the connecting side sum to π within ParallelAngle.
func ExampleConfig_Parallel() {
	cfg := tolerance.Default()

	fmt.Println("rectangle corners:", cfg.Parallel(math.Pi/2, math.Pi/2))
	fmt.Println("trapezoid legs:   ", cfg.Parallel(2*math.Pi/3, math.Pi/3))
	fmt.Println("skewed corners:   ", cfg.Parallel(math.Pi/2, math.Pi/3))

	// Output:
	// rectangle corners: true
	// trapezoid legs:    true
	// skewed corners:    false
}

// ExampleConfig_Widened demonstrates relaxing every interval for a
// coarse input device.
func ExampleConfig_Widened() {
	cfg := tolerance.Default()
	wide := cfg.Widened(2)

	nearlyEqual := 1.0 + 1.5*tolerance.DefaultInterAngle
	fmt.Println("standard:", cfg.AnglesEqual(1.0, nearlyEqual))
	fmt.Println("widened: ", wide.AnglesEqual(1.0, nearlyEqual))

	// Output:
	// standard: false
	// widened:  true
}
