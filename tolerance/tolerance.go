package tolerance

import (
	"errors"
	"math"
)

// ErrNegativeTolerance indicates a tolerance value below zero.
var ErrNegativeTolerance = errors.New("tolerance: values must be >= 0")

// Default interval widths, in radians for the angular values and in
// model coordinate units for InterLength. Chosen so that keyboard-grid
// input lands comfortably inside each interval while visibly distinct
// shapes stay outside it.
const (
	// DefaultStaticAngle is ~0.5° — an angle against a fixed constant.
	DefaultStaticAngle = 0.009

	// DefaultInterAngle is ~1° — two vertices' angles against each other.
	DefaultInterAngle = 0.017

	// DefaultInterLength compares two side lengths, in model units.
	DefaultInterLength = 0.005

	// DefaultParallelAngle is ~2° — wider than DefaultInterAngle so the
	// parallel relation is easier to hit than angle equality.
	DefaultParallelAngle = 0.035
)

// Config holds the four named tolerance intervals.
//
// The relationship ParallelAngle >= InterAngle is expected by the
// embedding application but not mechanically enforced here.
type Config struct {
	// StaticAngle tests an angle against a fixed constant (π, π/2).
	StaticAngle float64

	// InterAngle tests whether two different vertices' angles are equal.
	InterAngle float64

	// InterLength tests whether two different sides' lengths are equal.
	InterLength float64

	// ParallelAngle is used only by the parallel-pair test.
	ParallelAngle float64
}

// Option adjusts a single interval before validation.
type Option func(*Config)

// WithStaticAngle overrides the static-angle interval.
func WithStaticAngle(v float64) Option {
	return func(c *Config) { c.StaticAngle = v }
}

// WithInterAngle overrides the inter-vertex angle interval.
func WithInterAngle(v float64) Option {
	return func(c *Config) { c.InterAngle = v }
}

// WithInterLength overrides the inter-side length interval.
func WithInterLength(v float64) Option {
	return func(c *Config) { c.InterLength = v }
}

// WithParallelAngle overrides the parallel-pair interval.
func WithParallelAngle(v float64) Option {
	return func(c *Config) { c.ParallelAngle = v }
}

// Default returns the standard interval set.
func Default() Config {
	return Config{
		StaticAngle:   DefaultStaticAngle,
		InterAngle:    DefaultInterAngle,
		InterLength:   DefaultInterLength,
		ParallelAngle: DefaultParallelAngle,
	}
}

// New builds a Config from the defaults plus the given options and
// validates it.
// Complexity: O(len(opts))
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports ErrNegativeTolerance if any interval is below zero.
func (c Config) Validate() error {
	if c.StaticAngle < 0 || c.InterAngle < 0 || c.InterLength < 0 || c.ParallelAngle < 0 {
		return ErrNegativeTolerance
	}

	return nil
}

// Widened returns a copy with every interval multiplied by factor.
// Factors above 1 relax the engine for coarse input devices; the
// monotonicity guarantee means relaxing can only add equal/parallel
// relations, never remove them.
func (c Config) Widened(factor float64) Config {
	return Config{
		StaticAngle:   c.StaticAngle * factor,
		InterAngle:    c.InterAngle * factor,
		InterLength:   c.InterLength * factor,
		ParallelAngle: c.ParallelAngle * factor,
	}
}

// AngleIs reports whether angle matches the fixed target constant
// within StaticAngle. The interval is strictly open: |a−t| < tol.
func (c Config) AngleIs(angle, target float64) bool {
	return math.Abs(angle-target) < c.StaticAngle
}

// AnglesEqual reports whether two vertices' interior angles are equal
// within InterAngle.
func (c Config) AnglesEqual(a1, a2 float64) bool {
	return math.Abs(a1-a2) < c.InterAngle
}

// LengthsEqual reports whether two sides' lengths are equal within
// InterLength.
func (c Config) LengthsEqual(l1, l2 float64) bool {
	return math.Abs(l1-l2) < c.InterLength
}

// Parallel reports whether two opposite sides are parallel, given the
// two interior angles at the ends of the side connecting them: the
// sides are parallel iff those co-interior angles sum to π within
// ParallelAngle.
func (c Config) Parallel(a1, a2 float64) bool {
	return math.Abs(a1+a2-math.Pi) < c.ParallelAngle
}
