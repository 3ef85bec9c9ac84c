package quad

import "errors"

var (
	// ErrCrossedSides indicates a proposed configuration in which two
	// non-adjacent sides cross (a self-intersecting quadrilateral).
	ErrCrossedSides = errors.New("quad: non-adjacent sides cross")

	// ErrCoincidentVertices indicates two vertices closer together than
	// MinVertexSeparation.
	ErrCoincidentVertices = errors.New("quad: vertices coincide")

	// ErrUnknownVertex indicates an update keyed by an invalid label.
	ErrUnknownVertex = errors.New("quad: unknown vertex label")

	// ErrNonFinitePosition indicates a NaN or infinite coordinate.
	ErrNonFinitePosition = errors.New("quad: position is not finite")
)
