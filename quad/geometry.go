package quad

import (
	"math"

	"github.com/ctessum/geom"
)

// MinVertexSeparation is the closest two vertices may sit before the
// configuration counts as coincident. Exact equality is meaningless on
// float input; callers wanting a wider hit area check upstream.
const MinVertexSeparation = 1e-9

// vector helpers over geom.Point.

func sub(a, b geom.Point) geom.Point {
	return geom.Point{X: a.X - b.X, Y: a.Y - b.Y}
}

func dot(a, b geom.Point) float64 { return a.X*b.X + a.Y*b.Y }

func cross(a, b geom.Point) float64 { return a.X*b.Y - a.Y*b.X }

func norm(a geom.Point) float64 { return math.Hypot(a.X, a.Y) }

func finitePoint(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// signedArea is the shoelace formula over the four vertices in drawing
// order: positive for counterclockwise winding.
func signedArea(ps [4]geom.Point) float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		sum += ps[i].X*ps[j].Y - ps[j].X*ps[i].Y
	}

	return sum / 2
}

// interiorAngles computes the reflex-aware interior angle at each
// vertex from the now-consistent position set: the law of cosines on
// the two adjacent side vectors gives the magnitude in [0,π], and the
// cross-product sign against the polygon winding decides whether the
// corner is reflex (interior = 2π − magnitude).
//
// The positions must be simple (non-crossed) and pairwise separated;
// the Model guarantees both before calling.
// Complexity: O(1)
func interiorAngles(ps [4]geom.Point) [4]float64 {
	orient := 1.0
	if signedArea(ps) < 0 {
		orient = -1
	}

	var out [4]float64
	for i := 0; i < 4; i++ {
		v := ps[i]
		u := sub(ps[(i+3)%4], v) // toward the previous vertex
		w := sub(ps[(i+1)%4], v) // toward the next vertex

		cos := dot(u, w) / (norm(u) * norm(w))
		cos = math.Max(-1, math.Min(1, cos))
		a := math.Acos(cos)
		if orient*cross(u, w) > 0 {
			a = 2*math.Pi - a
		}
		out[i] = a
	}

	return out
}

// segmentsProperlyCross reports whether segment ab crosses segment cd
// at a point interior to both, or the two segments are collinear with
// overlapping interiors. Touching at an endpoint does not count.
//
// Properties (matching the usual edge-crossing sign-product test):
//
//	(1) segmentsProperlyCross(b,a,c,d) == segmentsProperlyCross(a,b,c,d)
//	(2) segmentsProperlyCross(c,d,a,b) == segmentsProperlyCross(a,b,c,d)
func segmentsProperlyCross(a, b, c, d geom.Point) bool {
	d1 := cross(sub(b, a), sub(c, a))
	d2 := cross(sub(b, a), sub(d, a))
	d3 := cross(sub(d, c), sub(a, c))
	d4 := cross(sub(d, c), sub(b, c))

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	// Collinear overlap: all four triples degenerate, so compare the
	// 1D projections on the dominant axis.
	if d1 == 0 && d2 == 0 && d3 == 0 && d4 == 0 {
		if math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y) {
			return overlap1D(a.X, b.X, c.X, d.X)
		}

		return overlap1D(a.Y, b.Y, c.Y, d.Y)
	}

	return false
}

// overlap1D reports a strictly interior overlap of intervals [p,q] and
// [r,s] given in any order.
func overlap1D(p, q, r, s float64) bool {
	lo1, hi1 := math.Min(p, q), math.Max(p, q)
	lo2, hi2 := math.Min(r, s), math.Max(r, s)

	return math.Max(lo1, lo2) < math.Min(hi1, hi2)
}

// QuadrilateralAllowed is the pure validity rule for a candidate
// position set: every coordinate finite, no two vertices within
// MinVertexSeparation, and no two non-adjacent sides crossing.
// Bounds containment is a caller-side concern and is not checked here.
//
// The nil return means allowed; otherwise one of ErrNonFinitePosition,
// ErrCoincidentVertices, ErrCrossedSides.
// Complexity: O(1)
func QuadrilateralAllowed(ps [4]geom.Point) error {
	for i := 0; i < 4; i++ {
		if !finitePoint(ps[i]) {
			return ErrNonFinitePosition
		}
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if norm(sub(ps[i], ps[j])) < MinVertexSeparation {
				return ErrCoincidentVertices
			}
		}
	}
	if !QuadrilateralNotCrossed(ps) {
		return ErrCrossedSides
	}

	return nil
}

// QuadrilateralNotCrossed reports whether neither opposite side pair
// crosses. Callers use it to distinguish "blocked by shape" from
// "blocked by bounds" for user feedback; it never mutates anything.
func QuadrilateralNotCrossed(ps [4]geom.Point) bool {
	return !segmentsProperlyCross(ps[0], ps[1], ps[2], ps[3]) &&
		!segmentsProperlyCross(ps[1], ps[2], ps[3], ps[0])
}
