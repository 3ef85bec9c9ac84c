package classify_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapemodel/quadshape/classify"
	"github.com/shapemodel/quadshape/tolerance"
)

const (
	deg45  = math.Pi / 4
	deg60  = math.Pi / 3
	deg90  = math.Pi / 2
	deg120 = 2 * math.Pi / 3
	deg135 = 3 * math.Pi / 4
)

// squareFacts models the exact unit square (0,0),(1,0),(1,1),(0,1).
func squareFacts() classify.Facts {
	return classify.Facts{
		Angles:       [4]float64{deg90, deg90, deg90, deg90},
		Lengths:      [4]float64{1, 1, 1, 1},
		ParallelABCD: true,
		ParallelBCDA: true,
	}
}

// TestClassify_Square — all sides length 1, all right angles, both
// pairs parallel.
func TestClassify_Square(t *testing.T) {
	res, err := classify.Classify(squareFacts(), tolerance.Default())
	require.NoError(t, err)

	assert.Equal(t, classify.Square, res.Shape)
	assert.Len(t, res.ParallelSides, 2)
	assert.Len(t, res.EqualSides, 6, "all six side pairs equal on a square")
	assert.Len(t, res.EqualAngles, 6, "all six vertex pairs equal on a square")
}

// TestClassify_Rectangle — (0,0),(2,0),(2,1),(0,1): right angles,
// sides not all equal.
func TestClassify_Rectangle(t *testing.T) {
	f := classify.Facts{
		Angles:       [4]float64{deg90, deg90, deg90, deg90},
		Lengths:      [4]float64{2, 1, 2, 1},
		ParallelABCD: true,
		ParallelBCDA: true,
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)

	assert.Equal(t, classify.Rectangle, res.Shape)
	assert.Contains(t, res.EqualSides, classify.SidesABCD)
	assert.Contains(t, res.EqualSides, classify.SidesBCDA)
	assert.NotContains(t, res.EqualSides, classify.SidesABBC)
}

// TestClassify_Rhombus — both pairs parallel, all sides equal, angles
// not right. Square must NOT win because rule 3 never fires.
func TestClassify_Rhombus(t *testing.T) {
	f := classify.Facts{
		Angles:       [4]float64{deg60, deg120, deg60, deg120},
		Lengths:      [4]float64{2, 2, 2, 2},
		ParallelABCD: true,
		ParallelBCDA: true,
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)
	assert.Equal(t, classify.Rhombus, res.Shape)
}

// TestClassify_Parallelogram — both pairs parallel, sides not all equal.
func TestClassify_Parallelogram(t *testing.T) {
	f := classify.Facts{
		Angles:       [4]float64{deg60, deg120, deg60, deg120},
		Lengths:      [4]float64{3, math.Sqrt(5), 3, math.Sqrt(5)},
		ParallelABCD: true,
		ParallelBCDA: true,
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)

	assert.Equal(t, classify.Parallelogram, res.Shape)
	assert.ElementsMatch(t,
		[]classify.VertexPair{classify.VerticesAC, classify.VerticesBD},
		res.EqualAngles)
}

// TestClassify_Trapezoid — the one-pair trapezoid (0,0),(4,0),(3,2),
// (2,2): AB∥CD, BC∦DA, and the non-parallel pair lengths unequal.
func TestClassify_Trapezoid(t *testing.T) {
	f := classify.Facts{
		Angles: [4]float64{
			deg45,                      // A
			math.Atan2(2, 1),           // B ≈ 63.43°
			math.Pi - math.Atan2(2, 1), // C ≈ 116.57°
			deg135,                     // D
		},
		Lengths:      [4]float64{4, math.Sqrt(5), 1, 2 * math.Sqrt2},
		ParallelABCD: true,
		ParallelBCDA: false,
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)

	assert.Equal(t, classify.Trapezoid, res.Shape)
	assert.Equal(t, []classify.SidePair{classify.SidesABCD}, res.ParallelSides)
}

// TestClassify_IsoscelesTrapezoid — one pair parallel, the other
// opposite pair equal in length: (0,0),(4,0),(3,2),(1,2).
func TestClassify_IsoscelesTrapezoid(t *testing.T) {
	legAngle := math.Atan2(2, 1) // ≈ 63.43°
	f := classify.Facts{
		Angles: [4]float64{
			legAngle, legAngle,
			math.Pi - legAngle, math.Pi - legAngle,
		},
		Lengths:      [4]float64{4, math.Sqrt(5), 2, math.Sqrt(5)},
		ParallelABCD: true,
		ParallelBCDA: false,
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)

	assert.Equal(t, classify.IsoscelesTrapezoid, res.Shape)
	assert.Contains(t, res.EqualSides, classify.SidesBCDA)
}

// TestClassify_Kite — no parallel pairs, two adjacent equal pairs about
// the A–C diagonal: (0,0),(2,2),(0,5),(-2,2).
func TestClassify_Kite(t *testing.T) {
	bAngle := math.Acos(-2 / (2 * math.Sqrt2 * math.Sqrt(13))) // ≈ 101.31°
	cAngle := math.Acos(5.0 / 13.0)                            // ≈ 67.38°
	f := classify.Facts{
		Angles:  [4]float64{deg90, bAngle, cAngle, bAngle},
		Lengths: [4]float64{2 * math.Sqrt2, math.Sqrt(13), math.Sqrt(13), 2 * math.Sqrt2},
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)

	assert.Equal(t, classify.Kite, res.Shape)
	assert.Empty(t, res.ParallelSides)
	assert.Contains(t, res.EqualSides, classify.SidesBCCD)
	assert.Contains(t, res.EqualSides, classify.SidesABDA)
}

// TestClassify_Dart — reflex corner at C with the kite pattern about
// the A–C diagonal: (0,0),(2,2),(0,1),(-2,2).
func TestClassify_Dart(t *testing.T) {
	wingAngle := math.Acos(6 / (2 * math.Sqrt2 * math.Sqrt(5))) // ≈ 18.43°
	reflex := 2*math.Pi - math.Acos(-3.0/5.0)                   // ≈ 233.13°
	f := classify.Facts{
		Angles:  [4]float64{deg90, wingAngle, reflex, wingAngle},
		Lengths: [4]float64{2 * math.Sqrt2, math.Sqrt(5), math.Sqrt(5), 2 * math.Sqrt2},
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)
	assert.Equal(t, classify.Dart, res.Shape)
}

// TestClassify_ConcaveQuadrilateral — reflex corner without the kite
// pattern about its diagonal.
func TestClassify_ConcaveQuadrilateral(t *testing.T) {
	f := classify.Facts{
		Angles:  [4]float64{1.1, 0.6, 3.9, 0.683185307179586},
		Lengths: [4]float64{3, 2.6926, 2.0616, 3},
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)
	assert.Equal(t, classify.ConcaveQuadrilateral, res.Shape)
}

// TestClassify_Triangle — one flat corner within StaticAngle of π wins
// over everything else.
func TestClassify_Triangle(t *testing.T) {
	f := classify.Facts{
		Angles:  [4]float64{math.Pi - 0.0001, 0.8, 1.5, math.Pi + 0.0001 - 2.3},
		Lengths: [4]float64{1, 2, 2, 1},
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)
	assert.Equal(t, classify.Triangle, res.Shape)
}

// TestClassify_TrianglePriority verifies rule 1 outranks the reflex
// family: a corner just past π but inside StaticAngle is a triangle,
// not a concave quadrilateral.
func TestClassify_TrianglePriority(t *testing.T) {
	f := classify.Facts{
		Angles:  [4]float64{0.9, 1.2, math.Pi + 0.005, 2*math.Pi - 0.9 - 1.2 - math.Pi - 0.005},
		Lengths: [4]float64{1, 1.5, 1.5, 1},
	}

	cfg, err := tolerance.New(tolerance.WithStaticAngle(0.01))
	require.NoError(t, err)

	res, err := classify.Classify(f, cfg)
	require.NoError(t, err)
	assert.Equal(t, classify.Triangle, res.Shape)
}

// TestClassify_ConvexFallback — no relation at all lands on the
// catch-all convex quadrilateral.
func TestClassify_ConvexFallback(t *testing.T) {
	f := classify.Facts{
		Angles:  [4]float64{1.4, 1.5, 1.66, 2*math.Pi - 1.4 - 1.5 - 1.66},
		Lengths: [4]float64{1, 2, 3, 4},
	}

	res, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)

	assert.Equal(t, classify.ConvexQuadrilateral, res.Shape)
	assert.Empty(t, res.ParallelSides)
	assert.Empty(t, res.EqualSides)
}

// TestClassify_IncompleteFacts surfaces mid-batch classification as a
// loud contract error.
func TestClassify_IncompleteFacts(t *testing.T) {
	f := squareFacts()
	f.Angles[2] = math.NaN()

	_, err := classify.Classify(f, tolerance.Default())
	assert.ErrorIs(t, err, classify.ErrIncompleteFacts)
}

// TestClassify_Totality fuzzes plausible fact sets and checks that the
// classifier always yields exactly one member of the closed enum.
func TestClassify_Totality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cfg := tolerance.Default()

	for i := 0; i < 2000; i++ {
		var f classify.Facts
		// Three free angles plus the 2π-sum remainder keeps the fact set
		// geometrically plausible, reflex corners included.
		f.Angles[0] = 0.2 + rng.Float64()*2.5
		f.Angles[1] = 0.2 + rng.Float64()*2.5
		f.Angles[2] = 0.2 + rng.Float64()*2.5
		f.Angles[3] = 2*math.Pi - f.Angles[0] - f.Angles[1] - f.Angles[2]
		if f.Angles[3] <= 0.05 {
			continue
		}
		for j := 0; j < 4; j++ {
			f.Lengths[j] = 0.5 + rng.Float64()*4
		}
		f.ParallelABCD = rng.Intn(2) == 0
		f.ParallelBCDA = rng.Intn(2) == 0

		res, err := classify.Classify(f, cfg)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Shape, classify.Triangle, "shape tag outside the closed enum")
	}
}

// TestClassify_ToleranceMonotonicity: widening every interval can only
// grow the relation sets and can never abandon a more specific shape
// for the convex fallback.
func TestClassify_ToleranceMonotonicity(t *testing.T) {
	f := classify.Facts{
		Angles: [4]float64{
			math.Atan2(2, 1), math.Atan2(2, 1),
			math.Pi - math.Atan2(2, 1), math.Pi - math.Atan2(2, 1),
		},
		Lengths:      [4]float64{4, math.Sqrt(5), 2, math.Sqrt(5) + 0.003},
		ParallelABCD: true,
	}

	narrow, err := classify.Classify(f, tolerance.Default())
	require.NoError(t, err)
	wide, err := classify.Classify(f, tolerance.Default().Widened(4))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(wide.EqualSides), len(narrow.EqualSides))
	assert.GreaterOrEqual(t, len(wide.EqualAngles), len(narrow.EqualAngles))
	for _, p := range narrow.EqualSides {
		assert.Contains(t, wide.EqualSides, p)
	}
	for _, p := range narrow.EqualAngles {
		assert.Contains(t, wide.EqualAngles, p)
	}
}

// TestNamedShape_String pins the human-readable names used by
// describers and the CLI.
func TestNamedShape_String(t *testing.T) {
	assert.Equal(t, "square", classify.Square.String())
	assert.Equal(t, "isosceles trapezoid", classify.IsoscelesTrapezoid.String())
	assert.Equal(t, "concave quadrilateral", classify.ConcaveQuadrilateral.String())
	assert.Equal(t, "unknown", classify.NamedShape(200).String())
}

// TestSidePair_Properties pins the pair metadata relied on elsewhere.
func TestSidePair_Properties(t *testing.T) {
	assert.True(t, classify.SidesABCD.Opposite())
	assert.True(t, classify.SidesBCDA.Opposite())
	assert.False(t, classify.SidesABBC.Opposite())

	i, j := classify.SidesBCDA.Indexes()
	assert.Equal(t, classify.IdxBC, i)
	assert.Equal(t, classify.IdxDA, j)
	assert.Equal(t, "BC=DA", classify.SidesBCDA.String())

	assert.True(t, classify.VerticesAC.Opposite())
	assert.False(t, classify.VerticesAB.Opposite())
	assert.Equal(t, "A=C", classify.VerticesAC.String())
}
