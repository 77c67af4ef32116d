package engine

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-spline/internal/geom"
	"github.com/tphakala/go-spline/internal/testutil"
)

// unevenData has irregular spacing so the system is not trivially uniform.
var unevenData = []geom.Point{
	{X: 0, Y: 1},
	{X: 0.5, Y: 2},
	{X: 2, Y: 0.5},
	{X: 2.5, Y: 1.5},
	{X: 4, Y: 3},
	{X: 7, Y: 2},
}

func TestNaturalSpline_SymmetricPeak(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}

	output, err := NaturalSpline(points, []float64{0.5, 1.5})
	require.NoError(t, err)

	want := []geom.Point{{X: 0.5, Y: 0.6875}, {X: 1.5, Y: 0.6875}}
	if diff := cmp.Diff(want, output, cmpopts.EquateApprox(0, testutil.DefaultTolerance)); diff != "" {
		t.Errorf("NaturalSpline() mismatch (-want +got):\n%s", diff)
	}
}

func TestNaturalSpline_PassesThroughKnots(t *testing.T) {
	output, err := NaturalSpline(unevenData, geom.Xs(unevenData))
	require.NoError(t, err)
	assert.Equal(t, unevenData, output)
}

// TestNaturalSpline_OutsideRange verifies out-of-range abscissas keep their
// x and get a zero ordinate.
func TestNaturalSpline_OutsideRange(t *testing.T) {
	output, err := NaturalSpline(unevenData, []float64{-1, 3, 8})
	require.NoError(t, err)
	require.Len(t, output, 3)

	assert.Equal(t, geom.Pt(-1, 0), output[0])
	assert.Equal(t, 3.0, output[1].X)
	assert.NotZero(t, output[1].Y)
	assert.Equal(t, geom.Pt(8, 0), output[2])
}

func TestNaturalSpline_UnsortedQuery(t *testing.T) {
	sorted, err := NaturalSpline(unevenData, []float64{1, 3, 5})
	require.NoError(t, err)
	unsorted, err := NaturalSpline(unevenData, []float64{5, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, sorted[0], unsorted[1])
	assert.Equal(t, sorted[1], unsorted[2])
	assert.Equal(t, sorted[2], unsorted[0])
}

func TestNaturalSpline_ReproducesLine(t *testing.T) {
	points := []geom.Point{{X: 0, Y: -1}, {X: 1, Y: 0.5}, {X: 3, Y: 3.5}, {X: 4, Y: 5}}
	query := []float64{0.25, 1.5, 2.75, 3.9}

	output, err := NaturalSpline(points, query)
	require.NoError(t, err)
	for _, p := range output {
		assert.InDelta(t, 1.5*p.X-1, p.Y, testutil.DefaultTolerance, "x=%f", p.X)
	}
}

func TestNaturalSpline_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []geom.Point
	}{
		{"single point", []geom.Point{{X: 0, Y: 0}}},
		{"repeated abscissa", []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}},
		{"decreasing abscissa", []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NaturalSpline(tt.points, []float64{0.5})
			require.ErrorIs(t, err, ErrDegenerateInput)
			assert.Nil(t, output)
		})
	}
}

func TestNaturalEvaluate_SingularSystem(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	rows := []TridiagonalRow{{Diag: 1}, {Diag: 0}, {Diag: 1}}

	output, err := NaturalEvaluate(points, rows, make([]float64, 3), []float64{0.5})
	require.ErrorIs(t, err, ErrSingularSystem)
	assert.Nil(t, output)
}

func TestNaturalSystem_BoundaryRows(t *testing.T) {
	rows, rhs, err := NaturalSystem(unevenData)
	require.NoError(t, err)

	n := len(unevenData) - 1
	require.Len(t, rows, n+1)
	require.Len(t, rhs, n+1)
	assert.Equal(t, TridiagonalRow{Diag: 1}, rows[0])
	assert.Equal(t, TridiagonalRow{Diag: 1}, rows[n])
	assert.Zero(t, rhs[0])
	assert.Zero(t, rhs[n])

	// Interior couplings stay symmetric.
	for i := 1; i < n-1; i++ {
		assert.Equal(t, rows[i].Upper, rows[i+1].Lower, "row %d", i)
	}
	assert.Zero(t, rows[1].Lower)
	assert.Zero(t, rows[n-1].Upper)
}

// TestNaturalCoefficients_Smoothness verifies the solved spline has zero
// curvature at both ends and continuous first and second derivatives at
// every interior knot.
func TestNaturalCoefficients_Smoothness(t *testing.T) {
	rows, rhs, err := NaturalSystem(unevenData)
	require.NoError(t, err)
	require.True(t, Decompose(rows, false))
	Solve(rows, rhs)

	coeffs := NaturalCoefficients(unevenData, rhs)
	require.Len(t, coeffs, len(unevenData)-1)

	last := len(coeffs) - 1
	lastDx := unevenData[last+1].X - unevenData[last].X
	assert.Zero(t, coeffs[0].C, "curvature at the first point")
	assert.InDelta(t, 0, 2*coeffs[last].C+6*coeffs[last].D*lastDx, testutil.DefaultTolerance, "curvature at the last point")

	for i := 0; i < last; i++ {
		dx := unevenData[i+1].X - unevenData[i].X
		cf, next := coeffs[i], coeffs[i+1]

		value := unevenData[i].Y + dx*(cf.B+dx*(cf.C+dx*cf.D))
		slope := cf.B + 2*cf.C*dx + 3*cf.D*dx*dx
		curvature := 2*cf.C + 6*cf.D*dx

		assert.InDelta(t, unevenData[i+1].Y, value, testutil.DefaultTolerance, "value at knot %d", i+1)
		assert.InDelta(t, next.B, slope, testutil.DefaultTolerance, "slope at knot %d", i+1)
		assert.InDelta(t, 2*next.C, curvature, testutil.DefaultTolerance, "curvature at knot %d", i+1)
	}
}

func TestNaturalSpline_NaNQuery(t *testing.T) {
	output, err := NaturalSpline(unevenData, []float64{1, math.NaN()})
	require.NoError(t, err)
	require.Len(t, output, 2)

	assert.False(t, math.IsNaN(output[0].Y))
	assert.True(t, math.IsNaN(output[1].X))
	assert.True(t, math.IsNaN(output[1].Y))
}

// TestNaturalSpline_Idempotent verifies that interpolating a sampled curve
// at its own abscissas returns the same points.
func TestNaturalSpline_Idempotent(t *testing.T) {
	query := make([]float64, 36)
	for i := range query {
		query[i] = 7 * float64(i) / float64(len(query)-1)
	}

	first, err := NaturalSpline(unevenData, query)
	require.NoError(t, err)
	second, err := NaturalSpline(first, query)
	require.NoError(t, err)

	testutil.AssertPointsInDelta(t, first, second, testutil.DefaultTolerance)
}
