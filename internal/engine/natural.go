package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-spline/internal/geom"
)

// CubicCoefficients describes the cubic on one interval of the natural
// spline: y(t) = y[i] + B*t + C*t^2 + D*t^3 with t = x - x[i].
type CubicCoefficients struct {
	B, C, D float64
}

// NaturalSystem builds the tridiagonal system whose solution is the C
// coefficient at every abscissa.
//
// The first and last rows are identity rows with a zero right-hand side, which
// pins C to zero at both ends. The interior couplings into those rows are left
// out so the matrix stays symmetric; with the ends pinned this does not change
// the solution. Interior rows carry 3*(slope[i] - slope[i-1]) on the
// right-hand side.
//
// ErrDegenerateInput is returned when the abscissas are not strictly
// increasing or fewer than two points are given.
func NaturalSystem(points []geom.Point) ([]TridiagonalRow, []float64, error) {
	if len(points) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrDegenerateInput, len(points))
	}

	n := len(points) - 1 // number of intervals
	dx := make([]float64, n)
	for i := range dx {
		dx[i] = points[i+1].X - points[i].X
		if dx[i] <= 0 {
			return nil, nil, fmt.Errorf("%w: x[%d]=%g does not increase from %g",
				ErrDegenerateInput, i+1, points[i+1].X, points[i].X)
		}
	}

	rows := make([]TridiagonalRow, n+1)
	rhs := make([]float64, n+1)
	rows[0] = TridiagonalRow{Diag: 1}
	rows[n] = TridiagonalRow{Diag: 1}

	for j := 1; j < n; j++ {
		i := j - 1
		rows[j] = TridiagonalRow{
			Lower: dx[i],
			Diag:  2 * (dx[i] + dx[j]),
			Upper: dx[j],
		}
		rhs[j] = naturalRHSFactor * ((points[j+1].Y-points[j].Y)/dx[j] - (points[j].Y-points[i].Y)/dx[i])
	}
	if n > 1 {
		rows[1].Lower = 0
		rows[n-1].Upper = 0
	}
	return rows, rhs, nil
}

// NaturalEvaluate solves the system from NaturalSystem and evaluates the
// spline at every abscissa in query.
//
// rows and rhs are consumed: rows is factorised in place and rhs receives the
// solution. Abscissas outside the data range are not extrapolated; their
// ordinate is left at zero, and a NaN abscissa yields a NaN ordinate. query
// need not be sorted.
func NaturalEvaluate(points []geom.Point, rows []TridiagonalRow, rhs, query []float64) ([]geom.Point, error) {
	if !Decompose(rows, false) {
		return nil, ErrSingularSystem
	}
	Solve(rows, rhs)
	coeffs := NaturalCoefficients(points, rhs)

	n := len(points) - 1
	output := make([]geom.Point, len(query))
	for k, x := range query {
		output[k].X = x
		if math.IsNaN(x) {
			output[k].Y = math.NaN()
			continue
		}
		if x < points[0].X || x > points[n].X {
			continue
		}

		i, exact := Search(points, x)
		if exact {
			output[k].Y = points[i].Y
			continue
		}
		t := x - points[i].X
		cf := coeffs[i]
		output[k].Y = points[i].Y + t*(cf.B+t*(cf.C+t*cf.D))
	}
	return output, nil
}

// NaturalCoefficients recovers the per-interval cubic from the solved C
// values, one per point.
func NaturalCoefficients(points []geom.Point, c []float64) []CubicCoefficients {
	coeffs := make([]CubicCoefficients, len(points)-1)
	for i := range coeffs {
		dx := points[i+1].X - points[i].X
		dy := points[i+1].Y - points[i].Y
		coeffs[i] = CubicCoefficients{
			B: dy/dx - dx*(c[i+1]+2*c[i])/3,
			C: c[i],
			D: (c[i+1] - c[i]) / (3 * dx),
		}
	}
	return coeffs
}

// NaturalSpline evaluates the natural cubic spline through original at every
// abscissa in query. See NaturalSystem and NaturalEvaluate.
func NaturalSpline(original []geom.Point, query []float64) ([]geom.Point, error) {
	rows, rhs, err := NaturalSystem(original)
	if err != nil {
		return nil, err
	}
	return NaturalEvaluate(original, rows, rhs, query)
}
