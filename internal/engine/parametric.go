package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-spline/internal/geom"
)

// ParametricKnot describes one point of an arc-length parametrised cubic
// spline. T is the length of the chord that starts at the point; X and Y are
// the second derivatives of x(t) and y(t) at the point.
type ParametricKnot struct {
	T float64
	X float64
	Y float64
}

// ParametricSlopes computes the second derivatives of the parametric cubic
// spline through points, parametrised by chord length.
//
// Chord lengths are measured after dividing x by unitX and y by unitY, so
// both axes contribute equally regardless of their range. The returned
// derivatives are scaled back to the original units.
//
// For an open curve the second derivatives at the ends equal those of their
// neighbours. A closed curve must repeat its first point at the end (see
// CloseContour); its system wraps around and both ends share a value.
//
// Sharp corners are damped: any right-hand side whose magnitude exceeds
// cuspDampingLimit is scaled down to that limit.
//
// ErrDegenerateInput is returned for fewer than two points or for two
// consecutive points that coincide. ErrSingularSystem is returned when the
// system cannot be factorised.
func ParametricSlopes(points []geom.Point, closed bool, unitX, unitY float64) ([]ParametricKnot, error) {
	count := len(points)
	if count < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrDegenerateInput, count)
	}

	knots := make([]ParametricKnot, count)
	dirX := make([]float64, count)
	dirY := make([]float64, count)

	for i := 0; i < count-1; i++ {
		dx := (points[i+1].X - points[i].X) / unitX
		dy := (points[i+1].Y - points[i].Y) / unitY
		t := math.Hypot(dx, dy)
		if t == 0 {
			return nil, fmt.Errorf("%w: points %d and %d coincide at %v", ErrDegenerateInput, i, i+1, points[i])
		}
		knots[i].T = t
		dirX[i] = dx / t
		dirY[i] = dy / t
	}

	n := count - 2 // unknowns at the interior points
	if closed {
		// The chord out of the last point is the chord out of the first.
		n = count - 1
		knots[count-1].T = knots[0].T
		dirX[count-1] = dirX[0]
		dirY[count-1] = dirY[0]
	}
	if n < 1 {
		// A single open chord is a straight line.
		return knots, nil
	}

	rows := make([]TridiagonalRow, n)
	rhsX := make([]float64, n+1)
	rhsY := make([]float64, n+1)
	for i := range rows {
		rows[i] = TridiagonalRow{
			Lower: knots[i].T,
			Diag:  2 * (knots[i].T + knots[i+1].T),
			Upper: knots[i+1].T,
		}
		rx := parametricRHSFactor * (dirX[i+1] - dirX[i])
		ry := parametricRHSFactor * (dirY[i+1] - dirY[i])
		if norm := math.Hypot(rx, ry) / cuspDampingLimit; norm > 1 {
			rx /= norm
			ry /= norm
		}
		rhsX[i], rhsY[i] = rx, ry
	}
	if !closed {
		rows[0].Lower = 0
		rows[n-1].Upper = 0
	}

	if !Decompose(rows, closed) {
		return nil, ErrSingularSystem
	}
	Solve(rows, rhsX[:n])
	Solve(rows, rhsY[:n])

	// Solutions belong to points 1..n.
	ShiftRight(rhsX)
	ShiftRight(rhsY)
	if closed {
		rhsX[0], rhsY[0] = rhsX[n], rhsY[n]
	} else {
		rhsX[0], rhsY[0] = rhsX[1], rhsY[1]
	}

	for i := 0; i <= n; i++ {
		knots[i].X = rhsX[i] * unitX
		knots[i].Y = rhsY[i] * unitY
	}
	if !closed {
		knots[n+1].X = knots[n].X
		knots[n+1].Y = knots[n].Y
	}
	return knots, nil
}

// ParametricEvaluate samples the spline described by points and knots at
// sampleCount positions evenly spaced in arc length. The first sample is the
// first point and the last sample is the last point.
func ParametricEvaluate(points []geom.Point, knots []ParametricKnot, sampleCount int) []geom.Point {
	if sampleCount <= 0 || len(points) == 0 {
		return nil
	}
	output := make([]geom.Point, sampleCount)
	output[0] = points[0]
	if sampleCount == 1 {
		return output
	}

	intervals := len(points) - 1
	lengths := make([]float64, intervals)
	for i := range lengths {
		lengths[i] = knots[i].T
	}
	total := f64.Sum(lengths)
	step := (1 - arcStepShrink) * total / float64(sampleCount-1)

	// start is the arc length at the beginning of interval i.
	i, start := 0, 0.0
	for k := 1; k < sampleCount-1; k++ {
		s := float64(k) * step
		for i < intervals-1 && s > start+lengths[i] {
			start += lengths[i]
			i++
		}
		output[k] = parametricAt(points, knots, i, s-start)
	}
	output[sampleCount-1] = points[len(points)-1]
	return output
}

// parametricAt evaluates interval i at chord parameter t in [0, knots[i].T].
func parametricAt(points []geom.Point, knots []ParametricKnot, i int, t float64) geom.Point {
	p, q := points[i], points[i+1]
	k0, k1 := knots[i], knots[i+1]
	d := k0.T

	return geom.Point{
		X: cubicSegment(p.X, q.X, k0.X, k1.X, d, t),
		Y: cubicSegment(p.Y, q.Y, k0.Y, k1.Y, d, t),
	}
}

// cubicSegment evaluates the cubic on [0, d] that runs from v0 to v1 with
// second derivatives m0 and m1 at its ends.
func cubicSegment(v0, v1, m0, m1, d, t float64) float64 {
	h := (v1 - v0) / d
	a0 := (m1 + 2*m0) / 6
	a01 := (m1 - m0) / (6 * d)
	return v0 + t*(h+(t-d)*(a0+t*a01))
}

// ParametricSpline samples the arc-length parametrised cubic spline through
// original at sampleCount points. The coordinate scales come from the
// bounding box of original. For a closed curve the first point must be
// repeated at the end.
func ParametricSpline(original []geom.Point, closed bool, sampleCount int) ([]geom.Point, error) {
	unitX, unitY := geom.Extents(original).Unit()
	knots, err := ParametricSlopes(original, closed, unitX, unitY)
	if err != nil {
		return nil, err
	}
	return ParametricEvaluate(original, knots, sampleCount), nil
}

// CloseContour returns points with the first point appended when the last
// point differs from it. The input is never modified.
func CloseContour(points []geom.Point) []geom.Point {
	closed := make([]geom.Point, len(points), len(points)+1)
	copy(closed, points)
	if len(points) > 0 && points[0] != points[len(points)-1] {
		closed = append(closed, points[0])
	}
	return closed
}
