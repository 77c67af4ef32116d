package spline

import (
	"fmt"

	"github.com/tphakala/go-spline/internal/engine"
)

// QuadraticSpline evaluates the shape-preserving quadratic spline through
// original at each abscissa in query.
//
// original must hold at least three points with strictly increasing X and
// query must be in ascending order. Abscissas outside the data range
// extrapolate the first or last interval.
func QuadraticSpline(original []Point, query []float64) ([]Point, error) {
	return QuadraticSplineWithTolerance(original, query, 0)
}

// QuadraticSplineWithTolerance is like QuadraticSpline but compares
// derivatives against the chord slope with the given relative tolerance.
func QuadraticSplineWithTolerance(original []Point, query []float64, tolerance float64) ([]Point, error) {
	config := &Config{Method: MethodQuadratic, Tolerance: tolerance}
	return Interpolate(config, original, query)
}

// NaturalSpline evaluates the natural cubic spline through original at each
// abscissa in query.
//
// original must hold at least three points with strictly increasing X.
// query may be in any order. Abscissas outside the data range get a zero
// ordinate.
func NaturalSpline(original []Point, query []float64) ([]Point, error) {
	return Interpolate(&Config{Method: MethodNatural}, original, query)
}

// ParametricSpline samples the arc-length parametrised cubic spline through
// original at sampleCount points evenly spaced along the curve.
//
// original needs at least three points; consecutive points must differ. For a
// closed curve the first point must be repeated at the end.
func ParametricSpline(original []Point, closed bool, sampleCount int) ([]Point, error) {
	config := &Config{
		Method:      MethodParametric,
		Closed:      closed,
		SampleCount: sampleCount,
	}
	return Interpolate(config, original, nil)
}

// CatmullRomSpline evaluates the Catmull-Rom curve through original at each
// query position. Every query's Interval must be less than len(original).
func CatmullRomSpline(original []Point, query []IntervalT) ([]Point, error) {
	if err := checkPoints(MethodCatmullRom, original); err != nil {
		return nil, err
	}
	for i, q := range query {
		if q.Interval < 0 || q.Interval >= len(original) {
			return nil, fmt.Errorf("%w: query[%d] interval %d out of range [0, %d)",
				ErrInvalidConfig, i, q.Interval, len(original))
		}
	}
	return engine.CatmullRomSpline(original, query), nil
}

// CatmullRomQueries builds perSegment evenly spaced queries on each segment
// of an n-point curve, followed by the end of the last segment.
func CatmullRomQueries(n, perSegment int) []IntervalT {
	return engine.CatmullRomQueries(n, perSegment)
}

// CloseContour returns points with the first point appended when the last
// point differs from it, as closed parametric curves require.
func CloseContour(points []Point) []Point {
	return engine.CloseContour(points)
}

// Resample evaluates method over original with default settings.
//
// The quadratic and natural methods are evaluated at sampleCount abscissas
// evenly spaced from the first to the last point. The parametric method
// produces sampleCount points along an open curve. The Catmull-Rom method
// spreads about sampleCount points over its segments.
func Resample(original []Point, method Method, sampleCount int) ([]Point, error) {
	if sampleCount < minSampleCount {
		return nil, fmt.Errorf("%w: sample count must be at least %d", ErrInvalidConfig, minSampleCount)
	}

	config := &Config{
		Method:         method,
		SampleCount:    sampleCount,
		SegmentSamples: DefaultSegmentSamples,
	}
	if method == MethodCatmullRom && len(original) > 1 {
		config.SegmentSamples = max(1, (sampleCount-1)/(len(original)-1))
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := checkPoints(method, original); err != nil {
		return nil, err
	}

	var query []float64
	if method == MethodQuadratic || method == MethodNatural {
		query = Linspace(original[0].X, original[len(original)-1].X, sampleCount)
	}
	return interpolate(config, original, query)
}

// Linspace returns n evenly spaced values from start to end inclusive. The
// last value is exactly end.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	values := make([]float64, n)
	values[0] = start
	if n == 1 {
		return values
	}
	step := (end - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		values[i] = start + float64(i)*step
	}
	values[n-1] = end
	return values
}
