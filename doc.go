// Package spline interpolates smooth curves through 2-D data points in pure Go.
//
// Given points sorted by x, the package produces a denser set of points lying
// on a smooth curve through them. The algorithms follow the spline routines of
// the BLT graph widget, without any of its drawing code.
//
// # Methods
//
//   - [MethodQuadratic]: shape-preserving osculatory quadratic splines
//     (McAllister and Roulier). Monotone and convex runs of data stay monotone
//     and convex, so the curve never overshoots.
//   - [MethodNatural]: natural cubic splines. Twice continuously
//     differentiable with zero curvature at both ends.
//   - [MethodParametric]: cubic splines parametrised by chord length, for
//     curves that double back in x and for closed contours.
//   - [MethodCatmullRom]: Catmull-Rom splines. Each segment only depends on
//     its four nearest points.
//
// # Quick Start
//
// Evaluate a spline at chosen abscissas:
//
//	points := []spline.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 2.5}, {X: 4, Y: 3}}
//	curve, err := spline.QuadraticSpline(points, spline.Linspace(0, 4, 100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Sample a closed contour evenly along its length:
//
//	contour := spline.CloseContour(polygon)
//	curve, err := spline.ParametricSpline(contour, true, 200)
//
// Or drive any method from a [Config]:
//
//	config := &spline.Config{
//	    Method:         spline.MethodCatmullRom,
//	    SegmentSamples: 8,
//	}
//	curve, err := spline.Interpolate(config, points, nil)
//
// # Input Requirements
//
// The quadratic, natural and parametric methods need at least three points;
// Catmull-Rom needs one. The quadratic and natural methods need strictly
// increasing x. The quadratic method also needs its query in ascending order
// and reports [ErrUnorderedQuery] otherwise. Errors wrap the sentinel values
// declared in this package, so test them with [errors.Is].
//
// # Multiple Series
//
// [InterpolateSeries] applies one configuration to several point series, for
// example the channels of a recording. With [Config.EnableParallel] set, each
// series runs on its own goroutine.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Nothing is cached between calls
// and every result is a newly allocated slice.
package spline
