package engine

import "github.com/tphakala/go-spline/internal/geom"

// Export internal functions for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// ExportedParametricAt wraps parametricAt for testing
func ExportedParametricAt(points []geom.Point, knots []ParametricKnot, i int, t float64) geom.Point {
	return parametricAt(points, knots, i, t)
}

// ExportedQuadImage wraps quadImage for testing
func ExportedQuadImage(y0, yc, y1, x0, x, x1 float64) float64 {
	return quadImage(y0, yc, y1, x0, x, x1)
}
