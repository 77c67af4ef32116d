// Package testutil provides reusable test helper functions for spline tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-spline/internal/geom"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	SolverTolerance  = 1e-12
	CurveTolerance   = 1e-6
)

// AssertNoNaNOrInf verifies that no point has a NaN or Inf coordinate.
func AssertNoNaNOrInf(t *testing.T, points []geom.Point, msgAndArgs ...any) bool {
	t.Helper()
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return assert.Fail(t, fmt.Sprintf("found NaN: points[%d]=%v", i, p), msgAndArgs...)
		}
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: points[%d]=%v", i, p), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that the ordinates never decrease.
func AssertMonotonic(t *testing.T, points []geom.Point, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(points); i++ {
		if points[i].Y < points[i-1].Y {
			return assert.Fail(t, fmt.Sprintf("not monotonic: y[%d]=%f < y[%d]=%f (x=%f)",
				i, points[i].Y, i-1, points[i-1].Y, points[i].X), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that every ordinate is within [minVal, maxVal].
func AssertAllInRange(t *testing.T, points []geom.Point, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, p := range points {
		if p.Y < minVal || p.Y > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: y[%d]=%f is outside range [%f, %f]",
				i, p.Y, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertPointInDelta verifies that two points agree within tolerance on both
// axes.
func AssertPointInDelta(t *testing.T, expected, actual geom.Point, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.Abs(expected.X-actual.X) > tolerance || math.Abs(expected.Y-actual.Y) > tolerance {
		return assert.Fail(t, fmt.Sprintf("points differ: expected %v, got %v (tolerance %g)",
			expected, actual, tolerance), msgAndArgs...)
	}
	return true
}

// AssertPointsInDelta verifies that two point slices have the same length and
// agree pointwise within tolerance.
func AssertPointsInDelta(t *testing.T, expected, actual []geom.Point, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if math.Abs(expected[i].X-actual[i].X) > tolerance || math.Abs(expected[i].Y-actual[i].Y) > tolerance {
			return assert.Fail(t, fmt.Sprintf("points differ: points[%d]: expected %v, got %v (tolerance %g)",
				i, expected[i], actual[i], tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertPassesThrough verifies that every knot appears in curve, in order,
// within tolerance.
func AssertPassesThrough(t *testing.T, knots, curve []geom.Point, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	j := 0
	for i, k := range knots {
		for j < len(curve) && k.Distance(curve[j]) > tolerance {
			j++
		}
		if j == len(curve) {
			return assert.Fail(t, fmt.Sprintf("knot missing from curve: knots[%d]=%v not found (tolerance %g)",
				i, k, tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value out of range: value %f is outside range [%f, %f]",
			value, minVal, maxVal), msgAndArgs...)
	}
	return true
}
