package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-spline/internal/geom"
	"github.com/tphakala/go-spline/internal/testutil"
)

// TestCatmullRomSpline_Window checks the segment between the middle two
// points of a four-point window starts and ends on them.
func TestCatmullRomSpline_Window(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 0}}

	output := CatmullRomSpline(points, []IntervalT{{Interval: 1, T: 0}, {Interval: 1, T: 1}})
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}, output)
}

func TestCatmullRomCoefficients(t *testing.T) {
	a, b, c, d := CatmullRomCoefficients([4]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 0}})

	assert.Equal(t, geom.Pt(0, 0), a)
	assert.Equal(t, geom.Pt(0, -1), b)
	assert.Equal(t, geom.Pt(2, 1), c)
	assert.Equal(t, geom.Pt(2, 2), d)
}

// TestCatmullRomCoefficients_Line verifies evenly spaced collinear points
// give a straight segment.
func TestCatmullRomCoefficients_Line(t *testing.T) {
	a, b, _, _ := CatmullRomCoefficients([4]geom.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 3, Y: 7}})

	assert.Equal(t, geom.Point{}, a)
	assert.Equal(t, geom.Point{}, b)
}

func TestCatmullRomSpline_PassesThroughPoints(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 1}, {X: 4, Y: 4}, {X: 6, Y: 3}}
	const perSegment = 8

	output := CatmullRomSpline(points, CatmullRomQueries(len(points), perSegment))
	assert.Len(t, output, (len(points)-1)*perSegment+1)
	testutil.AssertNoNaNOrInf(t, output)

	knots := make([]geom.Point, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		knots = append(knots, output[i*perSegment])
	}
	knots = append(knots, output[len(output)-1])

	if diff := cmp.Diff(points, knots, cmpopts.EquateApprox(0, testutil.DefaultTolerance)); diff != "" {
		t.Errorf("CatmullRomSpline() knots mismatch (-want +got):\n%s", diff)
	}
}

func TestCatmullRomSpline_SinglePoint(t *testing.T) {
	p := geom.Pt(2, 3)

	output := CatmullRomSpline([]geom.Point{p}, CatmullRomQueries(1, 10))
	assert.Equal(t, []geom.Point{p}, output)
}

func TestCatmullRomSpline_Empty(t *testing.T) {
	assert.Nil(t, CatmullRomSpline(nil, []IntervalT{{}}))
	assert.Empty(t, CatmullRomSpline([]geom.Point{{X: 1}}, nil))
}

func TestCatmullRomSpline_PanicsOutOfRange(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	assert.Panics(t, func() {
		CatmullRomSpline(points, []IntervalT{{Interval: 2}})
	})
}

func TestCatmullRomQueries(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		perSegment int
		want       []IntervalT
	}{
		{"no points", 0, 4, []IntervalT{{}}},
		{"single point", 1, 4, []IntervalT{{}}},
		{"two segments", 3, 2, []IntervalT{
			{Interval: 0, T: 0},
			{Interval: 0, T: 0.5},
			{Interval: 1, T: 0},
			{Interval: 1, T: 0.5},
			{Interval: 1, T: 1},
		}},
		{"non-positive count", 2, 0, []IntervalT{
			{Interval: 0, T: 0},
			{Interval: 0, T: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CatmullRomQueries(tt.n, tt.perSegment))
		})
	}
}
