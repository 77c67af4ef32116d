// Package engine implements the spline interpolation algorithms.
package engine

import "github.com/tphakala/go-spline/internal/geom"

// IntervalT addresses a position on a Catmull-Rom curve: the segment that
// starts at point Interval, and a parameter T in [0, 1] along it.
type IntervalT struct {
	Interval int
	T        float64
}

// CatmullRomCoefficients returns the cubic coefficients of the segment
// between window[1] and window[2]. They are twice the usual Catmull-Rom
// values; the curve is (d + t*(c + t*(b + t*a))) / 2.
func CatmullRomCoefficients(window [catmullRomWindow]geom.Point) (a, b, c, d geom.Point) {
	p0, p1, p2, p3 := window[0], window[1], window[2], window[3]

	a = p0.Scale(-1).Add(p1.Scale(3)).Sub(p2.Scale(3)).Add(p3)
	b = p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3)
	c = p2.Sub(p0)
	d = p1.Scale(2)
	return a, b, c, d
}

// CatmullRomSpline evaluates the Catmull-Rom curve through points at every
// query position.
//
// The first point is repeated once in front and the last point twice at the
// end, so every segment has a full window and the curve passes through all
// points. Each query's Interval must be less than len(points).
func CatmullRomSpline(points []geom.Point, query []IntervalT) []geom.Point {
	if len(points) == 0 {
		return nil
	}
	last := points[len(points)-1]
	padded := make([]geom.Point, 0, len(points)+3)
	padded = append(padded, points[0])
	padded = append(padded, points...)
	padded = append(padded, last, last)

	output := make([]geom.Point, len(query))
	for k, q := range query {
		var window [catmullRomWindow]geom.Point
		copy(window[:], padded[q.Interval:q.Interval+catmullRomWindow])
		a, b, c, d := CatmullRomCoefficients(window)

		t := q.T
		output[k] = geom.Point{
			X: (d.X + t*(c.X+t*(b.X+t*a.X))) / 2,
			Y: (d.Y + t*(c.Y+t*(b.Y+t*a.Y))) / 2,
		}
	}
	return output
}

// CatmullRomQueries builds perSegment evenly spaced queries on each of the
// n-1 segments of an n-point curve, followed by the end of the last segment.
// A curve with fewer than two points yields the single query {0, 0}.
func CatmullRomQueries(n, perSegment int) []IntervalT {
	if n < 2 {
		return []IntervalT{{}}
	}
	perSegment = max(perSegment, 1)

	query := make([]IntervalT, 0, (n-1)*perSegment+1)
	for i := 0; i < n-1; i++ {
		for j := 0; j < perSegment; j++ {
			query = append(query, IntervalT{Interval: i, T: float64(j) / float64(perSegment)})
		}
	}
	return append(query, IntervalT{Interval: n - 2, T: 1})
}
