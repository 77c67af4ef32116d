package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// minUnit is the smallest scale Unit will report for a side of the box.
// It matches the single precision machine epsilon.
const minUnit = 0x1p-23

// Rect is an axis-aligned bounding box.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Extents returns the bounding box of points. The zero Rect is returned for an
// empty slice.
func Extents(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	xs, ys := Xs(points), Ys(points)
	return Rect{
		X0: floats.Min(xs),
		Y0: floats.Min(ys),
		X1: floats.Max(xs),
		Y1: floats.Max(ys),
	}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Unit returns the width and height of r for use as coordinate scales. Sides
// narrower than float32 epsilon (including a degenerate box) are floored to it
// so the scales can always be divided by.
func (r Rect) Unit() (unitX, unitY float64) {
	return math.Max(r.Width(), minUnit), math.Max(r.Height(), minUnit)
}
