package engine

import "github.com/tphakala/go-spline/internal/geom"

// Search locates key among the abscissas of points using binary search.
//
// If a point has X == key, its index is returned with exact set. Otherwise
// the result is the largest index whose abscissa is less than key, which is
// -1 when key precedes every point. points must be sorted by X in ascending
// order and key must not be NaN; neither is checked.
func Search(points []geom.Point, key float64) (index int, exact bool) {
	low, high := 0, len(points)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		switch {
		case key > points[mid].X:
			low = mid + 1
		case key < points[mid].X:
			high = mid - 1
		default:
			return mid, true
		}
	}
	return high, false
}
