package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-spline/internal/geom"
)

// QuadCase selects how an interval of the shape-preserving quadratic spline
// is split into quadratic pieces.
type QuadCase int

const (
	// QuadCase1 places one knot where the two end tangents intersect.
	QuadCase1 QuadCase = iota + 1

	// QuadCase2 places one knot at the interval midpoint.
	QuadCase2

	// QuadCase3 places one knot, shifted away from the steeper tangent. Only
	// one of the tangents crosses the interval's vertical midline.
	QuadCase3

	// QuadCase4 places two knots because neither tangent crosses the midline.
	QuadCase4
)

func (c QuadCase) String() string {
	switch c {
	case QuadCase1:
		return "case 1 (tangent intersection)"
	case QuadCase2:
		return "case 2 (midpoint knot)"
	case QuadCase3:
		return "case 3 (shifted knot)"
	case QuadCase4:
		return "case 4 (two knots)"
	default:
		return fmt.Sprintf("QuadCase(%d)", int(c))
	}
}

// QuadCaseParameters holds the knot geometry of one interval.
//
// For the single-knot cases V and W are the Bezier control points of the left
// and right pieces and Z is the knot. Case 4 adds a middle piece with control
// point E that ends at the second knot Y.
type QuadCaseParameters struct {
	E geom.Point
	V geom.Point
	W geom.Point
	Z geom.Point
	Y geom.Point
}

// QuadSlopes computes the derivative at every point so the quadratic spline
// follows the monotonicity and convexity of the data (McAllister and
// Roulier).
//
// At an interior point whose neighbouring chords have opposite signs, or
// where either chord is flat, the derivative is zero. Otherwise the less steep
// chord is extended to meet the steeper one and the derivative is taken
// through the midpoint of the result. End derivatives are extrapolated from
// their neighbour and forced to zero when they disagree in sign with the end
// chord. points needs at least three entries.
func QuadSlopes(points []geom.Point) []float64 {
	n := len(points)
	m := make([]float64, n)

	var m1, m2, m1s, m2s float64
	for i := 1; i < n-1; i++ {
		l, r := i-1, i+1
		ydif1 := points[i].Y - points[l].Y
		ydif2 := points[r].Y - points[i].Y
		m1 = ydif1 / (points[i].X - points[l].X)
		m2 = ydif2 / (points[r].X - points[i].X)
		if i == 1 {
			m1s, m2s = m1, m2
		}

		switch {
		case m1 == 0 || m2 == 0 || m1*m2 <= 0:
			m[i] = 0
		case math.Abs(m1) > math.Abs(m2):
			// Extend the chord with slope m1.
			xbar := ydif2/m1 + points[i].X
			xhat := (xbar + points[r].X) / 2
			m[i] = ydif2 / (xhat - points[i].X)
		default:
			// Extend the chord with slope m2.
			xbar := -ydif1/m2 + points[i].X
			xhat := (points[l].X + xbar) / 2
			m[i] = ydif1 / (points[i].X - xhat)
		}
	}

	// Last point.
	i, last := n-2, n-1
	if m1*m2 < 0 {
		m[last] = m2 * 2
	} else {
		xmid := (points[i].X + points[last].X) / 2
		yxmid := m[i]*(xmid-points[i].X) + points[i].Y
		m[last] = (points[last].Y - yxmid) / (points[last].X - xmid)
		if m[last]*m2 < 0 {
			m[last] = 0
		}
	}

	// First point.
	if m1s*m2s < 0 {
		m[0] = m1s * 2
	} else {
		xmid := (points[0].X + points[1].X) / 2
		yxmid := m[1]*(xmid-points[1].X) + points[1].Y
		m[0] = (yxmid - points[0].Y) / (xmid - points[0].X)
		if m[0]*m1s < 0 {
			m[0] = 0
		}
	}
	return m
}

// ClassifyInterval decides which QuadCase interpolates between p and q with
// derivatives m1 and m2.
//
// epsilon is a relative tolerance used when m1 or m2 is nearly equal to the
// chord slope or to twice the chord slope. Zero selects exact comparisons;
// a nonzero value should be at least the machine epsilon.
func ClassifyInterval(p, q geom.Point, m1, m2, epsilon float64) QuadCase {
	slope := (q.Y - p.Y) / (q.X - p.X)

	if slope == 0 {
		if m1*m2 >= 0 {
			return QuadCase2
		}
		return QuadCase1
	}

	prod1, prod2 := slope*m1, slope*m2
	mref, mref1, mref2 := math.Abs(slope), math.Abs(m1), math.Abs(m2)
	relerr := epsilon * mref

	if math.Abs(slope-m1) > relerr && math.Abs(slope-m2) > relerr && prod1 >= 0 && prod2 >= 0 {
		if (mref-mref1)*(mref-mref2) < 0 {
			// One tangent is steeper than the chord and the other is not,
			// so they intersect between p and q.
			return QuadCase1
		}
		if mref1 > mref*2 {
			if mref2 < (2-epsilon)*mref {
				return QuadCase3
			}
			return QuadCase4
		}
		if mref2 <= mref*2 {
			// Both tangents cross the midline.
			return QuadCase2
		}
		if mref1 < (2-epsilon)*mref {
			return QuadCase3
		}
		return QuadCase4
	}

	// At least one derivative disagrees in sign with the chord, or lies
	// within epsilon of it.
	switch {
	case prod1 < 0 && prod2 < 0:
		return QuadCase2
	case prod1 < 0:
		if mref2 > (epsilon+1)*mref {
			return QuadCase1
		}
		return QuadCase2
	case prod2 < 0:
		if mref1 > (epsilon+1)*mref {
			return QuadCase1
		}
		return QuadCase2
	case mref1 > (epsilon+1)*mref || mref2 > (epsilon+1)*mref:
		// One tangent follows the chord, so the tangents meet at an end
		// point. A knot there would leave that end without its slope.
		if math.Max(mref1, mref2) > mref*2 {
			return QuadCase3
		}
		return QuadCase2
	default:
		return QuadCase2
	}
}

// QuadCaseParams computes the knot geometry for the interval from p to q.
func QuadCaseParams(p, q geom.Point, m1, m2 float64, c QuadCase) QuadCaseParameters {
	h := q.X - p.X
	slope := (q.Y - p.Y) / h

	switch c {
	case QuadCase1:
		z := p.X + h*(slope-m2)/(m1-m2)
		// Only a nonzero epsilon can push the intersection outside.
		z = math.Min(math.Max(z, p.X), q.X)
		return singleKnot(p, q, m1, m2, z)

	case QuadCase3:
		// Place the knot halfway to the point where the two tangent control
		// points level out, counted from the steep end.
		if math.Abs(m1) > math.Abs(m2) {
			return singleKnot(p, q, m1, m2, p.X+h*(2*slope-m2)/(m1-m2)/2)
		}
		return singleKnot(p, q, m1, m2, q.X-h*(2*slope-m1)/(m2-m1)/2)

	case QuadCase4:
		ymid := (p.Y + q.Y) / 2
		z1 := p.X + (ymid-p.Y)/m1
		z2 := q.X - (q.Y-ymid)/m2

		var params QuadCaseParameters
		params.V = geom.Pt((p.X+z1)/2, (p.Y+ymid)/2)
		params.W = geom.Pt((z2+q.X)/2, (ymid+q.Y)/2)
		params.E = geom.Pt((z1+z2)/2, ymid)
		params.Z = geom.Pt(z1, knotOrdinate(params.V, params.E, z1))
		params.Y = geom.Pt(z2, knotOrdinate(params.E, params.W, z2))
		return params

	default:
		return singleKnot(p, q, m1, m2, (p.X+q.X)/2)
	}
}

// singleKnot builds the two quadratic pieces joined at abscissa z. The
// control points lie on the end tangents, halfway to the knot.
func singleKnot(p, q geom.Point, m1, m2, z float64) QuadCaseParameters {
	var params QuadCaseParameters
	params.V = geom.Pt((p.X+z)/2, p.Y+m1*(z-p.X)/2)
	params.W = geom.Pt((z+q.X)/2, q.Y-m2*(q.X-z)/2)
	params.Z = geom.Pt(z, knotOrdinate(params.V, params.W, z))
	return params
}

// knotOrdinate returns the ordinate at x of the line through a and b.
func knotOrdinate(a, b geom.Point, x float64) float64 {
	return a.Y + (x-a.X)*(b.Y-a.Y)/(b.X-a.X)
}

// QuadEvaluate returns the ordinate of the quadratic spline at x, given the
// interval end points and the parameters computed for case c. Values of x
// outside the interval extrapolate the outer piece.
func QuadEvaluate(x float64, left, right geom.Point, params QuadCaseParameters, c QuadCase) float64 {
	if c == QuadCase4 {
		switch {
		case x <= params.Z.X:
			return quadImage(left.Y, params.V.Y, params.Z.Y, left.X, x, params.Z.X)
		case x <= params.Y.X:
			return quadImage(params.Z.Y, params.E.Y, params.Y.Y, params.Z.X, x, params.Y.X)
		default:
			return quadImage(params.Y.Y, params.W.Y, right.Y, params.Y.X, x, right.X)
		}
	}

	z := params.Z.X
	useLeft := x <= z
	// A knot sitting on an end point leaves that piece empty.
	if z <= left.X {
		useLeft = false
	} else if z >= right.X {
		useLeft = true
	}
	if useLeft {
		return quadImage(left.Y, params.V.Y, params.Z.Y, left.X, x, z)
	}
	return quadImage(params.Z.Y, params.W.Y, right.Y, z, x, right.X)
}

// quadImage evaluates at x the quadratic Bezier piece spanning [x0, x1] with
// end ordinates y0, y1 and control ordinate yc.
func quadImage(y0, yc, y1, x0, x, x1 float64) float64 {
	a := x1 - x
	b := x - x0
	c := x1 - x0
	return (y0*a*a + 2*yc*a*b + y1*b*b) / (c * c)
}

// QuadraticSpline evaluates the shape-preserving quadratic spline through
// original at each abscissa in query.
//
// query must be in ascending order and free of NaN, otherwise
// ErrUnorderedQuery is returned.
// Abscissas outside the data range extrapolate the first or last interval.
// Abscissas that coincide with a data point copy its ordinate. original must
// hold at least three points with strictly increasing X.
func QuadraticSpline(original []geom.Point, query []float64, epsilon float64) ([]geom.Point, error) {
	for i, x := range query {
		if math.IsNaN(x) {
			return nil, fmt.Errorf("%w: query[%d] is NaN", ErrUnorderedQuery, i)
		}
		if i > 0 && x < query[i-1] {
			return nil, fmt.Errorf("%w: query[%d]=%g follows %g", ErrUnorderedQuery, i, x, query[i-1])
		}
	}

	slopes := QuadSlopes(original)
	lastInterval := len(original) - 2
	output := make([]geom.Point, len(query))

	interval := -1
	var c QuadCase
	var params QuadCaseParameters

	for k, x := range query {
		i, exact := Search(original, x)
		if exact {
			output[k] = geom.Pt(x, original[i].Y)
			continue
		}
		i = min(max(i, 0), lastInterval)

		// Parameters only change with the interval.
		if i != interval {
			interval = i
			p, q := original[i], original[i+1]
			c = ClassifyInterval(p, q, slopes[i], slopes[i+1], epsilon)
			params = QuadCaseParams(p, q, slopes[i], slopes[i+1], c)
		}
		output[k] = geom.Pt(x, QuadEvaluate(x, original[i], original[i+1], params, c))
	}
	return output, nil
}
