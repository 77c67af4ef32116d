package engine

// TridiagonalRow is one row of a symmetric, optionally cyclic, tridiagonal
// system:
//
//	Lower*u[i-1] + Diag*u[i] + Upper*u[i+1] = rhs[i]
//
// In a cyclic system u wraps around, so rows[0].Lower holds the corner
// element A[0][n-1]. The matrix must be symmetric (rows[i+1].Lower equals
// rows[i].Upper), therefore the opposite corner rows[n-1].Upper is never read.
// The Lower of the first row is ignored for acyclic systems.
type TridiagonalRow struct {
	Lower float64
	Diag  float64
	Upper float64
}

// Decompose computes the factorisation A = C^T * D * C in place, where C is
// upper triangular with unit diagonal and D is diagonal. Afterwards Diag holds
// D, Upper holds C[i][i+1] and Lower holds the last-column element C[i][n-1].
//
// It returns false at the first pivot that is not strictly positive, in
// which case the matrix is not positive definite and rows must be discarded.
// An empty system also fails.
func Decompose(rows []TridiagonalRow, cyclic bool) bool {
	n := len(rows)
	if n < 1 {
		return false
	}

	d := rows[0].Diag
	if d <= 0 {
		return false
	}

	// corner tracks the fill-in of the last column for the current row.
	var corner float64
	if cyclic {
		corner = rows[0].Lower
	}
	last := rows[n-1].Diag

	for i := 0; i < n-2; i++ {
		upper := rows[i].Upper
		rows[i].Upper = upper / d
		rows[i].Lower = corner / d
		last -= rows[i].Lower * corner
		corner = -rows[i].Upper * corner

		d = rows[i+1].Diag - rows[i].Upper*upper
		if d <= 0 {
			return false
		}
		rows[i+1].Diag = d
	}

	// Complete the last column.
	if n >= 2 {
		corner += rows[n-2].Upper
		rows[n-2].Lower = corner / d
		d = last - rows[n-2].Lower*corner
		if d <= 0 {
			return false
		}
		rows[n-1].Diag = d
	}
	return true
}

// Solve solves the system using rows previously factorised by Decompose.
//
// rhs holds the right-hand side on entry and is overwritten with the
// solution, so the caller's buffer doubles as the result and no copy is made.
// len(rhs) must equal len(rows). Solve has no failure mode of its own; the
// result is only meaningful after a successful Decompose.
func Solve(rows []TridiagonalRow, rhs []float64) {
	n := len(rows) - 2 // row whose Lower holds C[n-2][n-1]
	m := len(rows) - 1

	// rhs = C^-T * rhs
	last := rhs[m]
	for i := 0; i < n; i++ {
		rhs[i+1] -= rows[i].Upper * rhs[i]
		last -= rows[i].Lower * rhs[i]
	}
	if n >= 0 {
		rhs[m] = last - rows[n].Lower*rhs[n]
	}

	// rhs = D^-1 * rhs
	for i := range rows {
		rhs[i] /= rows[i].Diag
	}

	// rhs = C^-1 * rhs
	last = rhs[m]
	if n >= 0 {
		rhs[n] -= rows[n].Lower * last
	}
	for i := n - 1; i >= 0; i-- {
		rhs[i] -= rows[i].Upper*rhs[i+1] + rows[i].Lower*last
	}
}

// ShiftRight moves every element of values one slot to the right. The first
// element keeps its value and the last one is dropped.
func ShiftRight(values []float64) {
	if len(values) < 2 {
		return
	}
	copy(values[1:], values[:len(values)-1])
}
