package engine

import "errors"

// Errors reported by the spline engines. They are wrapped with context, so
// compare with errors.Is.
var (
	// ErrUnorderedQuery indicates the abscissas to evaluate are not in
	// ascending order.
	ErrUnorderedQuery = errors.New("query abscissas not in ascending order")

	// ErrDegenerateInput indicates non-increasing abscissas or a zero-length
	// chord between consecutive points.
	ErrDegenerateInput = errors.New("degenerate input points")

	// ErrSingularSystem indicates the tridiagonal system is not positive
	// definite. No part of the solution is usable.
	ErrSingularSystem = errors.New("tridiagonal system is not positive definite")
)
