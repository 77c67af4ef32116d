package spline

// Input size limits
const (
	minSplinePoints     = 3 // Quadratic, natural and parametric splines
	minCatmullRomPoints = 1 // A single point is returned as is
	minSampleCount      = 2 // Parametric output always holds both end points
)

// Quadratic tolerance limit
const (
	maxTolerance = 1.0 // Relative tolerances at or above 1 blur every case boundary
)

// Defaults used by the convenience functions
const (
	// DefaultSampleCount is the parametric output size used by Resample.
	DefaultSampleCount = 256

	// DefaultSegmentSamples is the Catmull-Rom samples per segment used by
	// Resample.
	DefaultSegmentSamples = 16
)
