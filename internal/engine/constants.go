package engine

// Natural cubic spline constants
const (
	// Interior rows of the natural system carry 3 * (slope[i] - slope[i-1])
	// on the right-hand side.
	naturalRHSFactor = 3.0
)

// Parametric cubic spline constants
const (
	// Interior rows of the parametric system carry 6 * the change in unit
	// direction between consecutive chords.
	parametricRHSFactor = 6.0

	// Right-hand sides whose magnitude exceeds this limit are scaled down to
	// it, which keeps sharp corners from overshooting into loops.
	cuspDampingLimit = 8.5

	// The arc-length step is shrunk by this relative amount so rounding
	// never carries the last walked sample past the end of the curve.
	arcStepShrink = 1e-7
)

// Catmull-Rom constants
const (
	// Each segment is evaluated from a 4-point window.
	catmullRomWindow = 4
)
