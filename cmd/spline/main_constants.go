package main

// Default command-line flag values
const (
	defaultMethod         = "quadratic"
	defaultSampleCount    = 100 // Output points for x-based and parametric methods
	defaultSegmentSamples = 10  // Catmull-Rom points per segment
)

// CSV layout
const (
	csvFields   = 2   // x,y
	csvComment  = '#' // Lines starting with this rune are skipped
	floatFormat = 'g' // strconv format for output values
	floatBits   = 64
)

// Demo data
const (
	demoPointCount = 8   // Points on the demo curve
	demoStep       = 0.5 // Abscissa spacing of the demo points
	demoSamples    = 9   // Interpolated points printed per method
)
