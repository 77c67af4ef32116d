package spline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-spline/internal/engine"
	"github.com/tphakala/go-spline/internal/geom"
)

// Point is a 2-D data point.
type Point = geom.Point

// IntervalT addresses a position on a Catmull-Rom curve: the segment that
// starts at point Interval and a parameter T in [0, 1] along it.
type IntervalT = engine.IntervalT

// Method selects the interpolation algorithm.
type Method int

const (
	// MethodQuadratic uses shape-preserving quadratic splines. The curve
	// never overshoots: monotone and convex runs of data stay that way.
	MethodQuadratic Method = iota

	// MethodNatural uses natural cubic splines with zero curvature at both
	// ends. Smooth (C2) but may overshoot.
	MethodNatural

	// MethodParametric uses cubic splines parametrised by arc length. It
	// handles curves that double back in x, including closed contours.
	MethodParametric

	// MethodCatmullRom uses Catmull-Rom splines. Each segment only depends
	// on its four nearest points.
	MethodCatmullRom
)

var methodNames = map[Method]string{
	MethodQuadratic:  "quadratic",
	MethodNatural:    "natural",
	MethodParametric: "parametric",
	MethodCatmullRom: "catmull-rom",
}

// String returns the name ParseMethod accepts for m.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod converts a method name to a Method. Matching ignores case, and
// "catmullrom" is accepted as well as "catmull-rom".
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "catmullrom" {
		return MethodCatmullRom, nil
	}
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, name)
}

// Config holds interpolation configuration.
type Config struct {
	// Method selects the interpolation algorithm.
	Method Method

	// Closed treats the points as a closed contour. The first point must be
	// repeated at the end (see CloseContour). Parametric only.
	Closed bool

	// SampleCount is the number of points produced by the parametric method,
	// evenly spaced in arc length. Must be at least 2 for that method.
	SampleCount int

	// SegmentSamples is the number of points produced per segment by the
	// Catmull-Rom method. Must be at least 1 for that method.
	SegmentSamples int

	// Tolerance is the relative tolerance the quadratic method uses when a
	// derivative is nearly equal to the chord slope or twice it. Zero
	// selects exact comparisons.
	Tolerance float64

	// EnableParallel enables parallel series processing.
	// When true, InterpolateSeries runs one goroutine per series.
	// Has no effect on a single series.
	EnableParallel bool
}

// Common errors returned by the interpolators.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid spline configuration")

	// ErrTooFewPoints indicates the input has fewer points than the method
	// needs.
	ErrTooFewPoints = errors.New("too few points")

	// ErrUnorderedQuery indicates the abscissas to evaluate are not in
	// ascending order.
	ErrUnorderedQuery = engine.ErrUnorderedQuery

	// ErrDegenerateInput indicates non-increasing abscissas or coincident
	// consecutive points.
	ErrDegenerateInput = engine.ErrDegenerateInput

	// ErrSingularSystem indicates the spline's linear system could not be
	// solved.
	ErrSingularSystem = engine.ErrSingularSystem
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, ok := methodNames[c.Method]; !ok {
		return fmt.Errorf("%w: unknown method %d", ErrInvalidConfig, int(c.Method))
	}

	if c.Closed && c.Method != MethodParametric {
		return fmt.Errorf("%w: closed curves need the %s method", ErrInvalidConfig, MethodParametric)
	}

	if c.Method == MethodParametric && c.SampleCount < minSampleCount {
		return fmt.Errorf("%w: sample count must be at least %d", ErrInvalidConfig, minSampleCount)
	}

	if c.Method == MethodCatmullRom && c.SegmentSamples < 1 {
		return fmt.Errorf("%w: segment samples must be at least 1", ErrInvalidConfig)
	}

	if c.Tolerance < 0 || c.Tolerance >= maxTolerance {
		return fmt.Errorf("%w: tolerance must be in [0, %v)", ErrInvalidConfig, maxTolerance)
	}

	return nil
}

// MinPoints returns the fewest points method m accepts.
func (m Method) MinPoints() int {
	if m == MethodCatmullRom {
		return minCatmullRomPoints
	}
	return minSplinePoints
}

// Interpolate runs the configured method over original.
//
// For the quadratic and natural methods query holds the abscissas to
// evaluate. The parametric and Catmull-Rom methods ignore query and produce
// SampleCount points, or SegmentSamples points per segment plus the end
// point, respectively.
func Interpolate(config *Config, original []Point, query []float64) ([]Point, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return interpolate(config, original, query)
}

// interpolate dispatches to the engine for a validated config.
func interpolate(config *Config, original []Point, query []float64) ([]Point, error) {
	if err := checkPoints(config.Method, original); err != nil {
		return nil, err
	}

	switch config.Method {
	case MethodQuadratic:
		return engine.QuadraticSpline(original, query, config.Tolerance)
	case MethodNatural:
		return engine.NaturalSpline(original, query)
	case MethodParametric:
		return engine.ParametricSpline(original, config.Closed, config.SampleCount)
	default:
		return engine.CatmullRomSpline(original, engine.CatmullRomQueries(len(original), config.SegmentSamples)), nil
	}
}

// checkPoints enforces the minimum input size of method.
func checkPoints(method Method, original []Point) error {
	if len(original) < method.MinPoints() {
		return fmt.Errorf("%w: %s needs at least %d, got %d",
			ErrTooFewPoints, method, method.MinPoints(), len(original))
	}
	return nil
}

// Info describes an interpolation method.
type Info struct {
	// Algorithm describes the interpolation algorithm.
	Algorithm string

	// Continuity is the smoothness of the curve at the data points.
	Continuity string

	// MinPoints is the fewest points the method accepts.
	MinPoints int

	// ShapePreserving reports whether the curve follows the monotonicity
	// and convexity of the data.
	ShapePreserving bool

	// SIMDType describes the SIMD instruction sets available for vector
	// reductions.
	SIMDType string
}

// GetInfo returns information about method m.
func GetInfo(m Method) Info {
	info := Info{
		MinPoints: m.MinPoints(),
		SIMDType:  cpu.Info(),
	}

	switch m {
	case MethodQuadratic:
		info.Algorithm = "shape-preserving quadratic spline (McAllister-Roulier)"
		info.Continuity = "C1"
		info.ShapePreserving = true
	case MethodNatural:
		info.Algorithm = "natural cubic spline"
		info.Continuity = "C2"
	case MethodParametric:
		info.Algorithm = "arc-length parametric cubic spline"
		info.Continuity = "C2"
	case MethodCatmullRom:
		info.Algorithm = "Catmull-Rom spline"
		info.Continuity = "C1"
	default:
		info.Algorithm = "unknown"
	}
	return info
}
