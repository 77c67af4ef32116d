package spline

import (
	"errors"
	"math"
	"testing"
)

// sineSeries returns count series of n points on phase-shifted sines.
func sineSeries(count, n int) [][]Point {
	series := make([][]Point, count)
	for s := range count {
		phase := float64(s) * math.Pi / 4
		series[s] = make([]Point, n)
		for i := range n {
			x := float64(i) * 0.1
			series[s][i] = Point{X: x, Y: math.Sin(x + phase)}
		}
	}
	return series
}

// TestInterpolateSeriesParallel tests that parallel processing produces correct results.
func TestInterpolateSeriesParallel(t *testing.T) {
	const (
		numSeries = 4
		numPoints = 200
	)

	series := sineSeries(numSeries, numPoints)
	query := Linspace(0, float64(numPoints-1)*0.1, 1000)

	for _, method := range []Method{MethodQuadratic, MethodNatural, MethodParametric, MethodCatmullRom} {
		t.Run(method.String(), func(t *testing.T) {
			configSeq := &Config{Method: method, SampleCount: 500, SegmentSamples: 4}
			configPar := &Config{Method: method, SampleCount: 500, SegmentSamples: 4, EnableParallel: true}

			outputSeq, err := InterpolateSeries(configSeq, series, query)
			if err != nil {
				t.Fatalf("Sequential InterpolateSeries failed: %v", err)
			}
			outputPar, err := InterpolateSeries(configPar, series, query)
			if err != nil {
				t.Fatalf("Parallel InterpolateSeries failed: %v", err)
			}

			if len(outputSeq) != len(outputPar) {
				t.Fatalf("Series count mismatch: seq=%d, par=%d", len(outputSeq), len(outputPar))
			}

			for s := range numSeries {
				if len(outputSeq[s]) != len(outputPar[s]) {
					t.Fatalf("Series %d length mismatch: seq=%d, par=%d",
						s, len(outputSeq[s]), len(outputPar[s]))
				}

				// Verify outputs are identical (bit-exact)
				for i := range outputSeq[s] {
					if outputSeq[s][i] != outputPar[s][i] {
						t.Errorf("Series %d point %d mismatch: seq=%v, par=%v",
							s, i, outputSeq[s][i], outputPar[s][i])
						break // Don't flood with errors
					}
				}
			}
		})
	}
}

// TestInterpolateSeriesIndependence verifies series are processed independently.
func TestInterpolateSeriesIndependence(t *testing.T) {
	const numPoints = 100

	series := sineSeries(2, numPoints)
	for i := range series[0] {
		series[0][i].Y = 0 // Flat series
	}

	config := &Config{Method: MethodNatural, EnableParallel: true}
	output, err := InterpolateSeries(config, series, Linspace(0, 9.9, 500))
	if err != nil {
		t.Fatalf("InterpolateSeries failed: %v", err)
	}

	for _, p := range output[0] {
		if math.Abs(p.Y) > 1e-12 {
			t.Fatalf("Flat series has non-zero output: %v", p)
		}
	}

	var maxY float64
	for _, p := range output[1] {
		maxY = math.Max(maxY, math.Abs(p.Y))
	}
	if maxY < 0.9 {
		t.Errorf("Sine series has too low amplitude: max=%v", maxY)
	}
}

// TestInterpolateSeriesError verifies a failing series fails the whole call.
func TestInterpolateSeriesError(t *testing.T) {
	series := sineSeries(3, 20)
	series[1] = series[1][:2]

	for _, parallel := range []bool{false, true} {
		config := &Config{Method: MethodQuadratic, EnableParallel: parallel}
		output, err := InterpolateSeries(config, series, []float64{0.5})
		if !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("parallel=%v: error = %v, want ErrTooFewPoints", parallel, err)
		}
		if output != nil {
			t.Errorf("parallel=%v: output should be nil on error", parallel)
		}
	}
}

// TestInterpolateSeriesSingleFallback verifies a single series works with parallel enabled.
func TestInterpolateSeriesSingleFallback(t *testing.T) {
	config := &Config{Method: MethodQuadratic, EnableParallel: true}

	output, err := InterpolateSeries(config, sineSeries(1, 50), []float64{0.05, 1.25, 3.3})
	if err != nil {
		t.Fatalf("InterpolateSeries failed: %v", err)
	}
	if len(output) != 1 || len(output[0]) != 3 {
		t.Errorf("Unexpected output shape: %d series", len(output))
	}
}

func TestInterpolateSeriesInvalidConfig(t *testing.T) {
	if _, err := InterpolateSeries(nil, sineSeries(1, 10), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil config: error = %v, want ErrInvalidConfig", err)
	}
	config := &Config{Method: MethodParametric}
	if _, err := InterpolateSeries(config, sineSeries(1, 10), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("parametric without samples: error = %v, want ErrInvalidConfig", err)
	}
}
