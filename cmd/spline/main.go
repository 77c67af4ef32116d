package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tphakala/simd/cpu"

	spline "github.com/tphakala/go-spline"
)

func main() {
	// Command-line flags
	var (
		method         = flag.String("method", defaultMethod, "Interpolation method: quadratic, natural, parametric, catmull-rom")
		inputPath      = flag.String("input", "", "Input CSV file with x,y rows (default: stdin)")
		outputPath     = flag.String("output", "", "Output CSV file (default: stdout)")
		samples        = flag.Int("samples", defaultSampleCount, "Number of output points (quadratic, natural, parametric)")
		segmentSamples = flag.Int("segment-samples", defaultSegmentSamples, "Points per segment (catmull-rom)")
		closed         = flag.Bool("closed", false, "Treat the points as a closed contour (parametric)")
		tolerance      = flag.Float64("tolerance", 0, "Relative slope tolerance (quadratic)")
		verbose        = flag.Bool("v", false, "Verbose output")
		demo           = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	m, err := spline.ParseMethod(*method)
	if err != nil {
		log.Fatalf("Invalid method: %v", err)
	}

	config := &spline.Config{
		Method:         m,
		Closed:         *closed,
		SampleCount:    *samples,
		SegmentSamples: *segmentSamples,
		Tolerance:      *tolerance,
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	points, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read points: %v", err)
	}
	if *closed {
		points = spline.CloseContour(points)
	}

	if *verbose {
		info := spline.GetInfo(m)
		log.Printf("Method: %s (%s, %s)", m, info.Algorithm, info.Continuity)
		log.Printf("SIMD: %s", cpu.Info())
		log.Printf("Input points: %d", len(points))
	}

	var query []float64
	if (m == spline.MethodQuadratic || m == spline.MethodNatural) && len(points) > 0 {
		query = spline.Linspace(points[0].X, points[len(points)-1].X, *samples)
	}

	output, err := spline.Interpolate(config, points, query)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}

	if *verbose {
		log.Printf("Output points: %d", len(output))
	}

	if err := writeOutput(*outputPath, output); err != nil {
		log.Fatalf("Failed to write points: %v", err)
	}
}

// readInput reads points from path, or from stdin when path is empty.
func readInput(path string) ([]spline.Point, error) {
	if path == "" {
		return readPoints(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return readPoints(file)
}

// readPoints parses x,y rows. Blank lines and lines starting with '#' are
// skipped, and a first row that does not parse is treated as a header.
func readPoints(r io.Reader) ([]spline.Point, error) {
	reader := csv.NewReader(r)
	reader.Comment = csvComment
	reader.FieldsPerRecord = csvFields
	reader.TrimLeadingSpace = true

	var points []spline.Point
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		p, err := parsePoint(record)
		if err != nil {
			if row == 0 {
				continue // header
			}
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func parsePoint(record []string) (spline.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(record[0]), floatBits)
	if err != nil {
		return spline.Point{}, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(record[1]), floatBits)
	if err != nil {
		return spline.Point{}, fmt.Errorf("invalid y: %w", err)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return spline.Point{}, fmt.Errorf("x must be finite, got %v", x)
	}
	return spline.Point{X: x, Y: y}, nil
}

// writeOutput writes points to path, or to stdout when path is empty.
func writeOutput(path string, points []spline.Point) error {
	if path == "" {
		return writePoints(os.Stdout, points)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := writePoints(file, points); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func writePoints(w io.Writer, points []spline.Point) error {
	writer := csv.NewWriter(w)
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.X, floatFormat, -1, floatBits),
			strconv.FormatFloat(p.Y, floatFormat, -1, floatBits),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func runDemo() {
	fmt.Println("=== Go Spline Library Demo ===")
	fmt.Printf("SIMD: %s\n", cpu.Info())

	// A step with a plateau: shape preservation matters here.
	points := make([]spline.Point, demoPointCount)
	for i := range points {
		x := float64(i) * demoStep
		points[i] = spline.Point{X: x, Y: math.Round(math.Tanh(2*x-3.5)*4) / 4}
	}
	last := points[len(points)-1].X

	fmt.Println("\nInput points:")
	for _, p := range points {
		fmt.Printf("  %v\n", p)
	}

	for _, m := range []spline.Method{spline.MethodQuadratic, spline.MethodNatural} {
		output, err := spline.Resample(points, m, demoSamples)
		if err != nil {
			fmt.Printf("\n%s: Error - %v\n", m, err)
			continue
		}

		info := spline.GetInfo(m)
		fmt.Printf("\n%s (%s), x from 0 to %g:\n", m, info.Algorithm, last)
		for _, p := range output {
			fmt.Printf("  %v\n", p)
		}
	}

	contour := spline.CloseContour([]spline.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	output, err := spline.ParametricSpline(contour, true, demoSamples)
	if err != nil {
		fmt.Printf("\nparametric: Error - %v\n", err)
		return
	}
	fmt.Println("\nparametric, closed unit square:")
	for _, p := range output {
		fmt.Printf("  %v\n", p)
	}
}
