// Command spline-wav upsamples WAV audio files by an integer factor using
// spline interpolation between the original samples.
//
// Usage:
//
//	spline-wav -factor 2 input.wav output.wav
//	spline-wav -factor 4 -method natural input.wav output.wav
//	spline-wav -factor 2 -parallel=false input.wav out.wav   # Disable parallel processing
//
// The output sample rate is the input rate times the factor. Every original
// sample is kept; the spline fills in factor-1 samples between each pair.
// Parallel processing is enabled by default for stereo/multichannel files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	"github.com/tphakala/simd/cpu"

	spline "github.com/tphakala/go-spline"
)

const (
	// Number of interleaved values read per chunk
	bufferSize = 65536

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%

	// WAV format tag for integer PCM
	wavFormatPCM = 1

	// CLI defaults
	defaultFactor   = 2
	defaultMethod   = "quadratic"
	minRequiredArgs = 2
	percentScale    = 100
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	factor := flag.Int("factor", defaultFactor, "Upsampling factor (output rate = input rate * factor)")
	method := flag.String("method", defaultMethod, "Interpolation method: quadratic, natural, catmull-rom")
	parallel := flag.Bool("parallel", true, "Enable parallel channel processing (faster for stereo/multichannel)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	// Validate arguments before setting up profiling
	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -factor 2 input.wav output.wav               # 44.1kHz -> 88.2kHz\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -factor 4 -method natural in.wav out.wav     # Smoother, may overshoot\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	config, err := newConfig(*method, *factor, *parallel)
	if err != nil {
		return err
	}

	// Start CPU profiling if requested (for PGO)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]

	if *verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Factor: %d", *factor)
		log.Printf("Method: %s (%s)", config.Method, spline.GetInfo(config.Method).Algorithm)
		log.Printf("SIMD: %s", cpu.Info())
		if *parallel {
			log.Printf("Parallel: enabled (concurrent channel processing)")
		} else {
			log.Printf("Parallel: disabled (sequential processing)")
		}
	}

	// Process the file
	start := time.Now()
	stats, err := upsampleWAV(inputPath, outputPath, config, *factor, *verbose)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Print summary
	fmt.Printf("Upsampled %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d Hz -> %d Hz (%d channels, %d-bit, %s)\n",
		stats.inputRate, stats.outputRate, stats.channels, stats.bitDepth, config.Method)
	fmt.Printf("  %d samples -> %d samples\n", stats.inputSamples, stats.outputSamples)
	fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
		elapsed.Seconds(),
		float64(stats.inputSamples)/float64(stats.inputRate)/elapsed.Seconds())

	return nil
}

type upsampleStats struct {
	inputRate     int
	outputRate    int
	channels      int
	bitDepth      int
	inputSamples  int64
	outputSamples int64
}

// newConfig builds the spline configuration for upsampling with method.
// Parametric splines are rejected because they do not sample evenly in time.
func newConfig(method string, factor int, parallel bool) (*spline.Config, error) {
	if factor < 1 {
		return nil, fmt.Errorf("factor must be at least 1, got %d", factor)
	}

	m, err := spline.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	if m == spline.MethodParametric {
		return nil, fmt.Errorf("method %s is not supported for audio", m)
	}

	config := &spline.Config{
		Method:         m,
		SegmentSamples: factor,
		EnableParallel: parallel,
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func upsampleWAV(inputPath, outputPath string, config *spline.Config, factor int, verbose bool) (*upsampleStats, error) {
	// 1. Open and validate input
	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	// 2. Decode all samples; natural splines need the whole signal
	progress := newProgressTracker(input.totalSamples, verbose)
	channels, err := readChannels(input, progress)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 || len(channels[0]) == 0 {
		return nil, fmt.Errorf("no audio data in %s", inputPath)
	}
	numSamples := len(channels[0])

	// 3. Interpolate every channel
	series := channelSeries(channels)
	upsampled, err := spline.InterpolateSeries(config, series, upsampleQuery(numSamples, factor))
	if err != nil {
		return nil, fmt.Errorf("interpolation failed: %w", err)
	}

	// 4. Interleave and write
	outputRate := input.rate * factor
	data := interleaveSeries(upsampled, getMaxValue(input.bitDepth))
	if err := writeWAV(outputPath, outputRate, input.bitDepth, input.channels, data); err != nil {
		return nil, err
	}

	return &upsampleStats{
		inputRate:     input.rate,
		outputRate:    outputRate,
		channels:      input.channels,
		bitDepth:      input.bitDepth,
		inputSamples:  int64(numSamples),
		outputSamples: int64(len(upsampled[0])),
	}, nil
}
