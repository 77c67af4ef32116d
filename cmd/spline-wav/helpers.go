package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"

	spline "github.com/tphakala/go-spline"
)

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	// Open input file
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	// Create WAV decoder
	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	// Read format info
	format := decoder.Format()
	inputRate := format.SampleRate
	channels := format.NumChannels
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", inputRate, channels, bitDepth)
	}

	// Get total duration for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalSamples := int64(duration.Seconds() * float64(inputRate))

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         inputRate,
		channels:     channels,
		bitDepth:     bitDepth,
		totalSamples: totalSamples,
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// readChannels decodes the whole file into per-channel samples normalised to
// [-1, 1].
func readChannels(input *wavInputInfo, progress *progressTracker) ([][]float64, error) {
	intBuffer := &audio.IntBuffer{
		Data:   make([]int, bufferSize*input.channels),
		Format: input.format,
	}
	channels := make([][]float64, input.channels)
	invMaxVal := 1.0 / getMaxValue(input.bitDepth)

	var read int64
	for {
		n, err := input.decoder.PCMBuffer(intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		// n counts interleaved values, not frames.
		frames := n / input.channels
		appendDeinterleaved(channels, intBuffer.Data[:frames*input.channels], invMaxVal)

		read += int64(frames)
		progress.reportIfNeeded(read)
	}
	return channels, nil
}

// appendDeinterleaved splits interleaved samples into channels and scales the
// appended part of each channel by invMaxVal.
func appendDeinterleaved(channels [][]float64, data []int, invMaxVal float64) {
	numChannels := len(channels)
	frames := len(data) / numChannels

	for ch := range numChannels {
		start := len(channels[ch])
		buf := append(channels[ch], make([]float64, frames)...)
		for i := range frames {
			buf[start+i] = float64(data[i*numChannels+ch])
		}
		chunk := buf[start:]
		f64.Scale(chunk, chunk, invMaxVal)
		channels[ch] = buf
	}
}

// channelSeries turns each channel into points with the sample index as x.
func channelSeries(channels [][]float64) [][]spline.Point {
	series := make([][]spline.Point, len(channels))
	for ch, samples := range channels {
		points := make([]spline.Point, len(samples))
		for i, s := range samples {
			points[i] = spline.Point{X: float64(i), Y: s}
		}
		series[ch] = points
	}
	return series
}

// upsampleQuery returns the sample positions of an n-sample signal upsampled
// by factor. Every original sample position is hit exactly.
func upsampleQuery(n, factor int) []float64 {
	if n == 0 {
		return nil
	}
	query := make([]float64, (n-1)*factor+1)
	for k := range query {
		query[k] = float64(k) / float64(factor)
	}
	return query
}

// interleaveSeries converts per-channel points to interleaved int samples,
// clamping to [-1, 1] before scaling by maxVal. All series must have the same
// length.
func interleaveSeries(series [][]spline.Point, maxVal float64) []int {
	if len(series) == 0 || len(series[0]) == 0 {
		return nil
	}

	numChannels := len(series)
	frames := len(series[0])
	result := make([]int, frames*numChannels)

	for i := range frames {
		base := i * numChannels
		for ch := range numChannels {
			sample := min(max(series[ch][i].Y, -1.0), 1.0)
			result[base+ch] = int(sample * maxVal)
		}
	}
	return result
}

// writeWAV encodes interleaved PCM samples to path.
func writeWAV(path string, sampleRate, bitDepth, channels int, data []int) (err error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
	}()

	encoder := wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	// Close writes the final chunk sizes into the header.
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Decoding: %d%%", progress)
		p.lastProgress = progress
	}
}
