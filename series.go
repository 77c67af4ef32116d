package spline

import (
	"fmt"
	"sync"
)

// InterpolateSeries runs the configured method over each series with the
// same query, as Interpolate does for one series.
//
// When EnableParallel is set, series are processed concurrently. Otherwise
// they are processed sequentially. The first error aborts the result.
func InterpolateSeries(config *Config, series [][]Point, query []float64) ([][]Point, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	output := make([][]Point, len(series))

	// Sequential processing (default or when parallel disabled)
	if !config.EnableParallel || len(series) <= 1 {
		for i := range series {
			result, err := interpolate(config, series[i], query)
			if err != nil {
				return nil, fmt.Errorf("series %d: %w", i, err)
			}
			output[i] = result
		}
		return output, nil
	}

	// Parallel processing: one goroutine per series
	var wg sync.WaitGroup
	errChan := make(chan error, len(series))

	for i := range series {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			result, err := interpolate(config, series[index], query)
			if err != nil {
				errChan <- fmt.Errorf("series %d: %w", index, err)
				return
			}
			output[index] = result
		}(i)
	}

	wg.Wait()
	close(errChan)

	// Check for errors
	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}
