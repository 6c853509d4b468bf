// Package grid generates the sample grids the interaction models are
// evaluated on. Grids are plain slices, regenerated per request.
package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRange = errors.New("grid: invalid range (need 0 < min < max)")
	ErrInvalidCount = errors.New("grid: need at least 2 points")
)

// Linear returns n evenly spaced samples spanning [min, max].
func Linear(min, max float64, n int) ([]float64, error) {
	if err := check(min, max, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out, nil
}

// Log returns n logarithmically spaced samples spanning [min, max].
func Log(min, max float64, n int) ([]float64, error) {
	if err := check(min, max, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	lo, hi := math.Log10(min), math.Log10(max)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, lo+float64(i)*step)
	}
	out[0] = min
	out[n-1] = max
	return out, nil
}

// FromScale picks Linear or Log by name. Anything starting with "log"
// selects logarithmic spacing; everything else is linear.
func FromScale(scale string, min, max float64, n int) ([]float64, error) {
	if len(scale) >= 3 && (scale[:3] == "log" || scale[:3] == "Log" || scale[:3] == "LOG") {
		return Log(min, max, n)
	}
	return Linear(min, max, n)
}

func check(min, max float64, n int) error {
	if min <= 0 || max <= min {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	return nil
}
