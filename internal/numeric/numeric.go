// Package numeric holds the clipping, normalization and smoothing
// helpers shared by the interaction models. The per-formula flooring
// policy lives at each model; the mechanics live here.
package numeric

import "math"

// Sanitize replaces NaN and +/-Inf with 0, in place, and returns xs.
func Sanitize(xs []float64) []float64 {
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			xs[i] = 0
		}
	}
	return xs
}

// FloorAt raises every element below floor up to floor, in place.
func FloorAt(xs []float64, floor float64) []float64 {
	for i, v := range xs {
		if v < floor {
			xs[i] = floor
		}
	}
	return xs
}

func Max(xs []float64) float64 {
	m := math.Inf(-1)
	for _, v := range xs {
		if v > m {
			m = v
		}
	}
	return m
}

// NormalizePeak scales xs so its maximum is 1. A non-positive maximum
// leaves the slice unchanged.
func NormalizePeak(xs []float64) []float64 {
	m := Max(xs)
	if m <= 0 {
		return xs
	}
	for i := range xs {
		xs[i] /= m
	}
	return xs
}

// NormalizeShares divides each curve elementwise by the sum across all
// curves, so at every sample point the results sum to 1. A zero sum is
// treated as 1, which keeps all-zero points at zero instead of NaN.
func NormalizeShares(curves ...[]float64) [][]float64 {
	if len(curves) == 0 {
		return nil
	}
	n := len(curves[0])
	total := make([]float64, n)
	for _, c := range curves {
		for i, v := range c {
			total[i] += v
		}
	}
	for i, v := range total {
		if v == 0 {
			total[i] = 1
		}
	}
	out := make([][]float64, len(curves))
	for j, c := range curves {
		out[j] = make([]float64, n)
		for i, v := range c {
			out[j][i] = v / total[i]
		}
	}
	return out
}
