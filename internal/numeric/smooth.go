package numeric

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// GaussianSmooth convolves ys with a normalized Gaussian kernel of the
// given sigma, where dx is the sample spacing. The result has the same
// length as the input ("same"-mode convolution). Inputs too short to
// smooth, or a non-positive sigma/dx, come back as a copy.
func GaussianSmooth(ys []float64, sigma, dx float64) []float64 {
	out := make([]float64, len(ys))
	copy(out, ys)
	if sigma <= 0 || dx <= 0 || len(ys) < 4 {
		return out
	}

	halfwin := int(math.Max(3, sigma/dx))
	kernel := make([]float64, 2*halfwin+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i-halfwin) * dx
		kernel[i] = math.Exp(-0.5 * (x / sigma) * (x / sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return convolveSame(ys, kernel)
}

// convolveSame computes the linear convolution of ys with kernel via
// FFT and returns the center len(ys) samples.
func convolveSame(ys, kernel []float64) []float64 {
	n, m := len(ys), len(kernel)
	size := n + m - 1
	a := make([]complex128, size)
	b := make([]complex128, size)
	for i, v := range ys {
		a[i] = complex(v, 0)
	}
	for i, v := range kernel {
		b[i] = complex(v, 0)
	}
	full := fft.Convolve(a, b)
	out := make([]float64, n)
	off := (m - 1) / 2
	for i := range out {
		out[i] = real(full[off+i])
	}
	return out
}
