package proton

import (
	"math"

	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/numeric"
)

// Defaults for the Bragg generator: depth step (cm) and smoothing
// sigma as a fraction of the calibrated range.
const (
	DefaultDxCm       = 0.01
	DefaultSmoothFrac = 0.015
)

// BraggCurve steps a proton of initial energy e0MeV through the
// material in fixed depth increments, recording dE/dx as the local
// dose. The dose is peak-normalized, the depth axis rescaled so the
// final depth matches TargetRange, and, for smoothFrac > 0, the curve
// is smoothed with a Gaussian kernel and re-normalized. Returns the
// depth grid (cm), the relative dose and the calibrated range (cm).
// The index of the dose maximum is the Bragg peak.
func BraggCurve(e0MeV float64, p material.Properties, dxCm, smoothFrac float64) (depth, dose []float64, rangeCm float64) {
	if e0MeV <= 0 {
		return []float64{0.0}, []float64{0.0}, 0.0
	}
	if dxCm <= 0 {
		dxCm = DefaultDxCm
	}

	e := e0MeV
	depth = []float64{0.0}
	dose = []float64{0.0}
	x := 0.0

	for e > 0 {
		dEdx := stoppingPowerLinear(e, p)
		if dEdx <= 0 {
			break
		}
		dose = append(dose, dEdx)
		x += dxCm
		depth = append(depth, x)
		e = math.Max(e-dEdx*dxCm, 0.0)
		if x > maxDepthCm {
			break
		}
	}

	numeric.NormalizePeak(dose)

	rRaw := depth[len(depth)-1]
	scale := 1.0
	if rRaw > 0 {
		scale = TargetRange(e0MeV, p.Rho) / rRaw
	}
	for i := range depth {
		depth[i] *= scale
	}
	rangeCm = depth[len(depth)-1]

	if smoothFrac > 0 && len(depth) > 3 {
		sigma := math.Max(smoothFrac*rangeCm, 2*dxCm*scale)
		dose = numeric.GaussianSmooth(dose, sigma, dxCm*scale)
		numeric.NormalizePeak(dose)
	}

	return depth, dose, rangeCm
}
