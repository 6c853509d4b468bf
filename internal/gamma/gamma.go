// Package gamma models photon attenuation in the MeV range:
// photoelectric absorption, Compton scattering and pair production.
// Coefficients are heuristic, tuned for trend shape rather than
// metrology. Energies in MeV, mass attenuation in cm^2/g, linear
// attenuation in 1/cm.
package gamma

import (
	"math"

	"github.com/san-kum/radsim/internal/numeric"
)

// PairThresholdMeV is twice the electron rest mass, the minimum photon
// energy for electron-positron pair creation.
const PairThresholdMeV = 1.022

// muFloor keeps photoelectric and Compton curves off exact zero so
// log-scale consumers stay finite. Pair production is not floored:
// below threshold the process is physically absent, not negligible.
const muFloor = 1e-6

// Result holds all attenuation curves for one material on a shared MeV
// grid, in both mass (MuRho, cm^2/g) and linear (Mu, 1/cm) form.
type Result struct {
	Energies []float64

	PhotoMuRho   []float64
	ComptonMuRho []float64
	PairMuRho    []float64
	TotalMuRho   []float64

	PhotoMu   []float64
	ComptonMu []float64
	PairMu    []float64
	TotalMu   []float64

	ThresholdMeV float64
}

// PhotoelectricMuRho is ~ Z^4 / E^3, floored at muFloor.
func PhotoelectricMuRho(z float64, energiesMeV []float64) []float64 {
	const k = 4e-3
	out := make([]float64, len(energiesMeV))
	for i, e := range energiesMeV {
		out[i] = k * math.Pow(z, 4) / (e * e * e)
	}
	return numeric.FloorAt(numeric.Sanitize(out), muFloor)
}

// ComptonMuRho falls gently with energy, scaled by electron density
// through (Z/20)^0.85.
func ComptonMuRho(z float64, energiesMeV []float64) []float64 {
	base := 0.020 * math.Pow(z/20.0, 0.85)
	out := make([]float64, len(energiesMeV))
	for i, e := range energiesMeV {
		out[i] = base / math.Pow(1.0+e/0.5, 0.9)
	}
	return numeric.FloorAt(numeric.Sanitize(out), muFloor)
}

// PairMuRho is exactly zero below threshold and grows logarithmically
// above it.
func PairMuRho(z float64, energiesMeV []float64) []float64 {
	scale := 0.004 * math.Pow(z/50.0, 1.8)
	out := make([]float64, len(energiesMeV))
	for i, e := range energiesMeV {
		if e < PairThresholdMeV {
			continue
		}
		out[i] = scale * math.Log(e/PairThresholdMeV+1e-9) / math.Pow(e, 0.7)
	}
	return numeric.FloorAt(numeric.Sanitize(out), 0)
}

// Interactions evaluates all processes for one material. Both the mass
// and linear forms are filled so callers can pick either without
// recomputing.
func Interactions(z, rho float64, energiesMeV []float64) Result {
	r := Result{
		Energies:     energiesMeV,
		PhotoMuRho:   PhotoelectricMuRho(z, energiesMeV),
		ComptonMuRho: ComptonMuRho(z, energiesMeV),
		PairMuRho:    PairMuRho(z, energiesMeV),
		ThresholdMeV: PairThresholdMeV,
	}

	n := len(energiesMeV)
	r.TotalMuRho = make([]float64, n)
	for i := 0; i < n; i++ {
		r.TotalMuRho[i] = r.PhotoMuRho[i] + r.ComptonMuRho[i] + r.PairMuRho[i]
	}

	rho = math.Max(rho, 1e-6)
	r.PhotoMu = scaled(r.PhotoMuRho, rho)
	r.ComptonMu = scaled(r.ComptonMuRho, rho)
	r.PairMu = scaled(r.PairMuRho, rho)
	r.TotalMu = scaled(r.TotalMuRho, rho)
	return r
}

func scaled(xs []float64, f float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = v * f
	}
	return out
}
