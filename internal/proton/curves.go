package proton

import (
	"math"

	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/numeric"
)

// StoppingPowerCurve evaluates the Bethe-Bloch mass stopping power
// over an energy grid, divided by density for the plotted form.
// Inherits the strict unknown-material error from StoppingPowerMass.
func StoppingPowerCurve(energiesMeV []float64, name string, tbl *material.Table) ([]float64, error) {
	rho := 1.0
	if p, ok := tbl.Lookup(name); ok {
		rho = p.Rho
	}

	out := make([]float64, len(energiesMeV))
	for i, e := range energiesMeV {
		s, err := StoppingPowerMass(e, name, tbl)
		if err != nil {
			return nil, err
		}
		out[i] = s / math.Max(rho, 1e-6)
	}
	return numeric.Sanitize(out), nil
}

// RangeVsEnergy evaluates the calibrated CSDA range over an energy
// grid. Material resolution is the caller's job; unknown names are
// expected to arrive here already substituted with material.Fallback.
func RangeVsEnergy(energiesMeV []float64, p material.Properties, dEMax float64) []float64 {
	out := make([]float64, len(energiesMeV))
	for i, e := range energiesMeV {
		out[i] = CSDARange(e, p, dEMax)
	}
	return out
}

// LateralSigmaCurve evaluates the Highland lateral spread over a depth
// grid for a beam of initial energy e0MeV.
func LateralSigmaCurve(depthsCm []float64, e0MeV float64, p material.Properties) []float64 {
	out := make([]float64, len(depthsCm))
	for i, z := range depthsCm {
		out[i] = LateralSigma(z, e0MeV, p)
	}
	return out
}
