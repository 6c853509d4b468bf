// Package xray models the relative probabilities of the three photon
// interaction processes in the diagnostic energy range (keV). The
// curves are qualitative cross-section proxies, not barns: they exist
// to show how the processes trade off with energy and Z.
package xray

import (
	"math"

	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/numeric"
)

// Fraction of photoelectric probability remaining below each
// absorption edge.
const (
	KJumpFactor = 0.15
	LJumpFactor = 0.05
)

// CurveSet holds the three relative interaction curves evaluated on a
// shared keV grid. All slices have identical length.
type CurveSet struct {
	Energies      []float64
	Photoelectric []float64
	Compton       []float64
	Rayleigh      []float64
}

// Photoelectric scales as Z^3 / E^3.5, density-weighted, with the
// probability dropping by the jump factor below the K-edge and harder
// still below the L-edge.
func Photoelectric(z float64, energiesKeV []float64, ekKeV, elKeV, rho float64) []float64 {
	out := make([]float64, len(energiesKeV))
	for i, e := range energiesKeV {
		v := (z * z * z) / math.Pow(e, 3.5)
		switch {
		case e < elKeV:
			v *= LJumpFactor
		case e < ekKeV:
			v *= KJumpFactor
		}
		out[i] = v * rho
	}
	return out
}

// Compton scales as Z * ln(E+1) / E^1.2, density-weighted.
func Compton(z float64, energiesKeV []float64, rho float64) []float64 {
	out := make([]float64, len(energiesKeV))
	for i, e := range energiesKeV {
		out[i] = z * math.Log(e+1) / math.Pow(e, 1.2) * rho
	}
	return out
}

// Rayleigh scales as Z^2 / E^2.2, density-weighted.
func Rayleigh(z float64, energiesKeV []float64, rho float64) []float64 {
	out := make([]float64, len(energiesKeV))
	for i, e := range energiesKeV {
		out[i] = (z * z) / math.Pow(e, 2.2) * rho
	}
	return out
}

// Curves evaluates all three processes for one material. Untabulated
// edges take the package defaults via Properties.KEdge/LEdge.
func Curves(p material.Properties, energiesKeV []float64) CurveSet {
	return CurveSet{
		Energies:      energiesKeV,
		Photoelectric: Photoelectric(p.Z, energiesKeV, p.KEdge(), p.LEdge(), p.Rho),
		Compton:       Compton(p.Z, energiesKeV, p.Rho),
		Rayleigh:      Rayleigh(p.Z, energiesKeV, p.Rho),
	}
}

// Shares returns the set renormalized so the three processes sum to 1
// at every grid point, the "probability share" view.
func (c CurveSet) Shares() CurveSet {
	norm := numeric.NormalizeShares(c.Photoelectric, c.Compton, c.Rayleigh)
	return CurveSet{
		Energies:      c.Energies,
		Photoelectric: norm[0],
		Compton:       norm[1],
		Rayleigh:      norm[2],
	}
}
