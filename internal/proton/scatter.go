package proton

import (
	"math"

	"github.com/san-kum/radsim/internal/material"
)

// HighlandTheta0 returns the characteristic multiple-scattering angle
// (radians) after traversing depthCm of material, per the Highland
// formula. The radiation length is 36.08 g/cm^2 for water and 25.0
// otherwise, converted to cm by the density. Non-positive depth,
// energy, momentum or beta all return 0.
func HighlandTheta0(depthCm, e0MeV float64, p material.Properties) float64 {
	x0 := 25.0
	if p.IsWater() {
		x0 = 36.08
	}
	x0cm := x0 / math.Max(p.Rho, 1e-6)

	if depthCm <= 0 || e0MeV <= 0 {
		return 0.0
	}
	pc := MomentumPC(e0MeV)
	beta, _ := BetaGamma(e0MeV)
	if pc <= 0 || beta <= 0 {
		return 0.0
	}
	t := math.Max(depthCm/x0cm, 1e-8)
	return 13.6 / (beta * pc) * math.Sqrt(t) * (1.0 + 0.038*math.Log(t))
}

// LateralSigma is the RMS lateral beam spread (cm) at the given depth.
func LateralSigma(depthCm, e0MeV float64, p material.Properties) float64 {
	theta0 := HighlandTheta0(depthCm, e0MeV, p)
	return theta0 * depthCm / math.Sqrt(3.0)
}
