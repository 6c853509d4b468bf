package proton

import "math"

// Physical constants, MeV units.
const (
	KBethe = 0.307075   // MeV*cm^2/g
	MeC2   = 0.51099895 // electron rest mass
	MpC2   = 938.272088 // proton rest mass
)

// BetaGamma returns the relativistic beta and gamma factors for a
// proton of kinetic energy eMeV. Non-positive energy yields the rest
// frame (beta 0, gamma 1).
func BetaGamma(eMeV float64) (beta, gamma float64) {
	if eMeV <= 0 {
		return 0.0, 1.0
	}
	gamma = 1.0 + eMeV/MpC2
	beta2 := 1.0 - 1.0/(gamma*gamma)
	beta = math.Sqrt(math.Max(beta2, 0.0))
	return beta, gamma
}

// MomentumPC returns the proton momentum times c, in MeV.
func MomentumPC(eMeV float64) float64 {
	if eMeV <= 0 {
		return 0.0
	}
	gamma := 1.0 + eMeV/MpC2
	beta2 := 1.0 - 1.0/(gamma*gamma)
	return MpC2 * gamma * math.Sqrt(math.Max(beta2, 0.0))
}

// WMax is the maximum energy transferable to a free electron in a
// single collision, in MeV.
func WMax(eMeV float64) float64 {
	beta, gamma := BetaGamma(eMeV)
	r := MeC2 / MpC2
	denom := 1 + 2*gamma*r + r*r
	return 2 * MeC2 * beta * beta * gamma * gamma / denom
}
