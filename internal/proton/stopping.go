package proton

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/radsim/internal/material"
)

var ErrUnknownMaterial = errors.New("proton: unknown material")

// StoppingPowerMass computes the Bethe-Bloch mass stopping power
// (MeV*cm^2/g) for a proton of kinetic energy eMeV. Material-dependent
// inputs beyond Z use coarse approximations: A is 14.99 for water and
// 27.0 otherwise, the mean excitation energy 75 eV for water and
// 100 eV otherwise. Unlike the curve helpers, an unknown material is
// an error here, not a fallback.
func StoppingPowerMass(eMeV float64, name string, tbl *material.Table) (float64, error) {
	p, ok := tbl.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	if eMeV <= 0 {
		return 0.0, nil
	}

	a := 27.0
	iMeV := 100e-6
	if p.IsWater() {
		a = 14.99
		iMeV = 75e-6
	}

	beta, gamma := BetaGamma(eMeV)
	if beta <= 0 {
		return 0.0, nil
	}
	wmax := WMax(eMeV)

	term := math.Log((2*MeC2*beta*beta*gamma*gamma*wmax)/(iMeV*iMeV)) - 2*beta*beta
	return KBethe * (p.Z / a) * (1.0 / (beta * beta)) * term, nil
}

// stoppingPowerLinear is the reduced Bethe-Bloch dE/dx (MeV/cm) used
// by the depth-stepping integrators. It keeps the 1/beta^2 prefactor,
// so dE/dx grows as the proton slows and the dose maximum lands at the
// end of range; the Wmax and shell terms are dropped since the depth
// scale is recalibrated against TargetRange afterwards. Energy is
// floored before the kinematics and the log bracket is clamped where
// it turns negative in the sub-50 keV tail, keeping downstream step
// sizes strictly positive.
func stoppingPowerLinear(eMeV float64, p material.Properties) float64 {
	if eMeV <= 0 {
		eMeV = 1e-6
	}
	i := 16 * math.Pow(p.Z, 0.9) * 1e-6 // mean excitation potential, MeV
	a := 2 * p.Z
	beta, gamma := BetaGamma(eMeV)
	term := math.Log(2*MeC2*beta*beta*gamma*gamma/i) - beta*beta
	term = math.Max(term, 0.1)
	return math.Max((KBethe*p.Z/a)*p.Rho*term/(beta*beta), 1e-6)
}
