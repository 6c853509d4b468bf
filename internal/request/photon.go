package request

import (
	"fmt"

	"github.com/san-kum/radsim/internal/gamma"
	"github.com/san-kum/radsim/internal/grid"
	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/xray"
)

// XRay requests the relative x-ray interaction curves for one
// material, optionally compared against a second. Energies in keV.
type XRay struct {
	EminKeV  float64      `validate:"gt=0"`
	EmaxKeV  float64      `validate:"gtfield=EminKeV"`
	Points   int          `validate:"gt=1"`
	Material MaterialRef  `validate:"required"`
	Compare  *MaterialRef // optional second material
	Shares   bool         // normalize processes to probability shares
}

func DefaultXRay() XRay {
	return XRay{EminKeV: 20, EmaxKeV: 120, Points: 300, Material: Ref("water"), Shares: true}
}

func (r XRay) Validate() error {
	return validate.Struct(r)
}

func (r XRay) Curves(tbl *material.Table) (Curves, error) {
	if err := r.Validate(); err != nil {
		return Curves{}, err
	}
	g, err := grid.Log(r.EminKeV, r.EmaxKeV, r.Points)
	if err != nil {
		return Curves{}, err
	}

	// first material falls back for unknown names; a second material
	// must resolve on its own or the comparison is rejected
	p1, err := r.Material.resolve(tbl, false)
	if err != nil {
		return Curves{}, err
	}

	out := Curves{
		Title:  fmt.Sprintf("X-ray interactions — %s", p1.Name),
		XLabel: "Energy (keV)",
		YLabel: "Relative probability",
		X:      g,
	}
	out.Series = appendXRaySeries(out.Series, p1, g, r.Shares)

	if r.Compare != nil {
		p2, err := r.Compare.resolve(tbl, true)
		if err != nil {
			return Curves{}, err
		}
		out.Title = fmt.Sprintf("X-ray interactions — %s vs %s", p1.Name, p2.Name)
		out.Series = appendXRaySeries(out.Series, p2, g, r.Shares)
	}
	return out, nil
}

func appendXRaySeries(dst []Series, p material.Properties, g []float64, shares bool) []Series {
	c := xray.Curves(p, g)
	if shares {
		c = c.Shares()
	}
	return append(dst,
		Series{Label: p.Name + " photoelectric", Values: c.Photoelectric},
		Series{Label: p.Name + " compton", Values: c.Compton},
		Series{Label: p.Name + " rayleigh", Values: c.Rayleigh},
	)
}

// Gamma requests attenuation curves in the MeV range, optionally for
// two materials side by side. MassCoeff selects mu/rho over mu.
type Gamma struct {
	EminMeV   float64     `validate:"gt=0"`
	EmaxMeV   float64     `validate:"gtfield=EminMeV"`
	Points    int         `validate:"gt=1"`
	Scale     string      `validate:"oneof=linear log"`
	Material  MaterialRef `validate:"required"`
	Compare   *MaterialRef
	MassCoeff bool
}

func DefaultGamma() Gamma {
	return Gamma{EminMeV: 0.1, EmaxMeV: 10, Points: 300, Scale: "log", Material: Ref("lead")}
}

func (r Gamma) Validate() error {
	return validate.Struct(r)
}

func (r Gamma) Curves(tbl *material.Table) (Curves, error) {
	if err := r.Validate(); err != nil {
		return Curves{}, err
	}
	g, err := grid.FromScale(r.Scale, r.EminMeV, r.EmaxMeV, r.Points)
	if err != nil {
		return Curves{}, err
	}

	p1, err := r.Material.resolve(tbl, false)
	if err != nil {
		return Curves{}, err
	}

	yLabel := "Linear attenuation mu (1/cm)"
	if r.MassCoeff {
		yLabel = "Mass attenuation mu/rho (cm^2/g)"
	}
	out := Curves{
		Title:  fmt.Sprintf("Gamma-ray interactions — %s", p1.Name),
		XLabel: "Energy (MeV)",
		YLabel: yLabel,
		X:      g,
	}
	out.Series = appendGammaSeries(out.Series, p1, g, r.MassCoeff)

	if r.Compare != nil {
		p2, err := r.Compare.resolve(tbl, true)
		if err != nil {
			return Curves{}, err
		}
		out.Title = fmt.Sprintf("Gamma-ray interactions — %s vs %s", p1.Name, p2.Name)
		out.Series = appendGammaSeries(out.Series, p2, g, r.MassCoeff)
	}
	return out, nil
}

func appendGammaSeries(dst []Series, p material.Properties, g []float64, mass bool) []Series {
	res := gamma.Interactions(p.Z, p.Rho, g)
	photo, compton, pair, total := res.PhotoMu, res.ComptonMu, res.PairMu, res.TotalMu
	if mass {
		photo, compton, pair, total = res.PhotoMuRho, res.ComptonMuRho, res.PairMuRho, res.TotalMuRho
	}
	return append(dst,
		Series{Label: p.Name + " photoelectric", Values: photo},
		Series{Label: p.Name + " compton", Values: compton},
		Series{Label: p.Name + " pair", Values: pair},
		Series{Label: p.Name + " total", Values: total},
	)
}
