package request

import (
	"fmt"

	"github.com/san-kum/radsim/internal/grid"
	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/proton"
)

// Bragg requests a depth-dose curve for a monoenergetic proton beam.
type Bragg struct {
	E0MeV      float64 `validate:"gt=0"`
	Material   string  `validate:"required"`
	DxCm       float64 `validate:"gte=0"`
	SmoothFrac float64 `validate:"gte=0,lt=1"`
}

func DefaultBragg() Bragg {
	return Bragg{E0MeV: 150, Material: "water", DxCm: proton.DefaultDxCm, SmoothFrac: proton.DefaultSmoothFrac}
}

func (r Bragg) Validate() error {
	return validate.Struct(r)
}

func (r Bragg) Curves(tbl *material.Table) (Curves, error) {
	if err := r.Validate(); err != nil {
		return Curves{}, err
	}
	p := resolveOrFallback(tbl, r.Material)
	depth, dose, rangeCm := proton.BraggCurve(r.E0MeV, p, r.DxCm, r.SmoothFrac)
	return Curves{
		Title:  fmt.Sprintf("Bragg curve — %s (%g MeV, R=%.2f cm)", p.Name, r.E0MeV, rangeCm),
		XLabel: "Depth (cm)",
		YLabel: "Relative dose",
		X:      depth,
		Series: []Series{{Label: "dose", Values: dose}},
	}, nil
}

// Stopping requests the mass stopping-power curve over an energy grid.
// Unlike the other proton modes this one is strict about the material:
// the Bethe-Bloch parameterization needs a real table entry.
type Stopping struct {
	EminMeV  float64 `validate:"gt=0"`
	EmaxMeV  float64 `validate:"gtfield=EminMeV"`
	Points   int     `validate:"gt=1"`
	Material string  `validate:"required"`
}

func DefaultStopping() Stopping {
	return Stopping{EminMeV: 10, EmaxMeV: 250, Points: 120, Material: "water"}
}

func (r Stopping) Validate() error {
	return validate.Struct(r)
}

func (r Stopping) Curves(tbl *material.Table) (Curves, error) {
	if err := r.Validate(); err != nil {
		return Curves{}, err
	}
	g, err := grid.Linear(r.EminMeV, r.EmaxMeV, r.Points)
	if err != nil {
		return Curves{}, err
	}
	s, err := proton.StoppingPowerCurve(g, r.Material, tbl)
	if err != nil {
		return Curves{}, err
	}
	return Curves{
		Title:  fmt.Sprintf("Stopping power — %s", r.Material),
		XLabel: "Energy (MeV)",
		YLabel: "Mass stopping power (MeV*cm^2/g)",
		X:      g,
		Series: []Series{{Label: "dE/dx", Values: s}},
	}, nil
}

// Range requests calibrated CSDA range versus initial energy.
type Range struct {
	EminMeV  float64 `validate:"gt=0"`
	EmaxMeV  float64 `validate:"gtfield=EminMeV"`
	Points   int     `validate:"gt=1"`
	Material string  `validate:"required"`
	DEMax    float64 `validate:"gte=0"`
}

func DefaultRange() Range {
	return Range{EminMeV: 10, EmaxMeV: 250, Points: 120, Material: "water", DEMax: proton.DefaultDEMax}
}

func (r Range) Validate() error {
	return validate.Struct(r)
}

func (r Range) Curves(tbl *material.Table) (Curves, error) {
	if err := r.Validate(); err != nil {
		return Curves{}, err
	}
	g, err := grid.Linear(r.EminMeV, r.EmaxMeV, r.Points)
	if err != nil {
		return Curves{}, err
	}
	p := resolveOrFallback(tbl, r.Material)
	return Curves{
		Title:  fmt.Sprintf("CSDA range — %s", p.Name),
		XLabel: "Initial energy (MeV)",
		YLabel: "Range (cm)",
		X:      g,
		Series: []Series{{Label: "range", Values: proton.RangeVsEnergy(g, p, r.DEMax)}},
	}, nil
}

// Lateral requests the Highland lateral spread over a depth grid.
type Lateral struct {
	E0MeV    float64 `validate:"gt=0"`
	ZmaxCm   float64 `validate:"gt=0"`
	Points   int     `validate:"gt=1"`
	Material string  `validate:"required"`
}

func DefaultLateral() Lateral {
	return Lateral{E0MeV: 150, ZmaxCm: 25, Points: 120, Material: "water"}
}

func (r Lateral) Validate() error {
	return validate.Struct(r)
}

func (r Lateral) Curves(tbl *material.Table) (Curves, error) {
	if err := r.Validate(); err != nil {
		return Curves{}, err
	}
	// depth grid starts at zero; the scatter model guards that point
	n := r.Points
	zs := make([]float64, n)
	step := r.ZmaxCm / float64(n-1)
	for i := range zs {
		zs[i] = float64(i) * step
	}
	p := resolveOrFallback(tbl, r.Material)
	return Curves{
		Title:  fmt.Sprintf("Lateral spread — %s (%g MeV)", p.Name, r.E0MeV),
		XLabel: "Depth (cm)",
		YLabel: "Sigma (cm)",
		X:      zs,
		Series: []Series{{Label: "sigma", Values: proton.LateralSigmaCurve(zs, r.E0MeV, p)}},
	}, nil
}

func resolveOrFallback(tbl *material.Table, name string) material.Properties {
	if p, ok := tbl.Lookup(name); ok {
		return p
	}
	p := material.Fallback()
	p.Name = name
	return p
}
