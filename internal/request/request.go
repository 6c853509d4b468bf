// Package request defines one typed request per plot mode and the
// dispatch into the physics core. Each variant carries exactly the
// fields its mode needs, validated by struct tags, replacing any
// string-keyed parameter passing at the boundary.
package request

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/san-kum/radsim/internal/material"
)

var validate = validator.New()

var (
	ErrUnknownMaterial = errors.New("request: unknown material")
	ErrMissingZ        = errors.New("request: custom material requires Z")
)

// Series is one labeled curve aligned with the X grid of its Curves.
type Series struct {
	Label  string
	Values []float64
}

// Curves is the uniform dispatch result handed to rendering and
// export: a shared X grid plus one or more aligned series.
type Curves struct {
	Title  string
	XLabel string
	YLabel string
	X      []float64
	Series []Series
}

// Request is one plot-mode variant. Validate checks field constraints;
// Curves runs the computation against the given material table.
type Request interface {
	Validate() error
	Curves(tbl *material.Table) (Curves, error)
}

// MaterialRef names a table entry, or defines a custom material when
// Name is "custom" (Z required, density defaulting to 1.0).
type MaterialRef struct {
	Name  string  `yaml:"name" validate:"required"`
	Z     float64 `yaml:"z" validate:"gte=0,lte=118"`
	Rho   float64 `yaml:"rho" validate:"gte=0"`
	Label string  `yaml:"label"`
}

func Ref(name string) MaterialRef {
	return MaterialRef{Name: name}
}

// resolve turns the reference into concrete properties. In strict mode
// an unknown name is an error; otherwise it substitutes the documented
// fallback (Z=7.4, rho=1.0) under the requested name.
func (m MaterialRef) resolve(tbl *material.Table, strict bool) (material.Properties, error) {
	if m.Name == "custom" {
		if m.Z <= 0 {
			return material.Properties{}, ErrMissingZ
		}
		label := m.Label
		if label == "" {
			label = "custom"
		}
		return material.Custom(label, m.Z, m.Rho)
	}
	p, ok := tbl.Lookup(m.Name)
	if !ok {
		if strict {
			return material.Properties{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, m.Name)
		}
		p = material.Fallback()
		p.Name = m.Name
	}
	if m.Label != "" {
		p.Name = m.Label
	}
	return p, nil
}
