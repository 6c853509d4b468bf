package material

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Default edge energies (keV) used when a material has no tabulated
// K- or L-edge.
const (
	DefaultEK = 1.0
	DefaultEL = 0.1
)

var ErrInvalidZ = errors.New("material: atomic number must be in (0, 118]")

// Properties describes one material: effective atomic number, mass
// density (g/cm^3) and absorption-edge energies (keV). EK/EL of zero
// mean "not tabulated"; use KEdge/LEdge to get plot-ready values.
type Properties struct {
	Name  string
	Z     float64
	Rho   float64
	EK    float64
	EL    float64
	Color string
}

func (p Properties) KEdge() float64 {
	if p.EK <= 0 {
		return DefaultEK
	}
	return p.EK
}

func (p Properties) LEdge() float64 {
	if p.EL <= 0 {
		return DefaultEL
	}
	return p.EL
}

// IsWater reports whether the entry is the reference water material.
// The stopping-power and radiation-length parameterizations carry
// water-specific constants.
func (p Properties) IsWater() bool {
	return strings.EqualFold(p.Name, "water")
}

// Fallback is the documented substitute for unknown materials in the
// curve helpers: soft-tissue-like Z at unit density.
func Fallback() Properties {
	return Properties{Name: "fallback", Z: 7.4, Rho: 1.0}
}

// Custom builds a material from user-supplied Z and density. Edge
// energies follow the Z^2 scaling used for unlisted elements; a
// non-positive density falls back to 1.0.
func Custom(name string, z, rho float64) (Properties, error) {
	if z <= 0 || z > 118 {
		return Properties{}, fmt.Errorf("%w: got %g", ErrInvalidZ, z)
	}
	if rho <= 0 {
		rho = 1.0
	}
	if name == "" {
		name = "custom"
	}
	return Properties{
		Name: name,
		Z:    z,
		Rho:  rho,
		EK:   0.0126 * z * z,
		EL:   0.0016 * z * z,
	}, nil
}

// Table is an immutable name -> Properties mapping. Construct it once
// at startup and pass it to whatever needs material data.
type Table struct {
	entries map[string]Properties
}

func NewTable() *Table {
	entries := make(map[string]Properties, len(builtin))
	for _, p := range builtin {
		entries[strings.ToLower(p.Name)] = p
	}
	return &Table{entries: entries}
}

// With returns a new table extended with extra entries. Extras shadow
// builtins with the same name; the receiver is not modified.
func (t *Table) With(extra []Properties) *Table {
	entries := make(map[string]Properties, len(t.entries)+len(extra))
	for k, v := range t.entries {
		entries[k] = v
	}
	for _, p := range extra {
		entries[strings.ToLower(p.Name)] = p
	}
	return &Table{entries: entries}
}

// Lookup is case-insensitive. The table never guesses: callers that
// want a default for unknown names use Fallback themselves.
func (t *Table) Lookup(name string) (Properties, bool) {
	p, ok := t.entries[strings.ToLower(name)]
	return p, ok
}

func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for k := range t.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (t *Table) Len() int {
	return len(t.entries)
}
