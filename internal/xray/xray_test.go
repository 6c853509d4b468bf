package xray

import (
	"math"
	"testing"

	"github.com/san-kum/radsim/internal/grid"
	"github.com/san-kum/radsim/internal/material"
)

func TestBonePhotoelectricFadesWithEnergy(t *testing.T) {
	// bone (Z=13.8): the photoelectric-to-compton ratio falls steadily
	// across the diagnostic window
	tbl := material.NewTable()
	bone, _ := tbl.Lookup("bone")

	g, err := grid.Linear(20, 120, 300)
	if err != nil {
		t.Fatal(err)
	}
	c := Curves(bone, g)

	prev := math.Inf(1)
	for i := range g {
		ratio := c.Photoelectric[i] / c.Compton[i]
		if ratio >= prev {
			t.Fatalf("ratio not decreasing at %v keV: %v >= %v", g[i], ratio, prev)
		}
		prev = ratio
	}
}

func TestLowEnergyPhotoelectricDominance(t *testing.T) {
	// near the absorption edges the Z^3/E^3.5 term swamps everything
	tbl := material.NewTable()
	bone, _ := tbl.Lookup("bone")

	g := []float64{0.5}
	c := Curves(bone, g)
	if c.Photoelectric[0] <= c.Compton[0] {
		t.Errorf("at 0.5 keV: photoelectric %v should exceed compton %v",
			c.Photoelectric[0], c.Compton[0])
	}
	if c.Photoelectric[0] <= c.Rayleigh[0] {
		t.Errorf("at 0.5 keV: photoelectric %v should exceed rayleigh %v",
			c.Photoelectric[0], c.Rayleigh[0])
	}
}

func TestEdgeJumpFactors(t *testing.T) {
	energies := []float64{0.05, 0.5, 2.0}
	pe := Photoelectric(10, energies, 1.0, 0.1, 1.0)

	base := func(e float64) float64 { return 1000 / math.Pow(e, 3.5) }

	if math.Abs(pe[0]-base(0.05)*LJumpFactor) > 1e-9 {
		t.Errorf("below L-edge: got %v, want %v", pe[0], base(0.05)*LJumpFactor)
	}
	if math.Abs(pe[1]-base(0.5)*KJumpFactor) > 1e-9 {
		t.Errorf("between edges: got %v, want %v", pe[1], base(0.5)*KJumpFactor)
	}
	if math.Abs(pe[2]-base(2.0)) > 1e-9 {
		t.Errorf("above K-edge: got %v, want %v", pe[2], base(2.0))
	}
}

func TestSharesSumToOne(t *testing.T) {
	tbl := material.NewTable()
	lead, _ := tbl.Lookup("lead")

	g, _ := grid.Log(20, 120, 50)
	s := Curves(lead, g).Shares()

	for i := range g {
		sum := s.Photoelectric[i] + s.Compton[i] + s.Rayleigh[i]
		if math.Abs(sum-1.0) > 1e-12 {
			t.Fatalf("point %d: shares sum %v", i, sum)
		}
	}
}

func TestDensityScaling(t *testing.T) {
	energies := []float64{50}
	a := Compton(7.4, energies, 1.0)
	b := Compton(7.4, energies, 2.0)
	if math.Abs(b[0]-2*a[0]) > 1e-12 {
		t.Errorf("compton should scale linearly with density: %v vs %v", a[0], b[0])
	}
}
