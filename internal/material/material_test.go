package material

import (
	"math"
	"testing"
)

func TestLookupCaseInsensitive(t *testing.T) {
	tbl := NewTable()

	for _, name := range []string{"lead", "Lead", "LEAD"} {
		p, ok := tbl.Lookup(name)
		if !ok {
			t.Fatalf("expected %q to resolve", name)
		}
		if p.Z != 82 {
			t.Errorf("lead Z: got %v, want 82", p.Z)
		}
		if p.Rho != 11.34 {
			t.Errorf("lead rho: got %v, want 11.34", p.Rho)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	tbl := NewTable()

	if _, ok := tbl.Lookup("unobtainium"); ok {
		t.Error("expected unknown material to miss")
	}

	fb := Fallback()
	if fb.Z != 7.4 || fb.Rho != 1.0 {
		t.Errorf("fallback: got Z=%v rho=%v, want Z=7.4 rho=1.0", fb.Z, fb.Rho)
	}
}

func TestEdgeDefaults(t *testing.T) {
	tbl := NewTable()

	water, _ := tbl.Lookup("water")
	if water.KEdge() != DefaultEK {
		t.Errorf("untabulated K-edge: got %v, want %v", water.KEdge(), DefaultEK)
	}
	if water.LEdge() != DefaultEL {
		t.Errorf("untabulated L-edge: got %v, want %v", water.LEdge(), DefaultEL)
	}

	lead, _ := tbl.Lookup("lead")
	if lead.KEdge() != 88.0 {
		t.Errorf("lead K-edge: got %v, want 88.0", lead.KEdge())
	}
}

func TestCustomDerivedEdges(t *testing.T) {
	p, err := Custom("mystery", 30, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Rho != 1.0 {
		t.Errorf("default density: got %v, want 1.0", p.Rho)
	}
	if math.Abs(p.EK-0.0126*900) > 1e-12 {
		t.Errorf("K-edge: got %v, want %v", p.EK, 0.0126*900)
	}
	if math.Abs(p.EL-0.0016*900) > 1e-12 {
		t.Errorf("L-edge: got %v, want %v", p.EL, 0.0016*900)
	}
}

func TestCustomRejectsBadZ(t *testing.T) {
	for _, z := range []float64{0, -5, 119} {
		if _, err := Custom("bad", z, 1.0); err == nil {
			t.Errorf("Z=%v: expected error", z)
		}
	}
}

func TestWithShadowsAndPreserves(t *testing.T) {
	tbl := NewTable()
	ext := tbl.With([]Properties{
		{Name: "water", Z: 7.5, Rho: 1.0},
		{Name: "pmma", Z: 6.5, Rho: 1.19},
	})

	if p, _ := ext.Lookup("water"); p.Z != 7.5 {
		t.Errorf("shadowed water Z: got %v, want 7.5", p.Z)
	}
	if _, ok := ext.Lookup("pmma"); !ok {
		t.Error("expected pmma in extended table")
	}
	// original table untouched
	if p, _ := tbl.Lookup("water"); p.Z != 7.42 {
		t.Errorf("base table mutated: water Z=%v", p.Z)
	}
	if _, ok := tbl.Lookup("pmma"); ok {
		t.Error("base table should not contain pmma")
	}
}
