package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func newXRayTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "xray", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().Float64Var(&emin, "emin", 20, "")
	cmd.Flags().Float64Var(&emax, "emax", 120, "")
	cmd.Flags().IntVar(&points, "points", 300, "")
	cmd.Flags().StringVar(&mat, "material", "water", "")
	cmd.Flags().StringVar(&preset, "preset", "", "")
	return cmd
}

func TestPresetAppliesMaterialAndWindow(t *testing.T) {
	cmd := newXRayTestCmd()
	if err := cmd.Flags().Parse([]string{"--preset", "mammography"}); err != nil {
		t.Fatal(err)
	}

	applyPreset(cmd, "xray")
	if mat != "soft_tissue" {
		t.Errorf("material = %q, want soft_tissue", mat)
	}
	if emin != 15 || emax != 40 {
		t.Errorf("window = [%v, %v], want [15, 40]", emin, emax)
	}
}

func TestExplicitMaterialBeatsPreset(t *testing.T) {
	cmd := newXRayTestCmd()
	if err := cmd.Flags().Parse([]string{"--preset", "mammography", "--material", "lead"}); err != nil {
		t.Fatal(err)
	}

	applyPreset(cmd, "xray")
	if mat != "lead" {
		t.Errorf("material = %q, want lead", mat)
	}
	if emin != 15 || emax != 40 {
		t.Errorf("window = [%v, %v], want [15, 40]", emin, emax)
	}
}

func TestUnknownPresetLeavesFlagsAlone(t *testing.T) {
	cmd := newXRayTestCmd()
	if err := cmd.Flags().Parse([]string{"--preset", "nope"}); err != nil {
		t.Fatal(err)
	}

	applyPreset(cmd, "xray")
	if mat != "water" {
		t.Errorf("material = %q, want water", mat)
	}
	if emin != 20 || emax != 120 {
		t.Errorf("window = [%v, %v], want [20, 120]", emin, emax)
	}
}
