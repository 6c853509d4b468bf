package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/radsim/internal/config"
	"github.com/san-kum/radsim/internal/export"
	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/request"
	"github.com/san-kum/radsim/internal/tui"
	"github.com/san-kum/radsim/internal/viz"
)

var (
	configFile string
	preset     string

	emin      float64
	emax      float64
	points    int
	mat       string
	mat2      string
	customZ   float64
	customRho float64
	scale     string
	massCoeff bool

	e0         float64
	dx         float64
	smoothFrac float64
	zmax       float64

	csvPath  string
	jsonPath string
	xlsxPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radsim",
		Short: "radiation-matter interaction curve lab",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, tbl, err := loadConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render(err.Error()))
				os.Exit(1)
			}
			if err := tui.Run(tbl, cfg); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "export curves to CSV file")
	rootCmd.PersistentFlags().StringVar(&jsonPath, "json", "", "export curves to JSON file")
	rootCmd.PersistentFlags().StringVar(&xlsxPath, "xlsx", "", "export curves to XLSX file")

	xrayCmd := &cobra.Command{
		Use:   "xray",
		Short: "x-ray interaction probability shares (keV)",
		RunE:  runXRay,
	}
	xrayCmd.Flags().Float64Var(&emin, "emin", 20, "minimum energy (keV)")
	xrayCmd.Flags().Float64Var(&emax, "emax", 120, "maximum energy (keV)")
	xrayCmd.Flags().IntVar(&points, "points", 300, "grid points")
	xrayCmd.Flags().StringVar(&mat, "material", "water", "material name or 'custom'")
	xrayCmd.Flags().StringVar(&mat2, "material2", "", "second material for comparison")
	xrayCmd.Flags().Float64Var(&customZ, "z", 0, "atomic number for custom material")
	xrayCmd.Flags().Float64Var(&customRho, "rho", 0, "density for custom material (g/cm^3)")
	xrayCmd.Flags().StringVar(&preset, "preset", "", "preset energy window")

	gammaCmd := &cobra.Command{
		Use:   "gamma",
		Short: "gamma-ray attenuation curves (MeV)",
		RunE:  runGamma,
	}
	gammaCmd.Flags().Float64Var(&emin, "emin", 0.1, "minimum energy (MeV)")
	gammaCmd.Flags().Float64Var(&emax, "emax", 10, "maximum energy (MeV)")
	gammaCmd.Flags().IntVar(&points, "points", 300, "grid points")
	gammaCmd.Flags().StringVar(&mat, "material", "lead", "material name or 'custom'")
	gammaCmd.Flags().StringVar(&mat2, "material2", "", "second material for comparison")
	gammaCmd.Flags().Float64Var(&customZ, "z", 0, "atomic number for custom material")
	gammaCmd.Flags().Float64Var(&customRho, "rho", 0, "density for custom material (g/cm^3)")
	gammaCmd.Flags().StringVar(&scale, "scale", "log", "grid spacing (linear|log)")
	gammaCmd.Flags().BoolVar(&massCoeff, "mass", false, "plot mu/rho instead of mu")
	gammaCmd.Flags().StringVar(&preset, "preset", "", "preset energy window")

	braggCmd := &cobra.Command{
		Use:   "bragg",
		Short: "proton depth-dose (Bragg) curve",
		RunE:  runBragg,
	}
	braggCmd.Flags().Float64Var(&e0, "e0", 150, "initial energy (MeV)")
	braggCmd.Flags().StringVar(&mat, "material", "water", "material name")
	braggCmd.Flags().Float64Var(&dx, "dx", 0.01, "depth step (cm)")
	braggCmd.Flags().Float64Var(&smoothFrac, "smooth", 0.015, "gaussian sigma as fraction of range (0 disables)")

	stoppingCmd := &cobra.Command{
		Use:   "stopping",
		Short: "proton mass stopping power curve",
		RunE:  runStopping,
	}
	stoppingCmd.Flags().Float64Var(&emin, "emin", 10, "minimum energy (MeV)")
	stoppingCmd.Flags().Float64Var(&emax, "emax", 250, "maximum energy (MeV)")
	stoppingCmd.Flags().IntVar(&points, "points", 120, "grid points")
	stoppingCmd.Flags().StringVar(&mat, "material", "water", "material name")

	rangeCmd := &cobra.Command{
		Use:   "range",
		Short: "calibrated CSDA range vs energy",
		RunE:  runRange,
	}
	rangeCmd.Flags().Float64Var(&emin, "emin", 10, "minimum energy (MeV)")
	rangeCmd.Flags().Float64Var(&emax, "emax", 250, "maximum energy (MeV)")
	rangeCmd.Flags().IntVar(&points, "points", 120, "grid points")
	rangeCmd.Flags().StringVar(&mat, "material", "water", "material name")
	rangeCmd.Flags().StringVar(&preset, "preset", "", "preset energy window")

	lateralCmd := &cobra.Command{
		Use:   "lateral",
		Short: "highland lateral spread vs depth",
		RunE:  runLateral,
	}
	lateralCmd.Flags().Float64Var(&e0, "e0", 150, "initial energy (MeV)")
	lateralCmd.Flags().Float64Var(&zmax, "zmax", 25, "maximum depth (cm)")
	lateralCmd.Flags().IntVar(&points, "points", 120, "grid points")
	lateralCmd.Flags().StringVar(&mat, "material", "water", "material name")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list the material table",
		RunE:  listMaterials,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive curve browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, tbl, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(tbl, cfg)
		},
	}

	rootCmd.AddCommand(xrayCmd, gammaCmd, braggCmd, stoppingCmd, rangeCmd, lateralCmd, materialsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *material.Table, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	return cfg, cfg.Table(), nil
}

func applyPreset(cmd *cobra.Command, mode string) {
	p, ok := config.Presets[mode][preset]
	if !ok {
		return
	}
	emin, emax, points = p.Emin, p.Emax, p.Points
	if !cmd.Flags().Changed("material") {
		mat = p.Material
	}
}

func materialRef() request.MaterialRef {
	ref := request.Ref(mat)
	if mat == "custom" {
		ref.Z = customZ
		ref.Rho = customRho
	}
	return ref
}

func runXRay(cmd *cobra.Command, args []string) error {
	if preset != "" {
		applyPreset(cmd, "xray")
	}
	r := request.DefaultXRay()
	r.EminKeV, r.EmaxKeV, r.Points = emin, emax, points
	r.Material = materialRef()
	if mat2 != "" {
		ref := request.Ref(mat2)
		r.Compare = &ref
	}
	return finish(r)
}

func runGamma(cmd *cobra.Command, args []string) error {
	if preset != "" {
		applyPreset(cmd, "gamma")
	}
	r := request.DefaultGamma()
	r.EminMeV, r.EmaxMeV, r.Points = emin, emax, points
	r.Scale = scale
	r.MassCoeff = massCoeff
	r.Material = materialRef()
	if mat2 != "" {
		ref := request.Ref(mat2)
		r.Compare = &ref
	}
	return finish(r)
}

func runBragg(cmd *cobra.Command, args []string) error {
	r := request.Bragg{E0MeV: e0, Material: mat, DxCm: dx, SmoothFrac: smoothFrac}
	return finish(r)
}

func runStopping(cmd *cobra.Command, args []string) error {
	r := request.Stopping{EminMeV: emin, EmaxMeV: emax, Points: points, Material: mat}
	return finish(r)
}

func runRange(cmd *cobra.Command, args []string) error {
	if preset != "" {
		applyPreset(cmd, "proton")
	}
	r := request.DefaultRange()
	r.EminMeV, r.EmaxMeV, r.Points = emin, emax, points
	r.Material = mat
	return finish(r)
}

func runLateral(cmd *cobra.Command, args []string) error {
	r := request.Lateral{E0MeV: e0, ZmaxCm: zmax, Points: points, Material: mat}
	return finish(r)
}

// finish runs the request against the configured table, renders the
// plot and writes any requested export files.
func finish(r request.Request) error {
	_, tbl, err := loadConfig()
	if err != nil {
		return err
	}
	curves, err := r.Curves(tbl)
	if err != nil {
		return err
	}

	fmt.Println(viz.Render(curves))
	for _, s := range curves.Series {
		fmt.Println(viz.Summary(s.Label, s.Values))
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteCSV(f, curves); err != nil {
			return err
		}
	}
	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.WriteJSON(f, curves); err != nil {
			return err
		}
	}
	if xlsxPath != "" {
		if err := export.WriteXLSX(xlsxPath, "", curves); err != nil {
			return err
		}
	}
	return nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	_, tbl, err := loadConfig()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tZ\tRHO (g/cm^3)\tK-EDGE (keV)\tL-EDGE (keV)")
	for _, name := range tbl.Names() {
		p, _ := tbl.Lookup(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", p.Name, p.Z, p.Rho, p.EK, p.EL)
	}
	return w.Flush()
}
