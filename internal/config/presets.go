package config

// Preset is a named energy window for one visualization mode.
type Preset struct {
	Emin     float64
	Emax     float64
	Points   int
	Material string
}

// Presets holds the clinically motivated default windows per mode.
// X-ray presets are in keV, gamma and proton presets in MeV.
var Presets = map[string]map[string]Preset{
	"xray": {
		"diagnostic":  {Emin: 20, Emax: 120, Points: 300, Material: "bone"},
		"mammography": {Emin: 15, Emax: 40, Points: 300, Material: "soft_tissue"},
		"contrast":    {Emin: 20, Emax: 80, Points: 300, Material: "iodine"},
	},
	"gamma": {
		"therapy":   {Emin: 0.1, Emax: 10, Points: 300, Material: "water"},
		"shielding": {Emin: 0.1, Emax: 20, Points: 300, Material: "lead"},
		"imaging":   {Emin: 0.05, Emax: 1, Points: 300, Material: "soft_tissue"},
	},
	"proton": {
		"therapy": {Emin: 70, Emax: 250, Points: 120, Material: "water"},
		"shallow": {Emin: 10, Emax: 70, Points: 120, Material: "water"},
	},
}
