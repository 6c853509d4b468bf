package material

// Builtin dataset: effective Z, density (g/cm^3) and K/L absorption
// edges (keV) for common elements and tissues. Values from the NIST
// X-ray Data Booklet, v1.5 (2009). Edge energy 0 means not tabulated.
var builtin = []Properties{
	// biological / reference
	{Name: "air", Z: 7.3, Rho: 0.001225, Color: "#B0E0E6"},
	{Name: "water", Z: 7.42, Rho: 1.000, Color: "#00BFFF"},
	{Name: "bone", Z: 13.8, Rho: 1.85, Color: "#DAA520"},
	{Name: "soft_tissue", Z: 7.4, Rho: 1.06, Color: "#F4A460"},

	// common metals / filters
	{Name: "aluminum", Z: 13, Rho: 2.70, EK: 1.56, EL: 0.09, Color: "#C0C0C0"},
	{Name: "titanium", Z: 22, Rho: 4.51, EK: 4.97, EL: 0.46},
	{Name: "iron", Z: 26, Rho: 7.87, EK: 7.11, EL: 0.72, Color: "#B22222"},
	{Name: "copper", Z: 29, Rho: 8.96, EK: 8.98, EL: 0.93, Color: "#B87333"},
	{Name: "silver", Z: 47, Rho: 10.49, EK: 25.51, EL: 3.56, Color: "#C0C0C0"},
	{Name: "tungsten", Z: 74, Rho: 19.25, EK: 69.53, EL: 12.1, Color: "#333333"},
	{Name: "lead", Z: 82, Rho: 11.34, EK: 88.00, EL: 15.9, Color: "#555555"},

	// contrast agents / radiology
	{Name: "iodine", Z: 53, Rho: 4.93, EK: 33.17, EL: 4.56, Color: "#9932CC"},
	{Name: "barium", Z: 56, Rho: 3.62, EK: 37.44, EL: 5.25, Color: "#800080"},

	// shielding / structural
	{Name: "concrete", Z: 11, Rho: 2.3},
	{Name: "iron_steel", Z: 26, Rho: 7.9, EK: 7.11, EL: 0.72},
	{Name: "tungsten_alloy", Z: 74, Rho: 17.5, EK: 69.53, EL: 12.1},
}
