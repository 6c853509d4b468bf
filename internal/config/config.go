package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/radsim/internal/material"
)

const (
	DefaultMaterial   = "water"
	DefaultGridPoints = 300
	DefaultNpts       = 120
	DefaultDxCm       = 0.01
	DefaultSmoothFrac = 0.015
)

var validate = validator.New()

// Config holds the startup settings: plotting defaults plus extra
// material definitions merged into the builtin table. Loaded once;
// nothing mutates it afterwards.
type Config struct {
	Material   string        `yaml:"material" validate:"required"`
	GridPoints int           `yaml:"grid_points" validate:"gt=1"`
	Npts       int           `yaml:"npts" validate:"gt=1"`
	DxCm       float64       `yaml:"dx_cm" validate:"gt=0"`
	SmoothFrac float64       `yaml:"smooth_frac" validate:"gte=0,lt=1"`
	Materials  []MaterialDef `yaml:"materials" validate:"dive"`
}

// MaterialDef is a user-supplied material table entry.
type MaterialDef struct {
	Name string  `yaml:"name" validate:"required"`
	Z    float64 `yaml:"z" validate:"gt=0,lte=118"`
	Rho  float64 `yaml:"rho" validate:"gt=0"`
	EK   float64 `yaml:"e_k" validate:"gte=0"`
	EL   float64 `yaml:"e_l" validate:"gte=0"`
}

func DefaultConfig() *Config {
	return &Config{
		Material:   DefaultMaterial,
		GridPoints: DefaultGridPoints,
		Npts:       DefaultNpts,
		DxCm:       DefaultDxCm,
		SmoothFrac: DefaultSmoothFrac,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Table returns the builtin material table extended with the config's
// extra definitions.
func (c *Config) Table() *material.Table {
	tbl := material.NewTable()
	if len(c.Materials) == 0 {
		return tbl
	}
	extra := make([]material.Properties, len(c.Materials))
	for i, d := range c.Materials {
		extra[i] = material.Properties{Name: d.Name, Z: d.Z, Rho: d.Rho, EK: d.EK, EL: d.EL}
	}
	return tbl.With(extra)
}
