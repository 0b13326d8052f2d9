// Package config provides configuration loading for the drift velocity
// calculations.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/e30n3/freon/internal/refrigerant"
	"github.com/e30n3/freon/internal/sweep"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all run parameters.
type Config struct {
	Substance    string       `yaml:"substance" toml:"substance"`
	Temperature  float64      `yaml:"temperature" toml:"temperature"` // degree C
	DiameterMM   float64      `yaml:"diameter_mm" toml:"diameter_mm"`
	DecimalComma bool         `yaml:"decimal_comma" toml:"decimal_comma"`
	LogLevel     string       `yaml:"log_level" toml:"log_level"`
	Input        InputConfig  `yaml:"input" toml:"input"`
	Sweep        SweepConfig  `yaml:"sweep" toml:"sweep"`
	Output       OutputConfig `yaml:"output" toml:"output"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-" toml:"-"`
}

// InputConfig bounds the temperatures accepted from the user.
type InputConfig struct {
	TemperatureMin float64 `yaml:"temperature_min" toml:"temperature_min"`
	TemperatureMax float64 `yaml:"temperature_max" toml:"temperature_max"`
}

// SweepConfig holds the sweep ranges.
type SweepConfig struct {
	Substances  []string    `yaml:"substances" toml:"substances"`
	Diameter    sweep.Range `yaml:"diameter" toml:"diameter"`       // mm
	Temperature sweep.Range `yaml:"temperature" toml:"temperature"` // degree C
}

// OutputConfig names the sweep output files.
type OutputConfig struct {
	CSV  string `yaml:"csv" toml:"csv"`
	Plot string `yaml:"plot" toml:"plot"`
}

// DerivedConfig holds values parsed from the raw settings.
type DerivedConfig struct {
	Kind      refrigerant.Kind
	Kinds     []refrigerant.Kind
	DiameterM float64
	LogLevel  logrus.Level
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Files ending in .toml are read as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		if err := cfg.overlay(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlay(path string) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	// Only overwrites fields present in the file
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate checks the settings and recomputes the derived values. Call it
// again after changing fields.
func (c *Config) Validate() error {
	kind, err := refrigerant.ParseKind(c.Substance)
	if err != nil {
		return fmt.Errorf("substance: %w", err)
	}

	if len(c.Sweep.Substances) == 0 {
		return fmt.Errorf("sweep.substances: at least one refrigerant is required")
	}
	kinds := make([]refrigerant.Kind, len(c.Sweep.Substances))
	for i, s := range c.Sweep.Substances {
		if kinds[i], err = refrigerant.ParseKind(s); err != nil {
			return fmt.Errorf("sweep.substances: %w", err)
		}
	}

	if !(c.DiameterMM > 0) {
		return fmt.Errorf("diameter_mm must be positive, got %v", c.DiameterMM)
	}
	if !(c.Input.TemperatureMin < c.Input.TemperatureMax) {
		return fmt.Errorf("input: temperature_min %v must be below temperature_max %v",
			c.Input.TemperatureMin, c.Input.TemperatureMax)
	}
	if err := checkRange("sweep.diameter", c.Sweep.Diameter); err != nil {
		return err
	}
	if !(c.Sweep.Diameter.Start > 0) {
		return fmt.Errorf("sweep.diameter: start must be positive, got %v", c.Sweep.Diameter.Start)
	}
	if err := checkRange("sweep.temperature", c.Sweep.Temperature); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	c.Derived = DerivedConfig{
		Kind:      kind,
		Kinds:     kinds,
		DiameterM: c.DiameterMM / 1000,
		LogLevel:  level,
	}
	return nil
}

func checkRange(name string, r sweep.Range) error {
	if err := r.Check(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
