package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e30n3/freon/internal/refrigerant"
	"github.com/e30n3/freon/internal/sweep"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, refrigerant.R134, cfg.Derived.Kind)
	assert.Equal(t, refrigerant.Kinds(), cfg.Derived.Kinds)
	assert.Equal(t, 0.0, cfg.Temperature)
	assert.InDelta(t, 0.0005, cfg.Derived.DiameterM, 1e-15)
	assert.Equal(t, logrus.InfoLevel, cfg.Derived.LogLevel)
	assert.Equal(t, sweep.Range{Start: 0.1, End: 2.0, Step: 0.05}, cfg.Sweep.Diameter)
	assert.Equal(t, sweep.Range{Start: -10, End: 15, Step: 5}, cfg.Sweep.Temperature)
	assert.Equal(t, -30.0, cfg.Input.TemperatureMin)
	assert.Equal(t, 30.0, cfg.Input.TemperatureMax)
	assert.False(t, cfg.DecimalComma)
	assert.Empty(t, cfg.Output.CSV)
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := writeFile(t, "freon.yaml", `
substance: r410
decimal_comma: true
sweep:
  temperature:
    start: 0
    end: 10
    step: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, refrigerant.R410, cfg.Derived.Kind)
	assert.True(t, cfg.DecimalComma)
	assert.Equal(t, sweep.Range{Start: 0, End: 10, Step: 2}, cfg.Sweep.Temperature)
	// untouched fields keep their defaults
	assert.Equal(t, sweep.Range{Start: 0.1, End: 2.0, Step: 0.05}, cfg.Sweep.Diameter)
	assert.Equal(t, 0.5, cfg.DiameterMM)
}

func TestLoadTOMLOverlay(t *testing.T) {
	path := writeFile(t, "freon.toml", `
substance = "R32"
temperature = -12.5
diameter_mm = 1.2
log_level = "debug"

[sweep]
substances = ["R32", "R134"]

[output]
csv = "out.csv"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, refrigerant.R32, cfg.Derived.Kind)
	assert.Equal(t, -12.5, cfg.Temperature)
	assert.InDelta(t, 0.0012, cfg.Derived.DiameterM, 1e-15)
	assert.Equal(t, logrus.DebugLevel, cfg.Derived.LogLevel)
	assert.Equal(t, []refrigerant.Kind{refrigerant.R32, refrigerant.R134}, cfg.Derived.Kinds)
	assert.Equal(t, "out.csv", cfg.Output.CSV)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := map[string]string{
		"unknown substance":   "substance: R22\n",
		"zero diameter":       "diameter_mm: 0\n",
		"inverted input":      "input: {temperature_min: 10, temperature_max: -10}\n",
		"zero sweep step":     "sweep: {diameter: {start: 0.1, end: 1, step: 0}}\n",
		"reversed sweep":      "sweep: {temperature: {start: 10, end: 0, step: 1}}\n",
		"bad sweep substance": "sweep: {substances: [R134, X]}\n",
		"no sweep substances": "sweep: {substances: []}\n",
		"bad log level":       "log_level: loud\n",
		"infinite sweep end":  "sweep: {temperature: {start: 0, end: .inf, step: 1}}\n",
		"nan sweep start":     "sweep: {diameter: {start: .nan, end: 1, step: 0.1}}\n",
		"infinite sweep step": "sweep: {temperature: {start: 0, end: 1, step: .inf}}\n",
		"tiny sweep step":     "sweep: {diameter: {start: 0.1, end: 2.0, step: 1e-12}}\n",
		"not yaml":            "substance: [\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "freon.yml", body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidateRecomputesDerived(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Substance = "R407"
	cfg.DiameterMM = 2
	require.NoError(t, cfg.Validate())
	assert.Equal(t, refrigerant.R407, cfg.Derived.Kind)
	assert.InDelta(t, 0.002, cfg.Derived.DiameterM, 1e-15)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
