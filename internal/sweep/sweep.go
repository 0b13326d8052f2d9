// Package sweep evaluates the drift velocity over ranges of droplet
// diameters and ambient temperatures.
package sweep

import (
	"fmt"
	"math"

	"github.com/e30n3/freon/internal/criteria"
	"github.com/e30n3/freon/internal/refrigerant"
)

// Range is an arithmetic progression from Start to End inclusive.
type Range struct {
	Start float64 `yaml:"start" toml:"start"`
	End   float64 `yaml:"end" toml:"end"`
	Step  float64 `yaml:"step" toml:"step"`
}

// MaxPoints is the largest number of values a Range may produce.
const MaxPoints = 100000

// Check reports whether r is a finite progression with a positive step and
// at most MaxPoints values.
func (r Range) Check() error {
	for _, v := range []float64{r.Start, r.End, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("start, end and step must be finite, got %v, %v, %v", r.Start, r.End, r.Step)
		}
	}
	if !(r.Step > 0) {
		return fmt.Errorf("step must be positive, got %v", r.Step)
	}
	if !(r.End >= r.Start) {
		return fmt.Errorf("end %v is below start %v", r.End, r.Start)
	}
	if n := r.count(); !(n <= MaxPoints) {
		return fmt.Errorf("%v points exceed the limit of %d", n, MaxPoints)
	}
	return nil
}

func (r Range) count() float64 {
	return math.Floor((r.End-r.Start)/r.Step+1e-9) + 1
}

// Values returns Start + i*Step for every i that stays within End. An End
// lying on the grid is included. The result is empty when Check fails.
func (r Range) Values() []float64 {
	if r.Check() != nil {
		return nil
	}
	ret := make([]float64, int(r.count()))
	for i := range ret {
		ret[i] = r.Start + float64(i)*r.Step
	}
	return ret
}

// Diameters evaluates every refrigerant in kinds at temperature t, degree C,
// for each droplet diameter of ds, mm.
func Diameters(kinds []refrigerant.Kind, t float64, ds Range, rec *Recorder) error {
	if err := ds.Check(); err != nil {
		return fmt.Errorf("diameter range: %w", err)
	}
	for _, k := range kinds {
		f, err := refrigerant.New(k, t)
		if err != nil {
			return err
		}
		if err := diameters(f, ds, rec); err != nil {
			return err
		}
	}
	return nil
}

// Temperatures evaluates refrigerant k at each temperature of ts, degree C,
// for each droplet diameter of ds, mm.
func Temperatures(k refrigerant.Kind, ts, ds Range, rec *Recorder) error {
	if err := ts.Check(); err != nil {
		return fmt.Errorf("temperature range: %w", err)
	}
	if err := ds.Check(); err != nil {
		return fmt.Errorf("diameter range: %w", err)
	}
	temps := ts.Values()
	f, err := refrigerant.New(k, temps[0])
	if err != nil {
		return err
	}
	for _, t := range temps {
		f.SetTemperature(t)
		if err := diameters(f, ds, rec); err != nil {
			return err
		}
	}
	return nil
}

func diameters(f *refrigerant.Freon, ds Range, rec *Recorder) error {
	for _, dmm := range ds.Values() {
		// mm -> m
		res, err := criteria.Evaluate(dmm/1000, f)
		if err != nil {
			return fmt.Errorf("%s at %v degree C: %w", f.Name(), f.Temperature(), err)
		}
		rec.Record(Record{
			Substance:     f.Name(),
			Temperature:   f.Temperature(),
			DiameterMM:    dmm,
			Archimedes:    res.Archimedes,
			Reynolds:      res.Reynolds,
			DriftVelocity: res.DriftVelocity,
		})
	}
	return nil
}
