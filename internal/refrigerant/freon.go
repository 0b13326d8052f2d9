// Package refrigerant provides the tabulated properties of the supported
// refrigerants and resolves them at an arbitrary temperature.
package refrigerant

import (
	"gonum.org/v1/gonum/floats"

	"github.com/e30n3/freon/internal/spline"
)

// Tabulated viscosities are in µPa s.
const viscosityScale = 1e-6

// lazy memoizes the result of a computation.
type lazy[T any] struct {
	value T
	err   error
	done  bool
}

func (l *lazy[T]) get(f func() (T, error)) (T, error) {
	if !l.done {
		l.value, l.err = f()
		l.done = true
	}
	return l.value, l.err
}

type curves struct {
	vaporDensity   lazy[*spline.Spline]
	liquidDensity  lazy[*spline.Spline]
	vaporViscosity lazy[*spline.Spline]
}

type properties struct {
	vaporDensity            lazy[float64]
	liquidDensity           lazy[float64]
	dynamicVaporViscosity   lazy[float64]
	kinematicVaporViscosity lazy[float64]
}

// Freon resolves the properties of one refrigerant at a temperature.
//
// Curves are fitted once per Freon; property values are computed on first
// access and kept until the temperature changes. A Freon is not safe for
// concurrent use.
type Freon struct {
	name        string
	table       Table
	temperature float64
	curves      curves
	props       properties
}

// New returns the refrigerant k at temperature t, degree C.
func New(k Kind, t float64) (*Freon, error) {
	table, err := k.Table()
	if err != nil {
		return nil, err
	}
	return FromTable(k.String(), table, t), nil
}

// FromTable returns a resolver over an arbitrary validated table.
func FromTable(name string, table Table, t float64) *Freon {
	return &Freon{name: name, table: table, temperature: t}
}

// Name returns the refrigerant name.
func (f *Freon) Name() string {
	return f.name
}

// Table returns the underlying property table.
func (f *Freon) Table() Table {
	return f.table
}

// Temperature returns the ambient temperature, degree C.
func (f *Freon) Temperature() float64 {
	return f.temperature
}

// SetTemperature changes the ambient temperature and drops cached properties.
func (f *Freon) SetTemperature(t float64) {
	if t == f.temperature {
		return
	}
	f.temperature = t
	f.props = properties{}
}

// Span returns the lowest and highest tabulated temperature, degree C.
func (f *Freon) Span() (lo, hi float64) {
	temps := f.table.Temperatures()
	return floats.Min(temps), floats.Max(temps)
}

// AvailableTemperature returns the temperature range reported for the
// refrigerant. Both bounds are the lowest tabulated temperature, as in the
// reference tables; use Span for the interpolation range.
func (f *Freon) AvailableTemperature() (lo, hi float64) {
	temps := f.table.Temperatures()
	return floats.Min(temps), floats.Min(temps)
}

/*
VaporDensity returns the vapor density at the current temperature.

	Returns:
	    vapor density, kg/m3

	Notes:
	    missing tabulated values are reconstructed by spline over the row
	    index before fitting against temperature
*/
func (f *Freon) VaporDensity() (float64, error) {
	return f.props.vaporDensity.get(func() (float64, error) {
		s, err := f.curves.vaporDensity.get(func() (*spline.Spline, error) {
			filled, err := spline.FillGaps(f.table.VaporDensities())
			if err != nil {
				return nil, err
			}
			return spline.NewSpline(f.table.Temperatures(), filled)
		})
		if err != nil {
			return 0, err
		}
		return s.Evaluate(f.temperature)
	})
}

/*
LiquidDensity returns the liquid density at the current temperature.

	Returns:
	    liquid density, kg/m3
*/
func (f *Freon) LiquidDensity() (float64, error) {
	return f.props.liquidDensity.get(func() (float64, error) {
		s, err := f.curves.liquidDensity.get(func() (*spline.Spline, error) {
			return spline.NewSpline(f.table.Temperatures(), f.table.LiquidDensities())
		})
		if err != nil {
			return 0, err
		}
		return s.Evaluate(f.temperature)
	})
}

/*
DynamicVaporViscosity returns the dynamic viscosity of the vapor.

	Returns:
	    dynamic viscosity, Pa s
*/
func (f *Freon) DynamicVaporViscosity() (float64, error) {
	return f.props.dynamicVaporViscosity.get(func() (float64, error) {
		s, err := f.curves.vaporViscosity.get(func() (*spline.Spline, error) {
			return spline.NewSpline(f.table.Temperatures(), f.table.VaporViscosities())
		})
		if err != nil {
			return 0, err
		}
		mu, err := s.Evaluate(f.temperature)
		if err != nil {
			return 0, err
		}
		return mu * viscosityScale, nil
	})
}

/*
KinematicVaporViscosity returns the kinematic viscosity of the vapor.

	Returns:
	    kinematic viscosity, m2/s
*/
func (f *Freon) KinematicVaporViscosity() (float64, error) {
	return f.props.kinematicVaporViscosity.get(func() (float64, error) {
		mu, err := f.DynamicVaporViscosity()
		if err != nil {
			return 0, err
		}
		rho, err := f.VaporDensity()
		if err != nil {
			return 0, err
		}
		return mu / rho, nil
	})
}
