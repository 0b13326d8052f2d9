package refrigerant

import (
	"fmt"
	"math"

	"github.com/e30n3/freon/internal/spline"
)

// TableRow holds the tabulated properties of a refrigerant at one
// saturation temperature.
type TableRow struct {
	Temperature    float64 // degree C
	VaporViscosity float64 // dynamic viscosity of the vapor, µPa s
	VaporDensity   float64 // kg/m3, NaN when not tabulated
	LiquidDensity  float64 // kg/m3
}

// HasVaporDensity reports whether the row carries a tabulated vapor density.
func (r TableRow) HasVaporDensity() bool {
	return !math.IsNaN(r.VaporDensity)
}

// Table is an immutable, temperature-ordered property table.
type Table struct {
	rows []TableRow
}

/*
NewTable validates rows and builds a table from them.

	Notes:
	    temperatures must be strictly increasing;
	    only interior rows may lack a vapor density;
	    viscosity and liquid density are always required.
*/
func NewTable(rows []TableRow) (Table, error) {
	n := len(rows)
	if n < 2 {
		return Table{}, &spline.TableError{Reason: "a table needs at least 2 rows"}
	}
	for i, r := range rows {
		if math.IsNaN(r.Temperature) || math.IsNaN(r.VaporViscosity) || math.IsNaN(r.LiquidDensity) {
			return Table{}, &spline.TableError{Reason: fmt.Sprintf("row %d has a missing required value", i)}
		}
		if i > 0 && !(r.Temperature > rows[i-1].Temperature) {
			return Table{}, &spline.TableError{Reason: fmt.Sprintf("temperatures must be strictly increasing at row %d", i)}
		}
	}
	if !rows[0].HasVaporDensity() || !rows[n-1].HasVaporDensity() {
		return Table{}, &spline.TableError{Reason: "first and last rows must have a vapor density"}
	}
	return Table{rows: append([]TableRow(nil), rows...)}, nil
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the rows.
func (t Table) Rows() []TableRow {
	return append([]TableRow(nil), t.rows...)
}

// Temperatures returns the temperature column, degree C.
func (t Table) Temperatures() []float64 {
	return t.column(func(r TableRow) float64 { return r.Temperature })
}

// VaporViscosities returns the vapor viscosity column, µPa s.
func (t Table) VaporViscosities() []float64 {
	return t.column(func(r TableRow) float64 { return r.VaporViscosity })
}

// VaporDensities returns the vapor density column, kg/m3, NaN for gaps.
func (t Table) VaporDensities() []float64 {
	return t.column(func(r TableRow) float64 { return r.VaporDensity })
}

// LiquidDensities returns the liquid density column, kg/m3.
func (t Table) LiquidDensities() []float64 {
	return t.column(func(r TableRow) float64 { return r.LiquidDensity })
}

func (t Table) column(get func(r TableRow) float64) []float64 {
	ret := make([]float64, len(t.rows))
	for i := range t.rows {
		ret[i] = get(t.rows[i])
	}
	return ret
}
