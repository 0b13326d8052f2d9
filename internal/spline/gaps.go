package spline

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
FillGaps reconstructs missing (NaN) entries of a tabulated column.

The positional index of each entry is the abscissa. A spline is fitted
through the present entries and evaluated at every index, so present
entries are re-evaluated through the same curve as the gaps.

	Args:
	    ys: column values, NaN for a missing entry; first and last must be present

	Returns:
	    the densified column, or a *TableError
*/
func FillGaps(ys []float64) ([]float64, error) {
	n := len(ys)
	if n == 0 {
		return nil, tableErrorf("empty column")
	}
	if math.IsNaN(ys[0]) || math.IsNaN(ys[n-1]) {
		return nil, tableErrorf("first and last values must be present: first=%v, last=%v", ys[0], ys[n-1])
	}
	if !floats.HasNaN(ys) {
		return append([]float64(nil), ys...), nil
	}

	xs := make([]float64, 0, n)
	known := make([]float64, 0, n)
	for i, y := range ys {
		if math.IsNaN(y) {
			continue
		}
		xs = append(xs, float64(i))
		known = append(known, y)
	}

	s, err := NewSpline(xs, known)
	if err != nil {
		return nil, err
	}

	filled := make([]float64, n)
	for i := range filled {
		// indices stay within [0, n-1], the spline's domain
		filled[i], err = s.Evaluate(float64(i))
		if err != nil {
			return nil, err
		}
	}
	return filled, nil
}
