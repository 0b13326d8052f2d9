// Package spline fits natural cubic splines to tabulated data and
// reconstructs gaps in tabulated columns.
package spline

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Spline is a natural cubic spline (y'' = 0 at both ends) through a set of
// knots. It does not extrapolate.
type Spline struct {
	xs, ys   []float64
	min, max float64
	fit      interp.NaturalCubic
}

/*
NewSpline fits a spline through (xs[i], ys[i]).

	Args:
	    xs: knots, strictly increasing, at least 2
	    ys: values at the knots, no NaN

	Returns:
	    the fitted spline, or a *TableError
*/
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, tableErrorf("size mismatch: x has %d values, y has %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, tableErrorf("at least 2 points are required, got %d", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, tableErrorf("x must be strictly increasing: x[%d]=%v, x[%d]=%v", i-1, xs[i-1], i, xs[i])
		}
	}
	if floats.HasNaN(ys) {
		return nil, tableErrorf("y has missing values")
	}

	s := &Spline{
		xs:  append([]float64(nil), xs...),
		ys:  append([]float64(nil), ys...),
		min: floats.Min(xs),
		max: floats.Max(xs),
	}
	if err := s.fit.Fit(s.xs, s.ys); err != nil {
		return nil, tableErrorf("spline fit: %v", err)
	}
	return s, nil
}

// Evaluate returns the spline value at x, or a *DomainError when x is
// outside the knots.
func (s *Spline) Evaluate(x float64) (float64, error) {
	if !(x >= s.min && x <= s.max) {
		return 0, &DomainError{Value: x, Min: s.min, Max: s.max}
	}
	return s.fit.Predict(x), nil
}
