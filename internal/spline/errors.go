package spline

import "fmt"

// TableError reports tabulated data that cannot be interpolated:
// mismatched columns, unordered abscissae or a missing end value.
type TableError struct {
	Reason string
}

func (e *TableError) Error() string {
	return "invalid table: " + e.Reason
}

func tableErrorf(format string, args ...interface{}) error {
	return &TableError{Reason: fmt.Sprintf(format, args...)}
}

// DomainError reports a query outside the interpolated span.
type DomainError struct {
	Value    float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("value %v must lie in [%v, %v]", e.Value, e.Min, e.Max)
}
