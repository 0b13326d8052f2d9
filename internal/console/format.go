package console

import (
	"strconv"
	"strings"
)

// FormatFloat renders v in the shortest form that reads back to the same
// value, with a decimal comma when comma is set.
func FormatFloat(v float64, comma bool) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if comma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}
