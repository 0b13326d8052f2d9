package refrigerant

import (
	"fmt"
	"strings"
)

// Kind identifies one refrigerant of the closed catalog.
type Kind string

// Refrigerants with tabulated properties.
const (
	R134 Kind = "R134"
	R407 Kind = "R407"
	R410 Kind = "R410"
	R32  Kind = "R32"
)

// Kinds returns every refrigerant in catalog order. The index of a kind in
// this slice is the number offered to the user when choosing a substance.
func Kinds() []Kind {
	return []Kind{R134, R407, R410, R32}
}

// KindAt returns the refrigerant at position i of Kinds.
func KindAt(i int) (Kind, bool) {
	kinds := Kinds()
	if i < 0 || i >= len(kinds) {
		return "", false
	}
	return kinds[i], true
}

// ParseKind accepts a refrigerant name such as "R134", "r410" or "32".
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "R") {
		name = "R" + name
	}
	for _, k := range Kinds() {
		if Kind(name) == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown refrigerant %q", s)
}

func (k Kind) String() string {
	return string(k)
}

// fileName returns the embedded table holding the kind's properties.
func (k Kind) fileName() string {
	switch k {
	case R134:
		return "r134.csv"
	case R407:
		return "r407.csv"
	case R410:
		return "r410.csv"
	case R32:
		return "r32.csv"
	default:
		panic("invalid refrigerant")
	}
}
