package visitors

import (
	"math"
	"strconv"
	"strings"

	"github.com/mandelsoft/equation/pkg/equation/literals"
)

const maxExactInt = 1 << 53

// FormatArgument returns the textual representation of the value of
// an argument. Integer values are shown without decimal point.
func FormatArgument(a *literals.Argument) string {
	if a.Integer && math.Trunc(a.Value) == a.Value && math.Abs(a.Value) < maxExactInt {
		return strconv.FormatInt(int64(a.Value), 10)
	}
	return FormatValue(a.Value)
}

// FormatValue returns the default textual representation of a numeric
// argument value. It always carries a decimal point or an exponent
// (3.0, 0.25, 1e-05, 1.5e+16), so that a rendered constant stays
// distinguishable from an integer.
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return s
	}
	s = strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
