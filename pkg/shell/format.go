package shell

import (
	"math"
	"strconv"
)

// Format formats a result for display. Integral values are shown without a
// fractional part; other values are shown with the given number of decimal
// digits.
func Format(v float32, precision int) string {
	x := float64(v)
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		// Also covers negative zero.
		return "0"
	case x == math.Trunc(x):
		return strconv.FormatFloat(x, 'f', 0, 32)
	}
	return strconv.FormatFloat(x, 'f', precision, 32)
}
