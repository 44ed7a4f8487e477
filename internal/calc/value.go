package calc

import (
	"math"
	"strconv"
)

// FormatValue renders a result for the user. A precision of -1 uses the
// smallest number of digits that represents the value exactly.
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
