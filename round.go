package viewcurve

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultDecimalPlaces is the rounding precision used for coordinate
// comparisons when the caller has no better value.
const DefaultDecimalPlaces = 4

// Rounding precisions used by the relationship tests and the extent selector,
// matching the drawing tools these curves originate from.
const (
	slopePlaces  = 2
	lengthPlaces = 2
)

// Round rounds v to the given number of decimal places, rounding halfway
// cases to the nearest even digit. Rounding operates on the shortest decimal
// representation of v, so Round(2.675, 2) is 2.68 even though the closest
// float64 to 2.675 is slightly smaller.
//
// NaN and infinities are returned unchanged.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).RoundBank(int32(places)).Float64()
	return f
}

// Tolerance returns 10^-places, the tolerance matching a rounding precision.
func Tolerance(places int) float64 {
	return math.Pow(10, -float64(places))
}
