package gravity

import "math"

// round returns v rounded to the given number of decimal places.
func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

// ToBrix converts a specific gravity reading to degrees Brix using a cubic
// fit, rounded to 2 decimal places.
func ToBrix(sg float64) float64 {
	brix := 182.4601*sg*sg*sg - 775.6821*sg*sg + 1262.7794*sg - 669.5622
	return round(brix, 2)
}

// ToSpecificGravity converts degrees Brix to specific gravity using a
// rational fit, rounded to 3 decimal places.
//
// ToBrix and ToSpecificGravity are independent empirical fits, not exact
// inverses. A round trip recovers the original value only to within the
// rounding precision, so callers must not compare converted values for
// exact equality.
func ToSpecificGravity(brix float64) float64 {
	sg := brix/(258.6-(brix/258.2)*227.1) + 1
	return round(sg, 3)
}
