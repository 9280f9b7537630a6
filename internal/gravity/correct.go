package gravity

// AdjustedFinalGravity computes the alcohol-corrected final gravity from the
// original and final refractometer readings, both in degrees Brix. The
// result is a specific gravity value rounded to 3 decimal places.
//
// Dissolved ethanol raises a refractometer's final reading, making the beer
// look less fermented than it is. This is Sean Terrill's linear correction
// model compensating for that skew. Callers holding specific gravity inputs
// must convert through ToBrix first.
func AdjustedFinalGravity(ogBrix, fgBrix float64) float64 {
	return round(1.0000-0.00085683*ogBrix+0.0034941*fgBrix, 3)
}
