package gravity

// ABV returns alcohol by volume as a percentage, rounded to 2 decimal
// places. Both gravities are in specific gravity units; fgSG should be the
// alcohol-corrected final gravity.
func ABV(ogSG, fgSG float64) float64 {
	return round((ogSG-fgSG)*131.25, 2)
}

// Attenuation returns apparent attenuation as a percentage, rounded to 2
// decimal places: the share of the original extract consumed by
// fermentation, measured via the gravity drop.
//
// Degenerate at ogSG == 1 (division by zero). Compute rejects that input
// before calling here; callers invoking this directly must do the same.
func Attenuation(ogSG, fgSG float64) float64 {
	og := (ogSG - 1) * 1000
	fg := (fgSG - 1) * 1000
	return round((og-fg)/(og/100), 2)
}

// Calories estimates kcal per 12 oz serving as the sum of an alcohol term
// and a carbohydrate term, rounded to 2 decimal places.
//
// Degenerate at ogSG == 1.775 (division by zero). That value sits outside
// the valid gravity range, but the function itself has no guard.
func Calories(ogSG, fgSG float64) float64 {
	alcohol := 1881.22 * fgSG * (ogSG - fgSG) / (1.775 - ogSG)
	carbs := 3550 * fgSG * (0.1808*ogSG + 0.8192*fgSG - 1.0004)
	return round(alcohol+carbs, 2)
}
