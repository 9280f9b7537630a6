package gravity

import "fmt"

// Result holds a fully corrected reading pair: the three gravities in both
// scales plus the derived metrics.
type Result struct {
	OriginalSG        float64
	OriginalBrix      float64
	FinalSG           float64
	FinalBrix         float64
	AdjustedFinalSG   float64
	AdjustedFinalBrix float64
	ABV               float64 // percent
	Attenuation       float64 // percent
	Calories          float64 // kcal per 12 oz serving
}

// Compute runs the full correction pipeline on a validated reading pair:
// normalize to both scales, apply the alcohol correction to the Brix pair,
// then derive ABV, attenuation, and calories from the specific gravity pair.
//
// Inputs are validated for range and ordering first, so callers may pass
// raw user input directly. The two unit modes produce identical results for
// equivalent readings because each conversion rounds before the next stage
// consumes it.
func Compute(og, fg float64, unit Unit) (Result, error) {
	if err := Validate(og, fg, unit); err != nil {
		return Result{}, err
	}

	var r Result
	switch unit {
	case UnitBrix:
		r.OriginalBrix = og
		r.FinalBrix = fg
		r.OriginalSG = ToSpecificGravity(og)
		r.FinalSG = ToSpecificGravity(fg)
	default:
		r.OriginalSG = og
		r.FinalSG = fg
		r.OriginalBrix = ToBrix(og)
		r.FinalBrix = ToBrix(fg)
	}

	// The attenuation and calorie formulas divide by (ogSG - 1) and
	// (1.775 - ogSG) respectively. Refuse those inputs rather than letting
	// NaN or Inf reach the output.
	if r.OriginalSG == 1 || r.OriginalSG == 1.775 {
		return Result{}, fmt.Errorf("%w: %g SG", ErrDegenerate, r.OriginalSG)
	}

	r.AdjustedFinalSG = AdjustedFinalGravity(r.OriginalBrix, r.FinalBrix)
	r.AdjustedFinalBrix = ToBrix(r.AdjustedFinalSG)

	r.ABV = ABV(r.OriginalSG, r.AdjustedFinalSG)
	r.Attenuation = Attenuation(r.OriginalSG, r.AdjustedFinalSG)
	r.Calories = Calories(r.OriginalSG, r.AdjustedFinalSG)

	return r, nil
}
