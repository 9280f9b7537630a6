package gravity

import (
	"errors"
	"fmt"
	"math"
)

// Unit selects how raw gravity inputs are interpreted.
type Unit int

const (
	UnitSG Unit = iota
	UnitBrix
)

// String returns the unit name as used in config files and CLI output.
func (u Unit) String() string {
	if u == UnitBrix {
		return "brix"
	}
	return "sg"
}

// ParseUnit parses a unit name ("sg" or "brix").
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "sg", "":
		return UnitSG, nil
	case "brix":
		return UnitBrix, nil
	default:
		return UnitSG, fmt.Errorf("unknown unit: %s (available: sg, brix)", s)
	}
}

// Validation error kinds. Commands match these with errors.Is to decide how
// to report; the core never terminates the process itself.
var (
	// ErrOrdering means the original gravity does not exceed the final
	// gravity. Fermentation only reduces density, so attenuation can never
	// be negative for a real reading pair.
	ErrOrdering = errors.New("original gravity must not be less than final gravity")

	// ErrRange means a reading falls outside the scale-appropriate bounds:
	// [0, 1.200] for specific gravity, [0, 44.1] for Brix. Non-finite
	// values are rejected under the same kind.
	ErrRange = errors.New("gravity reading out of range")

	// ErrDegenerate means the original gravity hits a division-by-zero
	// point in the attenuation or calorie formulas (1.000 or 1.775 SG).
	ErrDegenerate = errors.New("degenerate original gravity")
)

// Bounds for each input scale.
const (
	MaxSG   = 1.200
	MaxBrix = 44.1
)

// Validate checks a reading pair against the range and ordering constraints
// for the given unit. It returns nil when the pair is safe to feed into
// Compute.
func Validate(og, fg float64, unit Unit) error {
	upper := MaxSG
	if unit == UnitBrix {
		upper = MaxBrix
	}

	for _, v := range []float64{og, fg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v is not a finite number", ErrRange, v)
		}
		if v < 0 || v > upper {
			return fmt.Errorf("%w: %g outside [0, %g] %s", ErrRange, v, upper, unit)
		}
	}

	if og < fg {
		return fmt.Errorf("%w: %g < %g", ErrOrdering, og, fg)
	}

	return nil
}
