package gravity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestABV(t *testing.T) {
	assert.Equal(t, 6.83, ABV(1.067, 1.015))
}

func TestABV_NoGravityDrop(t *testing.T) {
	assert.Equal(t, 0.0, ABV(1.050, 1.050))
}

func TestABV_NonNegativeUnderOrderingInvariant(t *testing.T) {
	// Any pair the validator accepts has og >= fg, so ABV can never go
	// negative.
	for og := 1.020; og <= 1.120; og += 0.010 {
		for fg := 1.000; fg <= og; fg += 0.005 {
			assert.GreaterOrEqual(t, ABV(og, fg), 0.0, "og=%.3f fg=%.3f", og, fg)
		}
	}
}

func TestAttenuation(t *testing.T) {
	assert.Equal(t, 77.61, Attenuation(1.067, 1.015))
}

func TestAttenuation_MonotonicInFinalGravity(t *testing.T) {
	// For a fixed original gravity, a drier beer attenuates more.
	const og = 1.060
	prev := Attenuation(og, 1.030)
	for fg := 1.025; fg >= 1.000; fg -= 0.005 {
		curr := Attenuation(og, fg)
		assert.Greater(t, curr, prev, "fg=%.3f", fg)
		prev = curr
	}
}

func TestCalories(t *testing.T) {
	assert.InDelta(t, 226.72, Calories(1.067, 1.015), 0.01)
}

func TestCalories_SessionBeerLighter(t *testing.T) {
	session := Calories(1.040, 1.008)
	imperial := Calories(1.090, 1.020)
	assert.Less(t, session, imperial)
}
