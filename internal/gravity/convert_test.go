package gravity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBrix(t *testing.T) {
	tests := []struct {
		name string
		sg   float64
		want float64
	}{
		{"typical wort", 1.067, 16.36},
		{"mid fermentation", 1.033, 8.29},
		{"near terminal", 1.015, 3.83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBrix(tt.sg))
		})
	}
}

func TestToBrix_Water(t *testing.T) {
	// The cubic fit is not anchored at exactly zero for water.
	assert.InDelta(t, 0, ToBrix(1.000), 0.01)
}

func TestToSpecificGravity(t *testing.T) {
	tests := []struct {
		name string
		brix float64
		want float64
	}{
		{"water", 0, 1.000},
		{"typical wort", 16.36, 1.067},
		{"mid fermentation", 8.29, 1.033},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSpecificGravity(tt.brix))
		})
	}
}

func TestRoundTrip_ApproximatelyRecovers(t *testing.T) {
	// The two conversions are independent fits, so a round trip only
	// agrees to within the rounding precision.
	for i := 0; i <= 200; i++ {
		sg := 1.000 + float64(i)/1000
		got := ToSpecificGravity(ToBrix(sg))
		assert.InDelta(t, sg, got, 0.01, "round trip of %.3f", sg)
	}
}
