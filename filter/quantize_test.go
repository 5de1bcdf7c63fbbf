package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0.1, 0.1},
		{1.9, 0.1},
		{2, 0.5},
		{5, 0.5},
		{5.5, 1},
		{10, 1},
		{10.5, 2},
		{50, 2},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, Step(tt.value), "Step(%v)", tt.value)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{1.95, 2.0},
		{7.3, 7.0},
		{0.13, 0.1},
		{3.2, 3.0},
		{4.8, 5.0},
		{12.9, 12.0},
		{2, 2.0},
		{5, 5.0},
		{10, 10.0},
	}

	for _, tt := range tests {
		require.InDelta(t, tt.want, Quantize(tt.value), 1e-9, "Quantize(%v)", tt.value)
	}
}

func TestClampDistance(t *testing.T) {
	require.Equal(t, MinDistance, ClampDistance(0))
	require.Equal(t, MinDistance, ClampDistance(-3))
	require.Equal(t, 7.0, ClampDistance(7))
	require.Equal(t, MaxDistance, ClampDistance(120))
}

func TestDistancePresetsWithinBounds(t *testing.T) {
	for _, preset := range DistancePresets {
		require.Equal(t, preset, ClampDistance(preset))
	}
}
