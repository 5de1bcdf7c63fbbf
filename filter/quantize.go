package filter

import "math"

// Distance bounds in kilometers. The slider clamps to SliderMax; the
// quick-select presets may go up to MaxDistance.
const (
	MinDistance = 0.1
	MaxDistance = 50.0
	SliderMax   = 10.0

	// DefaultMaxDistance is the threshold a fresh session starts with.
	DefaultMaxDistance = 10.0
)

// DistancePresets are the quick-select values offered next to the slider.
var DistancePresets = []float64{1, 2, 5, 10, 20, 50}

// Step returns the slider increment for a given distance magnitude, coarser
// at larger distances.
func Step(v float64) float64 {
	switch {
	case v < 2:
		return 0.1
	case v <= 5:
		return 0.5
	case v <= 10:
		return 1
	default:
		return 2
	}
}

// Quantize rounds a candidate distance to the nearest increment of its own
// magnitude's step.
func Quantize(v float64) float64 {
	step := Step(v)
	return math.Round(v/step) * step
}

// ClampDistance forces a distance into the hard [MinDistance, MaxDistance]
// bound.
func ClampDistance(v float64) float64 {
	if v < MinDistance {
		return MinDistance
	}
	if v > MaxDistance {
		return MaxDistance
	}
	return v
}
