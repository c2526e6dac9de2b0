package anneal

import (
	"fmt"
	"math"
)

// Schedule maps run progress in (0,1] and the incumbent energy to a temperature.
// Any func with this signature can back Annealer.Temperature.
type Schedule func(progress, energy float64) float64

// EnergyScaled cools relative to the incumbent's quality:
//
//	T(p, e) = scale · exp(-rate · p) · e
//
// EnergyScaled(100, 12) is the classic circle-TSP schedule.
// No bounds are checked; a non-positive energy yields a non-positive temperature.
func EnergyScaled(scale, rate float64) Schedule {
	return func(progress, energy float64) float64 {
		return scale * math.Exp(-rate*progress) * energy
	}
}

// Exponential decays geometrically from start towards end, reaching end at
// progress == 1. Both bounds must be finite and > 0.
func Exponential(start, end float64) (Schedule, error) {
	if !finitePositive(start) || !finitePositive(end) {
		return nil, fmt.Errorf("%w: exponential start=%v end=%v", ErrInvalidSchedule, start, end)
	}
	var ratio = end / start
	return func(progress, _ float64) float64 {
		return start * math.Pow(ratio, progress)
	}, nil
}

// Linear interpolates from start to end, reaching end at progress == 1.
// Both bounds must be finite and >= 0.
func Linear(start, end float64) (Schedule, error) {
	if math.IsNaN(start) || math.IsInf(start, 0) || start < 0 ||
		math.IsNaN(end) || math.IsInf(end, 0) || end < 0 {
		return nil, fmt.Errorf("%w: linear start=%v end=%v", ErrInvalidSchedule, start, end)
	}
	return func(progress, _ float64) float64 {
		return start + progress*(end-start)
	}, nil
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
