package vmath

import (
	"math"
)

// ReferenceFPS is the frame rate smoothing rates are authored against
// A rate r means "close r of the remaining gap per frame at 60 Hz"
const ReferenceFPS = 60.0

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates a toward b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic maps t in [0,1] to 1-(1-t)^3, input is clamped
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// SmoothFactor converts a per-reference-frame rate into the factor for a frame of dt seconds
// dt == 1/ReferenceFPS returns rate unchanged; result is always in [0,1]
func SmoothFactor(rate, dt float64) float64 {
	if dt <= 0 || math.IsNaN(dt) || rate <= 0 {
		return 0
	}
	if rate >= 1 {
		return 1
	}
	return 1 - math.Pow(1-rate, dt*ReferenceFPS)
}

// Damp moves current toward target with exponential smoothing
// Never overshoots: the result lies between current and target
func Damp(current, target, rate, dt float64) float64 {
	return Lerp(current, target, SmoothFactor(rate, dt))
}
