package utils

import "math"

// RoundHalfUp rounds to the nearest integer, halves toward positive infinity
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundTo rounds x to the given number of decimal places using RoundHalfUp
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return RoundHalfUp(x*p) / p
}

// Clamp bounds x to [min, max]
func Clamp(x, min, max float64) float64 {
	return math.Max(min, math.Min(max, x))
}

// Mean returns the arithmetic mean, or 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
