// Package mathx holds small numeric helpers shared by the prediction features.
package mathx

import "math"

// Round rounds v to n decimal places. A negative n returns v unchanged.
func Round(v float64, n int) float64 {
	if n < 0 {
		return v
	}
	mul := math.Pow(10, float64(n))
	return math.Round(v*mul) / mul
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
