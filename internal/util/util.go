package util

import "math"

// RoundTo2 rounds to 2 decimal places, halves away from zero.
// Dashboard figures (areas, rates) are reported with this precision.
func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
