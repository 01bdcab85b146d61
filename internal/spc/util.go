package spc

import "math"

// MRound rounds x to the nearest multiple of base, the way spreadsheet
// MROUND does (halves round away from zero). A zero base returns NaN.
func MRound(x, base float64) float64 {
	if base == 0 {
		return math.NaN()
	}
	return base * math.Round(x/base)
}
