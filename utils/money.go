package utils

import "math"

// Round2 rounds x to 2 decimal places. All stored money amounts
// (invoice totals, GST splits, TDS, journal lines) pass through here.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
