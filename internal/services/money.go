package services

import "github.com/shopspring/decimal"

var minorUnitsPerMajor = decimal.NewFromInt(100)

// minorToMajor converts an accumulated minor-unit sum to major units,
// rounded to cents. Aggregations must sum in integer minor units first and
// convert exactly once at the boundary so floating-point drift cannot
// accumulate across additions.
func minorToMajor(minor int64) float64 {
	return decimal.NewFromInt(minor).Div(minorUnitsPerMajor).Round(2).InexactFloat64()
}

// majorToMinor converts a major-unit amount to minor units, rounding to
// the nearest whole minor unit
func majorToMinor(major float64) int64 {
	return decimal.NewFromFloat(major).Mul(minorUnitsPerMajor).Round(0).IntPart()
}

// averageMajor divides a minor-unit total by count and returns the result
// in major units rounded to cents. Returns 0 when count is 0.
func averageMajor(totalMinor int64, count int) float64 {
	if count == 0 {
		return 0
	}
	return decimal.NewFromInt(totalMinor).
		Div(decimal.NewFromInt(int64(count))).
		Div(minorUnitsPerMajor).
		Round(2).
		InexactFloat64()
}
