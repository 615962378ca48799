package utils

import "github.com/shopspring/decimal"

// Rounding policy used at every aggregation boundary: intermediate results are
// kept at 4 fractional digits and final results at 2, always rounding half
// away from zero. Keeping it in one place stops per-call-site rounding from
// drifting.

const (
	// IntermediateScale is applied to per-line divisions before summation.
	IntermediateScale int32 = 4
	// FinalScale is applied to every caller-visible amount.
	FinalScale int32 = 2
)

// ScaleHalfUp rounds v to the given number of fractional digits, half away
// from zero on ties.
func ScaleHalfUp(v decimal.Decimal, digits int32) decimal.Decimal {
	return v.Round(digits)
}

// DivHalfUp divides a by b at IntermediateScale, half up. The caller must
// guarantee b != 0.
func DivHalfUp(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, IntermediateScale)
}
