package nanbox

import "math"

// ---------------------------------------------------------------------------
// float64 views
// ---------------------------------------------------------------------------

// IsBoxedFloat reports whether number is a boxed NaN.
func IsBoxedFloat(number float64) bool {
	return IsBoxed(math.Float64bits(number))
}

// BoxUnsignedFloat is BoxUnsigned returning the word as a double.
// The result is always NaN.
func BoxUnsignedFloat(value uint64) float64 {
	return math.Float64frombits(BoxUnsigned(value))
}

// UnboxUnsignedFloat is UnboxUnsigned over a double.
func UnboxUnsignedFloat(number float64) (uint64, bool) {
	return UnboxUnsigned(math.Float64bits(number))
}

// BoxSignedFloat is BoxSigned returning the word as a double.
// The result is always NaN.
func BoxSignedFloat(value int64) float64 {
	return math.Float64frombits(BoxSigned(value))
}

// UnboxSignedFloat is UnboxSigned over a double.
func UnboxSignedFloat(number float64) (int64, bool) {
	return UnboxSigned(math.Float64bits(number))
}
