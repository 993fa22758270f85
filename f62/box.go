package f62

import (
	"math"
	"math/bits"
)

// ---------------------------------------------------------------------------
// Predicates
// ---------------------------------------------------------------------------

// IsInteger reports whether word holds a boxed integer.
func IsInteger(word uint64) bool {
	return word&IntegerMask == IntegerTag
}

// IsPayload reports whether word holds a boxed payload.
func IsPayload(word uint64) bool {
	return word&TagMask == PayloadTag
}

// IsFloat reports whether word holds a boxed double.
func IsFloat(word uint64) bool {
	return word&TagMask == FloatTag
}

// ---------------------------------------------------------------------------
// Integers
// ---------------------------------------------------------------------------

// BoxInteger boxes a 63-bit signed integer. The top bit of values outside
// [MinInteger, MaxInteger] is lost.
func BoxInteger(value int64) uint64 {
	return uint64(value) << 1
}

// UnboxInteger decodes a boxed integer.
func UnboxInteger(word uint64) (int64, bool) {
	if !IsInteger(word) {
		return 0, false
	}
	return int64(word) >> 1, true
}

// ---------------------------------------------------------------------------
// Payloads
// ---------------------------------------------------------------------------

// BoxPayload boxes a 62-bit payload. The top two bits of value are lost.
func BoxPayload(value uint64) uint64 {
	return value<<2 | PayloadTag
}

// UnboxPayload decodes a boxed payload.
func UnboxPayload(word uint64) (uint64, bool) {
	if !IsPayload(word) {
		return 0, false
	}
	return word >> 2, true
}

// ---------------------------------------------------------------------------
// Floats
// ---------------------------------------------------------------------------

// Representable reports whether BoxFloat keeps number exactly and classifies
// it as a float.
func Representable(number float64) bool {
	biased := math.Float64bits(number)&^signMask + exponentBias
	return biased >= minBiased && biased&signMask == 0
}

// BoxFloat boxes a double.
//
// Zero of either sign is returned as its raw bit pattern and classifies as
// an integer. For magnitudes outside Representable the top two exponent
// bits are overwritten by the tag, so the decoded value differs.
func BoxFloat(number float64) uint64 {
	raw := math.Float64bits(number)
	if raw&^signMask == 0 {
		return raw
	}
	biased := raw&signMask | (raw+exponentBias)&^signMask
	return bits.RotateLeft64(biased, RotationCount) | FloatTag
}

// UnboxFloat decodes a boxed double. The words for zero are integers, so
// UnboxFloat(BoxFloat(0)) reports false.
func UnboxFloat(word uint64) (float64, bool) {
	if !IsFloat(word) {
		return 0, false
	}
	return math.Float64frombits(rotateRight(word) - exponentBias), true
}

func rotateRight(word uint64) uint64 {
	return bits.RotateLeft64(word, -RotationCount)
}
