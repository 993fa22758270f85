// Package n64 implements N64, a 64-bit number that is either an unboxed
// double or a quiet-NaN boxed signed integer or payload.
package n64

import (
	"fmt"
	"math"

	"github.com/chazu/nonbox/nanbox"
)

// IntegerFlag marks boxed signed integers. Payloads leave it clear.
const IntegerFlag = nanbox.FlagMask

// N64 holds a double, a signed integer or a payload of
// nanbox.PayloadWidth bits.
//
// A word outside the nanbox boxed class is a double. Inside it, IntegerFlag
// separates integers from payloads. Genuine doubles never fall in the boxed
// class because it is carved out of the NaN space with a marker bit that
// default NaNs leave clear.
type N64 uint64

// FromBits wraps a word without checking it.
func FromBits(word uint64) N64 {
	return N64(word)
}

// FromFloat64 stores the raw bits of number.
func FromFloat64(number float64) N64 {
	return N64(math.Float64bits(number))
}

// FromPayload boxes a payload. Bits above nanbox.PayloadWidth are dropped.
func FromPayload(value uint64) N64 {
	return N64(nanbox.BoxUnsigned(value))
}

// FromInt boxes a signed integer. Magnitudes above nanbox.MaxSigned are
// truncated like nanbox.BoxSigned.
func FromInt(value int64) N64 {
	return N64(nanbox.BoxSigned(value) | IntegerFlag)
}

// Bits returns the underlying word.
func (n N64) Bits() uint64 {
	return uint64(n)
}

// IsBoxed reports whether n holds an integer or a payload.
func (n N64) IsBoxed() bool {
	return nanbox.IsBoxed(uint64(n))
}

// IsNumber reports whether n is boxed without IntegerFlag, which is the
// case for payloads.
func (n N64) IsNumber() bool {
	return n.IsBoxed() && uint64(n)&IntegerFlag == 0
}

// IsInt reports whether n holds a signed integer.
func (n N64) IsInt() bool {
	return nanbox.IsFlagged(uint64(n))
}

// IsPayload reports whether n holds a payload.
func (n N64) IsPayload() bool {
	return n.IsNumber()
}

// IsFloat reports whether n holds a double.
func (n N64) IsFloat() bool {
	return !n.IsBoxed()
}

// Float64 returns n as a double.
func (n N64) Float64() (float64, bool) {
	if n.IsBoxed() {
		return 0, false
	}
	return math.Float64frombits(uint64(n)), true
}

// Payload returns n as a payload.
func (n N64) Payload() (uint64, bool) {
	if !n.IsNumber() {
		return 0, false
	}
	return uint64(n) & nanbox.PayloadMask, true
}

// Int returns n as a signed integer.
func (n N64) Int() (int64, bool) {
	if !n.IsInt() {
		return 0, false
	}
	return nanbox.UnboxSigned(uint64(n))
}

// String formats n as int(n), float(x) or payload(0x...).
func (n N64) String() string {
	switch {
	case n.IsInt():
		i, _ := n.Int()
		return fmt.Sprintf("int(%d)", i)
	case n.IsBoxed():
		p, _ := n.Payload()
		return fmt.Sprintf("payload(%#x)", p)
	default:
		return fmt.Sprintf("float(%v)", math.Float64frombits(uint64(n)))
	}
}
