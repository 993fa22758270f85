package f62

import (
	"fmt"
	"math"
)

// Float62 is a number boxed into a single word: a 63-bit integer, a 62-bit
// payload or a double. The branch is determined by the low bits alone.
//
// The zero value is the integer 0.
type Float62 uint64

// FromBits wraps a word without checking it. Every word is a valid Float62.
func FromBits(word uint64) Float62 {
	return Float62(word)
}

// FromInteger creates a Float62 from an integer in [MinInteger, MaxInteger].
func FromInteger(value int64) Float62 {
	return Float62(BoxInteger(value))
}

// FromPayload creates a Float62 from a payload no larger than MaxPayload.
func FromPayload(value uint64) Float62 {
	return Float62(BoxPayload(value))
}

// FromFloat creates a Float62 from a double. See BoxFloat for zero and
// out-of-range magnitudes.
func FromFloat(number float64) Float62 {
	return Float62(BoxFloat(number))
}

// Bits returns the underlying word.
func (f Float62) Bits() uint64 {
	return uint64(f)
}

// Integer returns f as an integer.
func (f Float62) Integer() (int64, bool) {
	return UnboxInteger(uint64(f))
}

// Payload returns f as a payload.
func (f Float62) Payload() (uint64, bool) {
	return UnboxPayload(uint64(f))
}

// Float returns f as a double.
func (f Float62) Float() (float64, bool) {
	return UnboxFloat(uint64(f))
}

// IsInteger reports whether f holds an integer.
func (f Float62) IsInteger() bool { return IsInteger(uint64(f)) }

// IsPayload reports whether f holds a payload.
func (f Float62) IsPayload() bool { return IsPayload(uint64(f)) }

// IsFloat reports whether f holds a double.
func (f Float62) IsFloat() bool { return IsFloat(uint64(f)) }

// String formats f as int(n), float(x) or payload(0x...).
func (f Float62) String() string {
	switch {
	case f.IsInteger():
		return fmt.Sprintf("int(%d)", int64(f)>>1)
	case f.IsPayload():
		return fmt.Sprintf("payload(%#x)", uint64(f)>>2)
	default:
		x, _ := f.Float()
		return fmt.Sprintf("float(%v)", x)
	}
}

// ---------------------------------------------------------------------------
// Arithmetic
// ---------------------------------------------------------------------------

// Arithmetic on two integers wraps like int64 arithmetic truncated to 63
// bits and never promotes. If either operand is a double, both are converted
// to float64 and the result is boxed with boxResult:
//   - magnitudes of 2^257 and above, including infinities, saturate to
//     ±MaxFloat
//   - non-zero magnitudes below MinFloat flush to the integer 0
//   - a zero result of either sign is the integer 0
//
// A float result is therefore never silently replaced by a different finite
// value of similar magnitude, as FromFloat would do.
//
// Payloads carry no numeric meaning. Passing one to an arithmetic or
// comparison method is a caller error and panics.

// operands decodes f and o. When both are integers, x and y hold them and
// isInt is true; otherwise a and b hold both operands as doubles.
func operands(op string, f, o Float62) (x, y int64, a, b float64, isInt bool) {
	if f.IsPayload() || o.IsPayload() {
		panic("Float62." + op + ": payload operand")
	}
	x = int64(f) >> 1
	y = int64(o) >> 1
	if f.IsInteger() && o.IsInteger() {
		return x, y, 0, 0, true
	}
	return x, y, f.toFloat64(), o.toFloat64(), false
}

// boxResult boxes the double result of an arithmetic method.
func boxResult(x float64) Float62 {
	switch {
	case Representable(x):
		return FromFloat(x)
	case math.Abs(x) > MaxFloat:
		return FromFloat(math.Copysign(MaxFloat, x))
	default:
		return 0
	}
}

// toFloat64 converts a non-payload value to a double.
func (f Float62) toFloat64() float64 {
	if f.IsInteger() {
		return float64(int64(f) >> 1)
	}
	return math.Float64frombits(rotateRight(uint64(f)) - exponentBias)
}

// Add returns f + o.
func (f Float62) Add(o Float62) Float62 {
	x, y, a, b, isInt := operands("Add", f, o)
	if isInt {
		return FromInteger(x + y)
	}
	return boxResult(a + b)
}

// Sub returns f - o.
func (f Float62) Sub(o Float62) Float62 {
	x, y, a, b, isInt := operands("Sub", f, o)
	if isInt {
		return FromInteger(x - y)
	}
	return boxResult(a - b)
}

// Mul returns f * o.
func (f Float62) Mul(o Float62) Float62 {
	x, y, a, b, isInt := operands("Mul", f, o)
	if isInt {
		return FromInteger(x * y)
	}
	return boxResult(a * b)
}

// Div returns f / o. Integer division truncates toward zero and panics when
// o is the integer 0, like Go's / operator. A double divided by the integer
// 0 saturates to ±MaxFloat.
func (f Float62) Div(o Float62) Float62 {
	x, y, a, b, isInt := operands("Div", f, o)
	if isInt {
		return FromInteger(x / y)
	}
	return boxResult(a / b)
}

// Neg returns -f. The float branch range is symmetric, so negating a double
// is exact. Zero is not a double here: FromFloat(0).Neg() is the integer 0,
// which differs from FromFloat(-0.0), the integer MinInteger.
func (f Float62) Neg() Float62 {
	switch {
	case f.IsInteger():
		return FromInteger(-(int64(f) >> 1))
	case f.IsPayload():
		panic("Float62.Neg: payload operand")
	default:
		return FromFloat(-f.toFloat64())
	}
}

// AddAssign sets f to f + o.
func (f *Float62) AddAssign(o Float62) { *f = f.Add(o) }

// SubAssign sets f to f - o.
func (f *Float62) SubAssign(o Float62) { *f = f.Sub(o) }

// MulAssign sets f to f * o.
func (f *Float62) MulAssign(o Float62) { *f = f.Mul(o) }

// DivAssign sets f to f / o.
func (f *Float62) DivAssign(o Float62) { *f = f.Div(o) }

// Cmp compares f and o numerically and returns -1, 0 or +1. It follows the
// same promotion rule as the arithmetic methods.
func (f Float62) Cmp(o Float62) int {
	x, y, a, b, isInt := operands("Cmp", f, o)
	if isInt {
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
