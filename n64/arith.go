package n64

import "math"

// ---------------------------------------------------------------------------
// Arithmetic
// ---------------------------------------------------------------------------

// When both operands are boxed, each is decoded as a signed integer and the
// operation wraps like int64 before the result is boxed again, truncating
// its magnitude to nanbox.PayloadWidth bits. Payload operands decode as 0.
//
// When either operand is a double, boxed operands are first decoded to
// their integer value (0 for payloads) and converted to float64, and the
// operation runs in floating point.

// integer decodes a boxed operand, with payloads reading as 0.
func (n N64) integer() int64 {
	i, _ := n.Int()
	return i
}

// float decodes any operand as a double.
func (n N64) float() float64 {
	if n.IsBoxed() {
		return float64(n.integer())
	}
	return math.Float64frombits(uint64(n))
}

// Add returns n + o.
func (n N64) Add(o N64) N64 {
	if n.IsBoxed() && o.IsBoxed() {
		return FromInt(n.integer() + o.integer())
	}
	return FromFloat64(n.float() + o.float())
}

// Sub returns n - o.
func (n N64) Sub(o N64) N64 {
	if n.IsBoxed() && o.IsBoxed() {
		return FromInt(n.integer() - o.integer())
	}
	return FromFloat64(n.float() - o.float())
}

// Mul returns n * o.
func (n N64) Mul(o N64) N64 {
	if n.IsBoxed() && o.IsBoxed() {
		return FromInt(n.integer() * o.integer())
	}
	return FromFloat64(n.float() * o.float())
}

// Neg returns -n. A payload negates to the integer 0.
func (n N64) Neg() N64 {
	if n.IsBoxed() {
		return FromInt(-n.integer())
	}
	return FromFloat64(-n.float())
}

// AddBits returns n + o with the older mixed-operand rule: when either
// operand is a double, the raw bits of both are added as doubles. A boxed
// operand reads as a NaN, so the sum is a NaN whose bits depend on how the
// hardware propagates NaN payloads.
func (n N64) AddBits(o N64) N64 {
	if n.IsBoxed() && o.IsBoxed() {
		return FromInt(n.integer() + o.integer())
	}
	return FromFloat64(math.Float64frombits(uint64(n)) + math.Float64frombits(uint64(o)))
}
