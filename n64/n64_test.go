package n64

import (
	"math"
	"testing"

	"github.com/chazu/nonbox/nanbox"
)

// ---------------------------------------------------------------------------
// Construction tests
// ---------------------------------------------------------------------------

func TestFloatPassthrough(t *testing.T) {
	tests := []float64{0, math.Copysign(0, -1), 1, -1, 42.5, math.MaxFloat64, math.Inf(1), math.Inf(-1)}
	for _, f := range tests {
		n := FromFloat64(f)
		if n.IsBoxed() {
			t.Errorf("FromFloat64(%v).IsBoxed() = true, want false", f)
		}
		got, ok := n.Float64()
		if !ok || math.Float64bits(got) != math.Float64bits(f) {
			t.Errorf("FromFloat64(%v).Float64() = %v, %v, want %v, true", f, got, ok, f)
		}
		if _, ok := n.Int(); ok {
			t.Errorf("FromFloat64(%v).Int() ok = true, want false", f)
		}
	}
	n := FromFloat64(math.NaN())
	if got, ok := n.Float64(); !ok || !math.IsNaN(got) {
		t.Errorf("FromFloat64(NaN).Float64() = %v, %v, want NaN, true", got, ok)
	}
}

func TestIntRoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, 42, -42, nanbox.MaxSigned, nanbox.MinSigned}
	for _, i := range tests {
		n := FromInt(i)
		if !n.IsBoxed() || !n.IsInt() || n.IsNumber() || n.IsFloat() {
			t.Errorf("FromInt(%d) classified as %v", i, n)
		}
		got, ok := n.Int()
		if !ok || got != i {
			t.Errorf("FromInt(%d).Int() = %d, %v, want %d, true", i, got, ok, i)
		}
		if _, ok := n.Payload(); ok {
			t.Errorf("FromInt(%d).Payload() ok = true, want false", i)
		}
		if _, ok := n.Float64(); ok {
			t.Errorf("FromInt(%d).Float64() ok = true, want false", i)
		}
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 42, nanbox.MaxUnsigned}
	for _, p := range tests {
		n := FromPayload(p)
		if !n.IsBoxed() || !n.IsNumber() || !n.IsPayload() || n.IsInt() {
			t.Errorf("FromPayload(%d) classified as %v", p, n)
		}
		got, ok := n.Payload()
		if !ok || got != p {
			t.Errorf("FromPayload(%d).Payload() = %d, %v, want %d, true", p, got, ok, p)
		}
		if _, ok := n.Int(); ok {
			t.Errorf("FromPayload(%d).Int() ok = true, want false", p)
		}
	}
}

func TestFlagDoesNotCollide(t *testing.T) {
	if IntegerFlag&nanbox.PayloadMask != 0 || IntegerFlag&nanbox.BoxedMask != 0 || IntegerFlag&nanbox.SignMask != 0 {
		t.Errorf("IntegerFlag %#x overlaps the boxed layout", uint64(IntegerFlag))
	}
	if FromInt(5).Bits()&^IntegerFlag != FromPayload(5).Bits() {
		t.Error("FromInt(5) and FromPayload(5) should differ only in IntegerFlag")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		n    N64
		want string
	}{
		{FromInt(-3), "int(-3)"},
		{FromPayload(16), "payload(0x10)"},
		{FromFloat64(2.5), "float(2.5)"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Arithmetic tests
// ---------------------------------------------------------------------------

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  N64
		want N64
	}{
		{"int+int", FromInt(2).Add(FromInt(3)), FromInt(5)},
		{"float+float", FromFloat64(2.0).Add(FromFloat64(3.0)), FromFloat64(5.0)},
		{"int+float", FromInt(2).Add(FromFloat64(3.0)), FromFloat64(5.0)},
		{"float+int", FromFloat64(0.5).Add(FromInt(-2)), FromFloat64(-1.5)},
		{"payload+int", FromPayload(9).Add(FromInt(4)), FromInt(4)},
		{"payload+float", FromPayload(9).Add(FromFloat64(4.5)), FromFloat64(4.5)},
		{"int-int", FromInt(2).Sub(FromInt(3)), FromInt(-1)},
		{"float-int", FromFloat64(2.5).Sub(FromInt(1)), FromFloat64(1.5)},
		{"int*int", FromInt(-6).Mul(FromInt(7)), FromInt(-42)},
		{"float*int", FromFloat64(1.5).Mul(FromInt(2)), FromFloat64(3.0)},
		{"neg int", FromInt(8).Neg(), FromInt(-8)},
		{"neg float", FromFloat64(8.5).Neg(), FromFloat64(-8.5)},
		{"neg payload", FromPayload(8).Neg(), FromInt(0)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestIntAddTruncates(t *testing.T) {
	got, ok := FromInt(nanbox.MaxSigned).Add(FromInt(1)).Int()
	if !ok || got != 0 {
		t.Errorf("MaxSigned+1 = %d, %v, want 0, true", got, ok)
	}
}

func TestAddBits(t *testing.T) {
	if got := FromInt(2).AddBits(FromInt(3)); got != FromInt(5) {
		t.Errorf("FromInt(2).AddBits(FromInt(3)) = %v, want int(5)", got)
	}
	if got := FromFloat64(2.0).AddBits(FromFloat64(3.0)); got != FromFloat64(5.0) {
		t.Errorf("FromFloat64(2).AddBits(FromFloat64(3)) = %v, want float(5)", got)
	}
	got := FromInt(2).AddBits(FromFloat64(3.0))
	if !math.IsNaN(math.Float64frombits(got.Bits())) {
		t.Errorf("FromInt(2).AddBits(FromFloat64(3)) = %#x, want a NaN", got.Bits())
	}
}
