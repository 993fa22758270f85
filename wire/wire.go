// Package wire encodes Float62 and N64 values as CBOR.
//
// Integers become CBOR integers, doubles become CBOR floats and payloads
// become an unsigned integer wrapped in PayloadTag. Encoding uses canonical
// mode, so equal values always produce equal bytes.
package wire

import (
	"errors"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/nonbox/f62"
	"github.com/chazu/nonbox/n64"
	"github.com/chazu/nonbox/nanbox"
)

// PayloadTag is the CBOR tag number wrapping boxed payloads.
const PayloadTag uint64 = 51062

var (
	// ErrUnsupported is returned for CBOR items that are not numbers or
	// payload tags.
	ErrUnsupported = errors.New("unsupported item")

	// ErrRange is returned for numbers the target type cannot hold.
	ErrRange = errors.New("value out of range")
)

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em

	// A Float62 array nests at most array, tag, integer.
	dm, err := cbor.DecOptions{MaxNestedLevels: 4}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR dec mode: %v", err))
	}
	cborDecMode = dm
}

// ---------------------------------------------------------------------------
// Float62
// ---------------------------------------------------------------------------

func float62Item(v f62.Float62) any {
	if i, ok := v.Integer(); ok {
		return i
	}
	if p, ok := v.Payload(); ok {
		return cbor.Tag{Number: PayloadTag, Content: p}
	}
	x, _ := v.Float()
	return x
}

func float62FromItem(item any) (f62.Float62, error) {
	switch x := item.(type) {
	case uint64:
		if x > uint64(f62.MaxInteger) {
			return 0, fmt.Errorf("float62 integer %d: %w", x, ErrRange)
		}
		return f62.FromInteger(int64(x)), nil
	case int64:
		if x < f62.MinInteger {
			return 0, fmt.Errorf("float62 integer %d: %w", x, ErrRange)
		}
		return f62.FromInteger(x), nil
	case float64:
		// Zero floats decode as integer zero.
		if x == 0 {
			return f62.FromInteger(0), nil
		}
		if !f62.Representable(x) {
			return 0, fmt.Errorf("float62 float %v: %w", x, ErrRange)
		}
		return f62.FromFloat(x), nil
	case cbor.Tag:
		p, err := payloadFromTag(x, f62.MaxPayload)
		if err != nil {
			return 0, err
		}
		return f62.FromPayload(p), nil
	default:
		return 0, fmt.Errorf("float62 from %T: %w", item, ErrUnsupported)
	}
}

// MarshalFloat62 serializes a Float62 to CBOR bytes.
func MarshalFloat62(v f62.Float62) ([]byte, error) {
	return cborEncMode.Marshal(float62Item(v))
}

// UnmarshalFloat62 deserializes a Float62 from CBOR bytes.
func UnmarshalFloat62(data []byte) (f62.Float62, error) {
	var item any
	if err := cborDecMode.Unmarshal(data, &item); err != nil {
		return 0, fmt.Errorf("wire: unmarshal float62: %w", err)
	}
	v, err := float62FromItem(item)
	if err != nil {
		return 0, fmt.Errorf("wire: %w", err)
	}
	return v, nil
}

// MarshalFloat62s serializes a slice of Float62 values as a CBOR array.
func MarshalFloat62s(vs []f62.Float62) ([]byte, error) {
	items := make([]any, len(vs))
	for i, v := range vs {
		items[i] = float62Item(v)
	}
	return cborEncMode.Marshal(items)
}

// UnmarshalFloat62s deserializes a CBOR array of Float62 values.
func UnmarshalFloat62s(data []byte) ([]f62.Float62, error) {
	var items []any
	if err := cborDecMode.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("wire: unmarshal float62 array: %w", err)
	}
	vs := make([]f62.Float62, len(items))
	for i, item := range items {
		v, err := float62FromItem(item)
		if err != nil {
			return nil, fmt.Errorf("wire: element %d: %w", i, err)
		}
		vs[i] = v
	}
	return vs, nil
}

// ---------------------------------------------------------------------------
// N64
// ---------------------------------------------------------------------------

func n64Item(v n64.N64) any {
	if i, ok := v.Int(); ok {
		return i
	}
	if p, ok := v.Payload(); ok {
		return cbor.Tag{Number: PayloadTag, Content: p}
	}
	return math.Float64frombits(v.Bits())
}

func n64FromItem(item any) (n64.N64, error) {
	switch x := item.(type) {
	case uint64:
		if x > uint64(nanbox.MaxSigned) {
			return 0, fmt.Errorf("n64 integer %d: %w", x, ErrRange)
		}
		return n64.FromInt(int64(x)), nil
	case int64:
		if x < nanbox.MinSigned {
			return 0, fmt.Errorf("n64 integer %d: %w", x, ErrRange)
		}
		return n64.FromInt(x), nil
	case float64:
		// A NaN in the boxed class would read back as an integer or payload.
		if nanbox.IsBoxed(math.Float64bits(x)) {
			return 0, fmt.Errorf("n64 float %#x: %w", math.Float64bits(x), ErrRange)
		}
		return n64.FromFloat64(x), nil
	case cbor.Tag:
		p, err := payloadFromTag(x, nanbox.MaxUnsigned)
		if err != nil {
			return 0, err
		}
		return n64.FromPayload(p), nil
	default:
		return 0, fmt.Errorf("n64 from %T: %w", item, ErrUnsupported)
	}
}

// MarshalN64 serializes an N64 to CBOR bytes.
func MarshalN64(v n64.N64) ([]byte, error) {
	return cborEncMode.Marshal(n64Item(v))
}

// UnmarshalN64 deserializes an N64 from CBOR bytes.
func UnmarshalN64(data []byte) (n64.N64, error) {
	var item any
	if err := cborDecMode.Unmarshal(data, &item); err != nil {
		return 0, fmt.Errorf("wire: unmarshal n64: %w", err)
	}
	v, err := n64FromItem(item)
	if err != nil {
		return 0, fmt.Errorf("wire: %w", err)
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// Payload tag
// ---------------------------------------------------------------------------

func payloadFromTag(t cbor.Tag, limit uint64) (uint64, error) {
	if t.Number != PayloadTag {
		return 0, fmt.Errorf("tag %d: %w", t.Number, ErrUnsupported)
	}
	p, ok := t.Content.(uint64)
	if !ok {
		return 0, fmt.Errorf("payload of type %T: %w", t.Content, ErrUnsupported)
	}
	if p > limit {
		return 0, fmt.Errorf("payload %#x: %w", p, ErrRange)
	}
	return p, nil
}
