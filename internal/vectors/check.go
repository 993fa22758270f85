package vectors

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/chazu/nonbox/f62"
	"github.com/chazu/nonbox/n64"
	"github.com/chazu/nonbox/nanbox"
)

// Mismatch describes a vector that failed its check.
type Mismatch struct {
	Family string
	Index  int
	Vector Vector
	Reason string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s[%d] %s %s: %s", m.Family, m.Index, m.Vector.Kind, m.Vector.Value, m.Reason)
}

// codec encodes a textual value and decodes a word back to text in the
// canonical form produced by format.
type codec struct {
	encode func(value string) (uint64, error)
	decode func(word uint64) (string, bool)
	format func(value string) (string, error)
}

var (
	unsignedFormat = func(s string) (string, error) {
		v, err := strconv.ParseUint(s, 0, 64)
		return strconv.FormatUint(v, 10), err
	}
	signedFormat = func(s string) (string, error) {
		v, err := strconv.ParseInt(s, 0, 64)
		return strconv.FormatInt(v, 10), err
	}
	floatFormat = func(s string) (string, error) {
		v, err := strconv.ParseFloat(s, 64)
		return formatFloat(v), err
	}
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Codecs per family and kind
var codecs = map[string]map[string]codec{
	"nanbox": {
		"unsigned": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseUint(s, 0, 64)
				return nanbox.BoxUnsigned(v), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := nanbox.UnboxUnsigned(w)
				return strconv.FormatUint(v, 10), ok
			},
			format: unsignedFormat,
		},
		"signed": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseInt(s, 0, 64)
				return nanbox.BoxSigned(v), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := nanbox.UnboxSigned(w)
				return strconv.FormatInt(v, 10), ok
			},
			format: signedFormat,
		},
	},
	"f62": {
		"integer": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseInt(s, 0, 64)
				return f62.BoxInteger(v), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := f62.UnboxInteger(w)
				return strconv.FormatInt(v, 10), ok
			},
			format: signedFormat,
		},
		"payload": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseUint(s, 0, 64)
				return f62.BoxPayload(v), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := f62.UnboxPayload(w)
				return strconv.FormatUint(v, 10), ok
			},
			format: unsignedFormat,
		},
		"float": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseFloat(s, 64)
				return f62.BoxFloat(v), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := f62.UnboxFloat(w)
				return formatFloat(v), ok
			},
			format: floatFormat,
		},
	},
	"n64": {
		"int": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseInt(s, 0, 64)
				return n64.FromInt(v).Bits(), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := n64.FromBits(w).Int()
				return strconv.FormatInt(v, 10), ok
			},
			format: signedFormat,
		},
		"payload": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseUint(s, 0, 64)
				return n64.FromPayload(v).Bits(), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := n64.FromBits(w).Payload()
				return strconv.FormatUint(v, 10), ok
			},
			format: unsignedFormat,
		},
		"float": {
			encode: func(s string) (uint64, error) {
				v, err := strconv.ParseFloat(s, 64)
				return n64.FromFloat64(v).Bits(), err
			},
			decode: func(w uint64) (string, bool) {
				v, ok := n64.FromBits(w).Float64()
				return formatFloat(v), ok
			},
			format: floatFormat,
		},
	},
}

// ErrUnknownKind is returned by Encode for an unknown family or kind.
var ErrUnknownKind = errors.New("unknown family or kind")

// Encode encodes value with the codec vectors of family and kind use.
func Encode(family, kind, value string) (uint64, error) {
	c, ok := codecs[family][kind]
	if !ok {
		return 0, fmt.Errorf("%s %s: %w", family, kind, ErrUnknownKind)
	}
	word, err := c.encode(value)
	if err != nil {
		return 0, fmt.Errorf("%s %s %q: %w", family, kind, value, err)
	}
	return word, nil
}

// Kinds returns the sorted kinds known for family.
func Kinds(family string) []string {
	var kinds []string
	for k := range codecs[family] {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Check encodes every vector and decodes every expected word, returning
// one Mismatch per failing vector.
func (f *File) Check() []Mismatch {
	var out []Mismatch
	out = append(out, checkFamily("nanbox", f.NaNBox)...)
	out = append(out, checkFamily("f62", f.F62)...)
	out = append(out, checkFamily("n64", f.N64)...)
	return out
}

func checkFamily(family string, vs []Vector) []Mismatch {
	var out []Mismatch
	for i, v := range vs {
		if reason := checkVector(codecs[family], v); reason != "" {
			out = append(out, Mismatch{Family: family, Index: i, Vector: v, Reason: reason})
		}
	}
	return out
}

func checkVector(kinds map[string]codec, v Vector) string {
	c, ok := kinds[v.Kind]
	if !ok {
		return fmt.Sprintf("unknown kind %q", v.Kind)
	}
	want, err := strconv.ParseUint(v.Word, 0, 64)
	if err != nil {
		return fmt.Sprintf("bad word %q: %v", v.Word, err)
	}
	got, err := c.encode(v.Value)
	if err != nil {
		return fmt.Sprintf("bad value: %v", err)
	}
	if got != want {
		return fmt.Sprintf("encoded to %#x, want %#x", got, want)
	}

	decoded, ok := c.decode(want)
	if v.Absent {
		if ok {
			return fmt.Sprintf("word decoded to %s, want absent", decoded)
		}
		return ""
	}
	if !ok {
		return "word did not decode"
	}
	expected := v.Value
	if v.Decoded != "" {
		expected = v.Decoded
	}
	expected, err = c.format(expected)
	if err != nil {
		return fmt.Sprintf("bad decoded value: %v", err)
	}
	if decoded != expected {
		return fmt.Sprintf("word decoded to %s, want %s", decoded, expected)
	}
	return ""
}
