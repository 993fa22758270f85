package nanbox

// IsBoxed reports whether word was produced by BoxUnsigned or BoxSigned.
func IsBoxed(word uint64) bool {
	return word&BoxedMask == BoxedMask
}

// IsFlagged reports whether word is boxed and has FlagMask set.
func IsFlagged(word uint64) bool {
	return word&(BoxedMask|FlagMask) == BoxedMask|FlagMask
}

// BoxUnsigned boxes an unsigned integer.
//
// BoxUnsigned never fails. Only the low PayloadWidth bits of value are kept;
// higher bits are dropped, so values of 1<<PayloadWidth and above wrap.
func BoxUnsigned(value uint64) uint64 {
	return BoxedMask | value&PayloadMask
}

// UnboxUnsigned returns the payload of a boxed word. It reports false for
// ordinary doubles, infinities and NaNs this package did not produce.
// The sign and flag bits are ignored.
func UnboxUnsigned(word uint64) (uint64, bool) {
	if !IsBoxed(word) {
		return 0, false
	}
	return word & PayloadMask, true
}

// BoxSigned boxes a signed integer as a sign bit plus the boxed magnitude.
// The magnitude is truncated like BoxUnsigned. math.MinInt64 has a
// magnitude of 1<<63 and boxes as negative zero.
func BoxSigned(value int64) uint64 {
	sign := uint64(value) & SignMask
	magnitude := uint64(value)
	if value < 0 {
		magnitude = -magnitude
	}
	return sign | BoxUnsigned(magnitude)
}

// UnboxSigned decodes a word produced by BoxSigned. Negative zero decodes
// as zero.
func UnboxSigned(word uint64) (int64, bool) {
	magnitude, ok := UnboxUnsigned(word)
	if !ok {
		return 0, false
	}
	if word&SignMask != 0 {
		return -int64(magnitude), true
	}
	return int64(magnitude), true
}
