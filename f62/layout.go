package f62

// Tag bits
const (
	IntegerMask uint64 = 0b1
	IntegerTag  uint64 = 0b0

	TagMask    uint64 = 0b11
	PayloadTag uint64 = 0b01
	FloatTag   uint64 = 0b11
)

// Float rotation
const (
	RotationCount = 3

	signMask uint64 = 1 << 63

	// Added to the exponent field before rotation. It maps exponents
	// 0x300..0x4FF onto 0x600..0x7FF, whose top two bits are the float tag.
	exponentBias uint64 = 0x300 << 52

	// Smallest biased magnitude whose top exponent bits match the tag.
	minBiased uint64 = 0x600 << 52
)

// Float range
const (
	// MinFloat and MaxFloat bound the magnitudes BoxFloat keeps exactly.
	MinFloat = 0x1p-255
	MaxFloat = 0x1p257 - 0x1p204
)

// Integer range
const (
	MaxInteger int64 = 1<<62 - 1
	MinInteger int64 = -1 << 62

	MaxPayload uint64 = 1<<62 - 1
)
