package nanbox

// Bit layout constants
const (
	// Offset of the 16-bit header (sign, exponent, quiet, marker, flag).
	ExponentMaskOffset = 48

	// Sign of a boxed signed integer.
	// 0x8000_0000_0000_0000
	SignMask uint64 = 0x8000 << ExponentMaskOffset

	// All-ones exponent.
	// 0x7FF0_0000_0000_0000
	ExponentMask uint64 = 0x7FF0 << ExponentMaskOffset

	// Quiet NaN bit.
	// 0x0008_0000_0000_0000
	QuietMask uint64 = 0x0008 << ExponentMaskOffset

	// Set only in words produced by this package. The default NaNs
	// (0x7FF8000000000000, 0x7FF8000000000001 from math.NaN and
	// 0xFFF8000000000000 from x86 arithmetic) leave it clear.
	// 0x0004_0000_0000_0000
	MarkerMask uint64 = 0x0004 << ExponentMaskOffset

	// Pattern shared by every boxed word.
	// 0x7FFC_0000_0000_0000
	BoxedMask uint64 = ExponentMask | QuietMask | MarkerMask

	// Free bit between the marker and the payload. Boxing never sets it;
	// composite encodings use it as a discriminant.
	// 0x0002_0000_0000_0000
	FlagMask uint64 = 0x0002 << ExponentMaskOffset

	// Number of payload bits.
	PayloadWidth = 49

	// Payload bits.
	// 0x0001_FFFF_FFFF_FFFF
	PayloadMask uint64 = 1<<PayloadWidth - 1
)

// Payload range
const (
	MaxUnsigned uint64 = PayloadMask
	MaxSigned   int64  = int64(PayloadMask)
	MinSigned   int64  = -MaxSigned
)
