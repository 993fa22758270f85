// Package f62 implements low-bit tag boxing and the Float62 number type.
//
// A word is classified by its low bits:
//
//	...0   63-bit signed integer, shifted left by 1
//	..01   62-bit opaque payload, shifted left by 2
//	..11   double, exponent-biased and rotated left by RotationCount
//
// The float encoding keeps every double whose magnitude lies in
// [2^-255, 2^257). Positive and negative zero are stored as their raw bit
// patterns, untagged and unrotated, so they never classify as floats: the
// word for 0.0 is the integer 0 and the word for -0.0 is the integer
// -2^62.
package f62
