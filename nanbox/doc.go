// Package nanbox implements quiet-NaN boxing of integers.
//
// A boxed word is an IEEE 754 double whose exponent bits are all ones and
// whose quiet and marker bits are set, so every boxed word is a NaN. The
// low PayloadWidth bits carry an unsigned magnitude and the sign bit carries
// the sign of boxed signed integers.
//
// Bit layout (sign ignored for class membership):
//
//	63   62..52     51     50     49     48..0
//	sign exponent   quiet  marker flag   payload
//
// Every function operates on words passed by value. Nothing allocates, and
// all functions are safe for concurrent use.
package nanbox
