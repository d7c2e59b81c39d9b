// Package bignum implements arbitrary-precision unsigned integer arithmetic
// on little-endian vectors of 32-bit limbs (base 2³²).
//
// Values are immutable: every operation reads its operands and returns a
// freshly allocated result, so Ints may be shared freely across goroutines.
// The package performs no I/O and holds no state between calls; the only
// internal cache (memoized powers of ten used by decimal rendering) is scoped
// to a single String call.
//
// The algorithmic core is classical: schoolbook O(n²) multiplication, Knuth's
// Algorithm D for multi-limb division, Newton's method for the integer square
// root, and trial division for primality. None of the sub-quadratic
// multiplication algorithms (Karatsuba, FFT) are implemented here.
package bignum
