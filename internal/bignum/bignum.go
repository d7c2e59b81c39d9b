package bignum

import (
	"errors"
	"math/bits"
)

// Errors reported by operations with restricted domains. All of them are
// recoverable and local to the failing call.
var (
	// ErrDivisionByZero is returned by DivMod when the divisor is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrExponentRange is returned by Pow for exponents outside 1..3.
	ErrExponentRange = errors.New("bignum: exponent must be 1, 2 or 3")

	// ErrNegativeResult is returned by Sub when the subtrahend exceeds the
	// minuend. Unsigned values cannot represent the wrapped result.
	ErrNegativeResult = errors.New("bignum: subtraction result would be negative")
)

// Int is a non-negative integer stored as little-endian base-2³² limbs:
// limbs[0] is the least significant word, and the value is
// Σ limbs[i]·2^(32·i).
//
// Canonical form has no trailing (most-significant) zero limbs, except zero
// itself which is the single limb [0]. Every constructor and operation
// returns canonical values. The zero value of Int is usable and equal to 0.
type Int struct {
	limbs []uint32
}

// Zero returns the canonical zero.
func Zero() Int { return Int{limbs: []uint32{0}} }

// One returns the value 1.
func One() Int { return Int{limbs: []uint32{1}} }

// FromUint64 converts a machine word to an Int.
func FromUint64(v uint64) Int {
	if v>>32 != 0 {
		return Int{limbs: []uint32{uint32(v), uint32(v >> 32)}}
	}
	return Int{limbs: []uint32{uint32(v)}}
}

// FromBytes interprets buf as a big-endian unsigned integer. An empty buffer
// yields zero.
func FromBytes(buf []byte) Int {
	limbs := make([]uint32, (len(buf)+3)/4)
	for i := 0; i < len(buf); i++ {
		// buf[len(buf)-1] is the least significant byte.
		pos := len(buf) - 1 - i
		limbs[i/4] |= uint32(buf[pos]) << uint((i%4)*8)
	}
	if len(limbs) == 0 {
		return Zero()
	}
	return normalized(limbs)
}

// ensure maps the zero value of Int to the canonical zero so that internal
// code can index limbs unconditionally.
func (x Int) ensure() Int {
	if len(x.limbs) == 0 {
		return Zero()
	}
	return x
}

// clone returns an independent copy of x.
func (x Int) clone() Int {
	x = x.ensure()
	out := make([]uint32, len(x.limbs))
	copy(out, x.limbs)
	return Int{limbs: out}
}

// trim returns the view of limbs with trailing zero limbs removed, keeping at
// least one limb. It does not copy.
func trim(limbs []uint32) []uint32 {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	return limbs[:n]
}

// normalized wraps limbs into a canonical Int, trimming trailing zero limbs.
// The slice is owned by the result afterwards.
func normalized(limbs []uint32) Int {
	return Int{limbs: trim(limbs)}
}

// IsZero reports whether x equals zero. It is robust against non-canonical
// representations: every limb is inspected.
func (x Int) IsZero() bool {
	for _, limb := range x.limbs {
		if limb != 0 {
			return false
		}
	}
	return true
}

// BitLen returns the length of x in bits; the bit length of 0 is 0.
func (x Int) BitLen() int {
	t := trim(x.ensure().limbs)
	top := t[len(t)-1]
	if top == 0 {
		return 0
	}
	return (len(t)-1)*32 + bits.Len32(top)
}

// Cmp compares x and y and returns -1, 0 or +1. Effective lengths are
// computed without mutating either operand, so non-canonical inputs compare
// correctly.
func (x Int) Cmp(y Int) int {
	a := trim(x.ensure().limbs)
	b := trim(y.ensure().limbs)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
