package bignum

import "math/bits"

// Add returns a + b. Limb sums are computed with full carry propagation over
// max(len(a), len(b))+1 limbs.
func Add(a, b Int) Int {
	al := a.ensure().limbs
	bl := b.ensure().limbs
	n := max(len(al), len(bl))

	out := make([]uint32, n+1)
	var carry uint32
	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < len(al) {
			av = al[i]
		}
		if i < len(bl) {
			bv = bl[i]
		}
		out[i], carry = bits.Add32(av, bv, carry)
	}
	out[n] = carry
	return normalized(out)
}

// Sub returns a - b, or ErrNegativeResult when a < b. The unsigned
// representation has no encoding for a wrapped result, so the precondition is
// checked rather than left to the caller.
func Sub(a, b Int) (Int, error) {
	if a.Cmp(b) < 0 {
		return Int{}, ErrNegativeResult
	}
	al := a.ensure().limbs
	bl := b.ensure().limbs

	out := make([]uint32, len(al))
	var borrow uint32
	for i := range al {
		var bv uint32
		if i < len(bl) {
			bv = bl[i]
		}
		out[i], borrow = bits.Sub32(al[i], bv, borrow)
	}
	return normalized(out), nil
}

// Mul returns a · b using schoolbook multiplication: every limb pair's 64-bit
// product accumulates into the result at the summed offset. O(len(a)·len(b)).
func Mul(a, b Int) Int {
	a, b = a.ensure(), b.ensure()
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	al, bl := a.limbs, b.limbs

	out := make([]uint32, len(al)+len(bl))
	for i, av := range al {
		var carry uint64
		for j, bv := range bl {
			cur := uint64(av)*uint64(bv) + uint64(out[i+j]) + carry
			out[i+j] = uint32(cur)
			carry = cur >> 32
		}
		out[i+len(bl)] += uint32(carry)
	}
	return normalized(out)
}

// Pow returns base^exp for exp in 1..3; any other exponent yields
// ErrExponentRange. Larger exponents are intentionally unsupported.
func Pow(base Int, exp int) (Int, error) {
	if exp < 1 || exp > 3 {
		return Int{}, ErrExponentRange
	}
	result := base.clone()
	for i := 1; i < exp; i++ {
		result = Mul(result, base)
	}
	return result, nil
}
