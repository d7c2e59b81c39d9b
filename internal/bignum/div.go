package bignum

import "math/bits"

// DivMod returns the quotient and remainder of a / b using Knuth's
// Algorithm D, or ErrDivisionByZero when b is zero.
//
// The divisor is first shifted left so its top limb has the high bit set;
// that normalization is what keeps the single-limb quotient estimates within
// two of the true digit. Each estimate is refined against the divisor's
// second limb and, when the multiply-subtract still underflows, corrected by
// one add-back of the divisor. The remainder is recovered from the low limbs
// of the working dividend, shifted back right.
func DivMod(a, b Int) (q, r Int, err error) {
	a, b = a.ensure(), b.ensure()
	if b.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	switch a.Cmp(b) {
	case -1:
		return Zero(), a.clone(), nil
	case 0:
		return One(), Zero(), nil
	}

	// Working copies, canonical so the top limbs are meaningful.
	u := append([]uint32(nil), trim(a.limbs)...)
	v := append([]uint32(nil), trim(b.limbs)...)
	n := len(v)
	m := len(u) - n // the quotient has at most m+1 limbs

	// Shift both operands left until v's top limb has its high bit set.
	shift := bits.LeadingZeros32(v[n-1])
	if shift > 0 {
		u = append(u, 0) // the dividend may grow by one limb
		for i := len(u) - 1; i > 0; i-- {
			u[i] = u[i]<<shift | u[i-1]>>(32-shift)
		}
		u[0] <<= shift

		var prev uint32
		for i := range v {
			next := v[i] >> (32 - shift)
			v[i] = v[i]<<shift | prev
			prev = next
		}
		// prev is zero here: v was canonical before the shift.
	}
	for len(u) < n+m+1 {
		u = append(u, 0)
	}

	quot := make([]uint32, m+1)
	vn1 := uint64(v[n-1])
	var vn2 uint64
	if n >= 2 {
		vn2 = uint64(v[n-2])
	}

	for j := m; j >= 0; j-- {
		uHi := uint64(u[j+n])
		uLo := uint64(u[j+n-1])
		var uLo2 uint64
		if n >= 2 {
			uLo2 = uint64(u[j+n-2])
		}

		qhat, _ := estimateQuotientDigit(uHi, uLo, uLo2, vn1, vn2)

		// Multiply v by qhat and subtract from the current dividend window.
		// The arithmetic right shift of t folds the sign into the borrow.
		var borrow int64
		for i := 0; i < n; i++ {
			p := qhat * uint64(v[i])
			t := int64(u[j+i]) - int64(p&0xFFFFFFFF) - borrow
			u[j+i] = uint32(t)
			borrow = int64(p>>32) - (t >> 32)
		}
		t := int64(u[j+n]) - borrow
		u[j+n] = uint32(t)

		quot[j] = uint32(qhat)

		// qhat was still one too large: add the divisor back once.
		if t < 0 {
			quot[j]--
			var carry uint64
			for i := 0; i < n; i++ {
				s := uint64(u[j+i]) + uint64(v[i]) + carry
				u[j+i] = uint32(s)
				carry = s >> 32
			}
			u[j+n] += uint32(carry)
		}
	}

	// The remainder sits in u[0..n-1], still shifted left.
	rem := make([]uint32, n)
	copy(rem, u[:n])
	if shift > 0 {
		for i := 0; i < n-1; i++ {
			rem[i] = rem[i]>>shift | rem[i+1]<<(32-shift)
		}
		rem[n-1] >>= shift
	}

	return normalized(quot), normalized(rem), nil
}

// estimateQuotientDigit computes the trial quotient digit qhat from the two
// most-significant dividend limbs and the divisor's top limb, then walks it
// down while the three-limb comparison (qhat·vn2 against rhat·2³²+uLo2) shows
// an overestimate. The walk runs at most twice.
func estimateQuotientDigit(uHi, uLo, uLo2, vn1, vn2 uint64) (qhat, rhat uint64) {
	if uHi >= vn1 {
		qhat = 0xFFFFFFFF
		rhat = uHi - vn1 + uLo
	} else {
		num := uHi<<32 | uLo
		qhat = num / vn1
		rhat = num % vn1
	}

	for qhat > 0xFFFFFFFF || qhat*vn2 > (rhat<<32|uLo2) {
		qhat--
		rhat += vn1
		if rhat > 0xFFFFFFFF {
			break
		}
	}
	return qhat, rhat
}
