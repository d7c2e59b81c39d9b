package bignum

// Sqrt returns the floor of the square root of a using Newton's method.
//
// The initial guess 2^⌈bits(a)/2⌉ is always at or above the true root, so the
// iteration x ← (x + a/x) / 2 decreases monotonically; the first step that
// fails to decrease means x has converged to ⌊√a⌋.
func Sqrt(a Int) Int {
	a = a.ensure()
	if a.IsZero() {
		return Zero()
	}

	halfBits := (a.BitLen() + 1) / 2
	guess := make([]uint32, halfBits/32+1)
	guess[halfBits/32] = 1 << (halfBits % 32)
	x := normalized(guess)

	for {
		q, _, _ := DivMod(a, x) // x starts above zero and only shrinks toward ⌊√a⌋
		next := halve(Add(x, q))
		if next.Cmp(x) >= 0 {
			return x
		}
		x = next
	}
}

// halve returns a / 2 by a limb-wise right shift with carry from the limb
// above.
func halve(a Int) Int {
	out := make([]uint32, len(a.limbs))
	var carry uint64
	for i := len(a.limbs) - 1; i >= 0; i-- {
		cur := carry<<32 | uint64(a.limbs[i])
		out[i] = uint32(cur >> 1)
		carry = cur & 1
	}
	return normalized(out)
}
