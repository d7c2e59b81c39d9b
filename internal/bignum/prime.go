package bignum

// IsPrime decides primality by trial division: after the small cases, every
// odd candidate from 3 up to ⌊√a⌋ inclusive is tested as a divisor.
//
// This is exact but blocking, and its latency grows without bound for large
// inputs — there is no probabilistic short-circuit and no cancellation hook.
// Callers that need responsiveness must run it on a worker goroutine and
// discard the result themselves.
func IsPrime(a Int) bool {
	a = a.ensure()

	if t := trim(a.limbs); len(t) == 1 {
		switch t[0] {
		case 0, 1:
			return false
		case 2, 3:
			return true
		}
	}
	if a.limbs[0]&1 == 0 {
		return false // even and not 2
	}

	limit := Sqrt(a)
	two := FromUint64(2)
	for i := FromUint64(3); i.Cmp(limit) <= 0; i = Add(i, two) {
		_, rem, _ := DivMod(a, i) // i >= 3, never zero
		if rem.IsZero() {
			return false
		}
	}
	return true
}
