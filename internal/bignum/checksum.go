package bignum

// pow4mod9 holds 4^k mod 9, which cycles with period 3. Since 2³² ≡ 4
// (mod 9), limb i contributes limbs[i]·4^i ≡ limbs[i]·pow4mod9[i%3] (mod 9).
var pow4mod9 = [3]uint64{1, 4, 7}

// DigitRoot returns a mod 9, computed directly from the limbs without
// building the decimal string. It equals the sum of a's decimal digits mod 9,
// with multiples of nine (including zero) yielding 0 rather than 9.
func DigitRoot(a Int) int {
	a = a.ensure()
	var sum uint64
	for i, limb := range a.limbs {
		sum = (sum + uint64(limb)*pow4mod9[i%3]) % 9
	}
	return int(sum)
}

// VerifyAdd applies casting out nines to an addition: it reports whether
// DigitRoot(a) + DigitRoot(b) ≡ DigitRoot(sum) (mod 9). The check is
// necessary but not sufficient — it catches most corruption, it does not
// prove the sum correct.
func VerifyAdd(a, b, sum Int) bool {
	return (DigitRoot(a)+DigitRoot(b))%9 == DigitRoot(sum)
}
