package bignum

import (
	"fmt"
	"strings"
)

// dcThresholdLimbs is the size below which String falls back to the naive
// limb-by-limb rendering (~300 decimal digits). Below it, the divisions
// performed by the divide-and-conquer split cost more than they save.
const dcThresholdLimbs = 32

// IsValidDecimal reports whether s is a canonical decimal literal: non-empty,
// ASCII digits only, and no leading zero unless s is exactly "0".
func IsValidDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	return true
}

// FromDecimal converts a decimal string to an Int by repeated multiply-by-ten
// with carry propagation. The empty string and "0" yield the canonical zero.
//
// FromDecimal does not validate its input; callers must check the text with
// IsValidDecimal first (or use ParseDecimal, which does both).
func FromDecimal(s string) Int {
	if s == "" || s == "0" {
		return Zero()
	}
	limbs := []uint32{0}
	for i := 0; i < len(s); i++ {
		carry := uint64(s[i] - '0')
		for j := range limbs {
			cur := uint64(limbs[j])*10 + carry
			limbs[j] = uint32(cur)
			carry = cur >> 32
		}
		if carry != 0 {
			limbs = append(limbs, uint32(carry))
		}
	}
	return normalized(limbs)
}

// ParseDecimal validates s and converts it to an Int.
func ParseDecimal(s string) (Int, error) {
	if !IsValidDecimal(s) {
		return Int{}, fmt.Errorf("bignum: invalid decimal literal %q", s)
	}
	return FromDecimal(s), nil
}

// String renders x as a decimal string. Zero renders as "0".
//
// Small values use the naive conversion (multiply the decimal buffer by 2³²
// and add the next limb, most-significant first). Larger values split as
// hi·10^k + lo around half the estimated digit count and recurse; the powers
// of ten are computed by repeated squaring and memoized for the duration of
// this call only, so shared sub-powers are built once. The recursion depth is
// O(log limbs).
func (x Int) String() string {
	x = x.ensure()
	if x.IsZero() {
		return "0"
	}
	cache := make(map[int]Int)
	return toDecimal(x, cache)
}

func toDecimal(a Int, cache map[int]Int) string {
	if len(a.limbs) <= dcThresholdLimbs {
		if a.IsZero() {
			return "0"
		}
		buf := []byte{'0'}
		for i := len(a.limbs) - 1; i >= 0; i-- {
			buf = decimalMulAdd(buf, 1<<32, uint64(a.limbs[i]))
		}
		return string(buf)
	}

	// Split a = hi·10^k + lo with k at half the estimated digit count.
	k := decimalDigitsEstimate(a) / 2
	hi, lo, _ := DivMod(a, pow10(k, cache)) // divisor is a power of ten, never zero

	hiStr := toDecimal(hi, cache)
	loStr := toDecimal(lo, cache)

	// lo < 10^k, so loStr has at most k digits; left-pad to exactly k.
	if len(loStr) < k {
		loStr = strings.Repeat("0", k-len(loStr)) + loStr
	}
	return hiStr + loStr
}

// pow10 returns 10^k, memoizing every computed power in cache so each value
// is built at most once per top-level String call.
func pow10(k int, cache map[int]Int) Int {
	if v, ok := cache[k]; ok {
		return v
	}
	var result Int
	switch {
	case k == 0:
		result = One()
	case k == 1:
		result = FromUint64(10)
	default:
		half := pow10(k/2, cache)
		result = Mul(half, half)
		if k%2 == 1 {
			result = Mul(result, FromUint64(10))
		}
	}
	cache[k] = result
	return result
}

// decimalDigitsEstimate returns an upper bound on the decimal digit count of
// a, using 32·log₁₀(2) ≈ 9.6329 digits per limb.
func decimalDigitsEstimate(a Int) int {
	return len(a.limbs)*9633/1000 + 1
}

// decimalMulAdd multiplies the decimal digit buffer s by factor and adds
// addend, in place, extending the buffer at the front when the carry
// overflows the existing digits.
func decimalMulAdd(s []byte, factor, addend uint64) []byte {
	carry := addend
	for i := len(s) - 1; i >= 0; i-- {
		v := uint64(s[i]-'0')*factor + carry
		s[i] = byte('0' + v%10)
		carry = v / 10
	}
	for carry > 0 {
		s = append([]byte{byte('0' + carry%10)}, s...)
		carry /= 10
	}
	return s
}
