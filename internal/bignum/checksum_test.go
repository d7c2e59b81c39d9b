package bignum

import (
	"strings"
	"testing"
)

// decimalDigitSumMod9 is the textbook definition DigitRoot must match.
func decimalDigitSumMod9(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum = (sum + int(s[i]-'0')) % 9
	}
	return sum
}

func TestDigitRoot(t *testing.T) {
	tests := []struct {
		a    string
		want int
	}{
		{"0", 0},
		{"9", 0}, // multiples of nine yield 0, not 9
		{"18", 0},
		{"123", 6},
		{"8", 8},
		{"4294967296", 4}, // 2³² ≡ 4 (mod 9)
		{"999999999999999999", 0},
		{"1000000000000000000", 1},
	}
	for _, tt := range tests {
		if got := DigitRoot(FromDecimal(tt.a)); got != tt.want {
			t.Errorf("DigitRoot(%s) = %d, want %d", tt.a, got, tt.want)
		}
	}
}

func TestDigitRootMatchesDecimalDigitSum(t *testing.T) {
	// The limb-weight trick must agree with summing decimal digits, in
	// particular across the 4^k mod 9 cycle boundary at every third limb.
	values := []string{
		"79228162514264337593543950335", // 2⁹⁶−1, three full limbs
		"79228162514264337593543950336", // 2⁹⁶, fourth limb begins
		strings.Repeat("123456789", 30),
		strings.Repeat("9", 200),
		"340282366920938463463374607431768211456",
	}
	for _, s := range values {
		x := FromDecimal(s)
		if got, want := DigitRoot(x), decimalDigitSumMod9(s); got != want {
			t.Errorf("DigitRoot(%s) = %d, want digit sum %d", truncateForLog(s), got, want)
		}
	}
}

func TestVerifyAdd(t *testing.T) {
	a := FromDecimal("999999999999999999")
	b := One()
	sum := Add(a, b)

	if !VerifyAdd(a, b, sum) {
		t.Error("VerifyAdd rejected a correct sum")
	}

	// A corrupted sum with a different residue is caught.
	if VerifyAdd(a, b, Add(sum, One())) {
		t.Error("VerifyAdd accepted a corrupted sum")
	}

	// The check is necessary, not sufficient: an error of exactly nine
	// slips through. Documenting behavior, not endorsing it.
	if !VerifyAdd(a, b, Add(sum, FromUint64(9))) {
		t.Error("VerifyAdd should not detect an offset that is a multiple of nine")
	}
}
