package bignum

import (
	"strings"
	"testing"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		a    string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2", "1"},
		{"3", "1"},
		{"4", "2"},
		{"8", "2"},
		{"9", "3"},
		{"999999", "999"},
		{"1000000", "1000"},
		{"1000001", "1000"},
		{"4294967295", "65535"},
		{"4294967296", "65536"},
		{"1" + strings.Repeat("0", 50), "1" + strings.Repeat("0", 25)},
		{"12345678901234567890123456789012345678901234567890", "3513641828820144253111222"},
	}
	for _, tt := range tests {
		if got := Sqrt(FromDecimal(tt.a)); got.String() != tt.want {
			t.Errorf("Sqrt(%s) = %s, want %s", truncateForLog(tt.a), got.String(), tt.want)
		}
	}
}

func TestSqrtBracket(t *testing.T) {
	// x = Sqrt(a) must satisfy x² ≤ a < (x+1)².
	values := []string{
		"5",
		"99980001", // 9999²
		"99980002",
		"18446744073709551615",
		strings.Repeat("7", 120),
	}
	for _, s := range values {
		a := FromDecimal(s)
		x := Sqrt(a)
		if Mul(x, x).Cmp(a) > 0 {
			t.Errorf("Sqrt(%s)² exceeds the input", truncateForLog(s))
		}
		next := Add(x, One())
		if Mul(next, next).Cmp(a) <= 0 {
			t.Errorf("Sqrt(%s) is not the floor root", truncateForLog(s))
		}
	}
}

func TestHalve(t *testing.T) {
	tests := []struct {
		a    string
		want string
	}{
		{"0", "0"},
		{"1", "0"},
		{"2", "1"},
		{"9", "4"},
		{"8589934593", "4294967296"}, // carry flows into the lower limb
		{"18446744073709551615", "9223372036854775807"},
	}
	for _, tt := range tests {
		if got := halve(FromDecimal(tt.a)); got.String() != tt.want {
			t.Errorf("halve(%s) = %s, want %s", tt.a, got.String(), tt.want)
		}
	}
}
