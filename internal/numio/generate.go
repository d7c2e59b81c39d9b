package numio

import (
	"crypto/rand"
	"fmt"

	"github.com/4310V343k/labs-project-stuffs/internal/bignum"
)

// GenerateOperand produces a uniformly random number occupying exactly
// sizeBytes bytes. The top bit is forced on so the value never renders
// shorter than requested.
func GenerateOperand(sizeBytes int) (bignum.Int, error) {
	if sizeBytes <= 0 {
		return bignum.Int{}, fmt.Errorf("operand size must be positive, got %d", sizeBytes)
	}

	buf := make([]byte, sizeBytes)
	if _, err := rand.Read(buf); err != nil {
		return bignum.Int{}, fmt.Errorf("failed to gather randomness: %w", err)
	}
	buf[0] |= 0x80

	return bignum.FromBytes(buf), nil
}
