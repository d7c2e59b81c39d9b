package bignum

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// bigFromChunks assembles an arbitrary-precision oracle value from 64-bit
// chunks. Inputs of any limb count are reachable this way, which matters for
// hitting the divide-and-conquer rendering path and the long-division
// correction loop.
func bigFromChunks(chunks []uint64) *big.Int {
	b := new(big.Int)
	for _, c := range chunks {
		b.Lsh(b, 64)
		b.Add(b, new(big.Int).SetUint64(c))
	}
	return b
}

// fromChunks builds the Int under test through the decimal parser, so every
// property also exercises conversion.
func fromChunks(chunks []uint64) Int {
	return FromDecimal(bigFromChunks(chunks).String())
}

func chunksGen() gopter.Gen {
	return gen.SliceOf(gen.UInt64())
}

func TestDecimalRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("String(FromDecimal(s)) == s for canonical s", prop.ForAll(
		func(chunks []uint64) bool {
			s := bigFromChunks(chunks).String()
			return FromDecimal(s).String() == s
		},
		chunksGen(),
	))

	properties.TestingRun(t)
}

func TestDivisionInvariant_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("a == q·b + r and r < b", prop.ForAll(
		func(aChunks, bChunks []uint64) bool {
			a := fromChunks(aChunks)
			b := fromChunks(bChunks)
			if b.IsZero() {
				b = One()
			}

			q, r, err := DivMod(a, b)
			if err != nil {
				return false
			}
			if r.Cmp(b) >= 0 {
				return false
			}
			return Add(Mul(q, b), r).Cmp(a) == 0
		},
		chunksGen(),
		chunksGen(),
	))

	properties.Property("quotient and remainder match math/big", prop.ForAll(
		func(aChunks, bChunks []uint64) bool {
			oa := bigFromChunks(aChunks)
			ob := bigFromChunks(bChunks)
			if ob.Sign() == 0 {
				ob = big.NewInt(1)
			}
			a := FromDecimal(oa.String())
			b := FromDecimal(ob.String())

			q, r, err := DivMod(a, b)
			if err != nil {
				return false
			}
			oq, or := new(big.Int).QuoRem(oa, ob, new(big.Int))
			return q.String() == oq.String() && r.String() == or.String()
		},
		chunksGen(),
		chunksGen(),
	))

	properties.TestingRun(t)
}

func TestAdditiveProperties_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes and matches math/big", prop.ForAll(
		func(aChunks, bChunks []uint64) bool {
			oa, ob := bigFromChunks(aChunks), bigFromChunks(bChunks)
			a, b := FromDecimal(oa.String()), FromDecimal(ob.String())

			sum := Add(a, b)
			if sum.Cmp(Add(b, a)) != 0 {
				return false
			}
			return sum.String() == new(big.Int).Add(oa, ob).String()
		},
		chunksGen(),
		chunksGen(),
	))

	properties.Property("addition associates", prop.ForAll(
		func(aChunks, bChunks, cChunks []uint64) bool {
			a, b, c := fromChunks(aChunks), fromChunks(bChunks), fromChunks(cChunks)
			return Add(Add(a, b), c).Cmp(Add(a, Add(b, c))) == 0
		},
		chunksGen(),
		chunksGen(),
		chunksGen(),
	))

	properties.Property("subtraction inverts addition", prop.ForAll(
		func(aChunks, bChunks []uint64) bool {
			a, b := fromChunks(aChunks), fromChunks(bChunks)
			diff, err := Sub(Add(a, b), b)
			if err != nil {
				return false
			}
			return diff.Cmp(a) == 0
		},
		chunksGen(),
		chunksGen(),
	))

	properties.TestingRun(t)
}

func TestMultiplicativeProperties_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("multiplication commutes and matches math/big", prop.ForAll(
		func(aChunks, bChunks []uint64) bool {
			oa, ob := bigFromChunks(aChunks), bigFromChunks(bChunks)
			a, b := FromDecimal(oa.String()), FromDecimal(ob.String())

			p := Mul(a, b)
			if p.Cmp(Mul(b, a)) != 0 {
				return false
			}
			return p.String() == new(big.Int).Mul(oa, ob).String()
		},
		chunksGen(),
		chunksGen(),
	))

	properties.TestingRun(t)
}

func TestSqrtBracket_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("x = Sqrt(a) satisfies x² ≤ a < (x+1)²", prop.ForAll(
		func(chunks []uint64) bool {
			a := fromChunks(chunks)
			x := Sqrt(a)
			if Mul(x, x).Cmp(a) > 0 {
				return false
			}
			next := Add(x, One())
			return Mul(next, next).Cmp(a) > 0
		},
		chunksGen(),
	))

	properties.TestingRun(t)
}

func TestComparisonTotalOrder_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Cmp is reflexive, antisymmetric, and agrees with math/big", prop.ForAll(
		func(aChunks, bChunks []uint64) bool {
			oa, ob := bigFromChunks(aChunks), bigFromChunks(bChunks)
			a, b := FromDecimal(oa.String()), FromDecimal(ob.String())

			if a.Cmp(a) != 0 || b.Cmp(b) != 0 {
				return false
			}
			if a.Cmp(b) != -b.Cmp(a) {
				return false
			}
			return a.Cmp(b) == oa.Cmp(ob)
		},
		chunksGen(),
		chunksGen(),
	))

	properties.TestingRun(t)
}

func TestDigitRoot_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("DigitRoot equals value mod 9", prop.ForAll(
		func(chunks []uint64) bool {
			o := bigFromChunks(chunks)
			a := FromDecimal(o.String())
			want := int(new(big.Int).Mod(o, big.NewInt(9)).Int64())
			return DigitRoot(a) == want
		},
		chunksGen(),
	))

	properties.Property("VerifyAdd accepts every true sum", prop.ForAll(
		func(aChunks, bChunks []uint64) bool {
			a, b := fromChunks(aChunks), fromChunks(bChunks)
			return VerifyAdd(a, b, Add(a, b))
		},
		chunksGen(),
		chunksGen(),
	))

	properties.TestingRun(t)
}
