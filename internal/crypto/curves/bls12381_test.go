package curves

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBLS12381Scalar(t *testing.T) {
	curve := NewBLS12381()

	// Test NewScalar
	s1, err := curve.NewScalar()
	assert.NoError(t, err)

	s2, err := curve.NewScalar()
	assert.NoError(t, err)
	assert.False(t, s1.Equal(&s2), "two random scalars should differ")

	// Order must be the 255-bit BLS12-381 subgroup order
	assert.Equal(t, 255, curve.Order().BitLen())
}

func TestBLS12381GroupOps(t *testing.T) {
	curve := NewBLS12381()

	var two, three, five fr.Element
	two.SetUint64(2)
	three.SetUint64(3)
	five.SetUint64(5)

	t.Run("G1 scalar arithmetic", func(t *testing.T) {
		// 2*G + 3*G == 5*G
		p2 := curve.G1ScalarBaseMult(&two)
		p3 := curve.G1ScalarBaseMult(&three)
		p5 := curve.G1ScalarBaseMult(&five)

		sum := curve.G1Add(&p2, &p3)
		assert.True(t, sum.Equal(&p5))

		// 5*G == 5*(1*G) via G1ScalarMult
		g := curve.G1Generator()
		p5b := curve.G1ScalarMult(&g, &five)
		assert.True(t, p5b.Equal(&p5))
	})

	t.Run("G2 scalar arithmetic", func(t *testing.T) {
		g2 := curve.G2Generator()
		q2 := curve.G2ScalarMult(&g2, &two)
		q3 := curve.G2ScalarMult(&g2, &three)
		q5 := curve.G2ScalarMult(&g2, &five)

		sum := curve.G2Add(&q2, &q3)
		assert.True(t, sum.Equal(&q5))
	})

	t.Run("subgroup membership", func(t *testing.T) {
		g1 := curve.G1Generator()
		g2 := curve.G2Generator()
		assert.True(t, curve.G1InSubGroup(&g1))
		assert.True(t, curve.G2InSubGroup(&g2))
	})
}

func TestBLS12381Bilinearity(t *testing.T) {
	curve := NewBLS12381()

	// e(a*G1, b*G2) * e(-ab*G1, G2) == 1
	var a, b, ab fr.Element
	a.SetUint64(7)
	b.SetUint64(11)
	ab.Mul(&a, &b)

	pa := curve.G1ScalarBaseMult(&a)
	g2 := curve.G2Generator()
	qb := curve.G2ScalarMult(&g2, &b)

	pab := curve.G1ScalarBaseMult(&ab)
	var negPab bls12381.G1Affine
	negPab.Neg(&pab)

	ok, err := curve.PairingCheck(
		[]bls12381.G1Affine{pa, negPab},
		[]bls12381.G2Affine{qb, g2},
	)
	require.NoError(t, err)
	assert.True(t, ok, "pairing must be bilinear")
}

func TestBLS12381HashToG2(t *testing.T) {
	curve := NewBLS12381()

	p, err := curve.HashToG2([]byte("message"), []byte("TEST-DST"))
	require.NoError(t, err)
	assert.True(t, curve.G2InSubGroup(&p))
	assert.False(t, p.IsInfinity())
}

func TestBLS12381ScalarMultMatchesBigInt(t *testing.T) {
	curve := NewBLS12381()

	var k fr.Element
	k.SetUint64(123456789)

	p := curve.G1ScalarBaseMult(&k)

	var want bls12381.G1Affine
	want.ScalarMultiplicationBase(big.NewInt(123456789))
	assert.True(t, p.Equal(&want))
}
