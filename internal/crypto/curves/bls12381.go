package curves

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BLS12381 implements Pairing on the BLS12-381 curve pair, delegating the
// group and field arithmetic to gnark-crypto.
type BLS12381 struct{}

// NewBLS12381 returns the BLS12-381 pairing engine.
func NewBLS12381() Pairing {
	return &BLS12381{}
}

func (c *BLS12381) Name() string {
	return "BLS12-381"
}

func (c *BLS12381) Order() *big.Int {
	return fr.Modulus()
}

func (c *BLS12381) NewScalar() (fr.Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return fr.Element{}, err
	}
	return s, nil
}

func (c *BLS12381) G1Generator() bls12381.G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func (c *BLS12381) G2Generator() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

func (c *BLS12381) G1ScalarBaseMult(k *fr.Element) bls12381.G1Affine {
	var p bls12381.G1Affine
	p.ScalarMultiplicationBase(k.BigInt(new(big.Int)))
	return p
}

func (c *BLS12381) G1ScalarMult(p *bls12381.G1Affine, k *fr.Element) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.ScalarMultiplication(p, k.BigInt(new(big.Int)))
	return out
}

func (c *BLS12381) G2ScalarMult(q *bls12381.G2Affine, k *fr.Element) bls12381.G2Affine {
	var out bls12381.G2Affine
	out.ScalarMultiplication(q, k.BigInt(new(big.Int)))
	return out
}

func (c *BLS12381) G1Add(a, b *bls12381.G1Affine) bls12381.G1Affine {
	var out bls12381.G1Affine
	out.Add(a, b)
	return out
}

func (c *BLS12381) G2Add(a, b *bls12381.G2Affine) bls12381.G2Affine {
	var out bls12381.G2Affine
	out.Add(a, b)
	return out
}

func (c *BLS12381) G1InSubGroup(p *bls12381.G1Affine) bool {
	return p.IsInSubGroup()
}

func (c *BLS12381) G2InSubGroup(q *bls12381.G2Affine) bool {
	return q.IsInSubGroup()
}

func (c *BLS12381) PairingCheck(ps []bls12381.G1Affine, qs []bls12381.G2Affine) (bool, error) {
	return bls12381.PairingCheck(ps, qs)
}

func (c *BLS12381) HashToG2(msg, dst []byte) (bls12381.G2Affine, error) {
	return bls12381.HashToG2(msg, dst)
}

// Compile-time interface check.
var _ Pairing = (*BLS12381)(nil)
