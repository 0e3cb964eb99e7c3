package curves

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Pairing defines the interface for the pairing-friendly curve operations
// needed by the BLS signature engine. Points are affine elements of the two
// source groups; scalars are elements of the prime-order scalar field.
//
// Implementations must be stateless: every method allocates and returns fresh
// values, so a single Pairing value is safe for concurrent use.
type Pairing interface {
	// Name returns the name of the curve.
	Name() string

	// Order returns the prime order r of the G1/G2 subgroups.
	Order() *big.Int

	// NewScalar generates a random scalar in Z_r
	NewScalar() (fr.Element, error)

	// G1Generator and G2Generator return the standard group generators.
	G1Generator() bls12381.G1Affine
	G2Generator() bls12381.G2Affine

	// G1ScalarBaseMult computes k * G1-generator.
	G1ScalarBaseMult(k *fr.Element) bls12381.G1Affine

	// G1ScalarMult computes k * P.
	G1ScalarMult(p *bls12381.G1Affine, k *fr.Element) bls12381.G1Affine

	// G2ScalarMult computes k * Q.
	G2ScalarMult(q *bls12381.G2Affine, k *fr.Element) bls12381.G2Affine

	// G1Add and G2Add combine two points of the respective group.
	G1Add(a, b *bls12381.G1Affine) bls12381.G1Affine
	G2Add(a, b *bls12381.G2Affine) bls12381.G2Affine

	// G1InSubGroup and G2InSubGroup report whether a point lies in the
	// prime-order subgroup, not merely on the curve.
	G1InSubGroup(p *bls12381.G1Affine) bool
	G2InSubGroup(q *bls12381.G2Affine) bool

	// PairingCheck reports whether the product of pairings over the given
	// points is the identity of GT: prod_i e(p_i, q_i) == 1.
	PairingCheck(ps []bls12381.G1Affine, qs []bls12381.G2Affine) (bool, error)

	// HashToG2 maps a message to a point of the prime-order subgroup of G2.
	// DST validation is the caller's concern; this is the raw map.
	HashToG2(msg, dst []byte) (bls12381.G2Affine, error)
}
