// Package commitment implements Feldman-style commitments to secret-sharing
// polynomials: each coefficient a_j is published as C_j = a_j * G1-generator.
// A share (i, v) is consistent with the committed polynomial iff
//
//	v * G == sum_j i^j * C_j
//
// which lets share holders verify their share without learning the secret.
package commitment

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/smallyu/go-bls-tss/internal/crypto/curves"
	"github.com/smallyu/go-bls-tss/internal/crypto/polynomial"
)

// Commitment is the list of per-coefficient commitments C_0 ... C_t.
type Commitment []bls12381.G1Affine

var engine = curves.NewBLS12381()

// Commit computes the coefficient commitments of a secret-sharing polynomial.
func Commit(poly *polynomial.Polynomial) Commitment {
	c := make(Commitment, len(poly.Coefficients))
	for j := range poly.Coefficients {
		c[j] = engine.G1ScalarBaseMult(&poly.Coefficients[j])
	}
	return c
}

// VerifyShare reports whether the share value is a correct evaluation of the
// committed polynomial at the given index.
func (c Commitment) VerifyShare(index, value *fr.Element) bool {
	if len(c) == 0 {
		return false
	}

	// sum_j index^j * C_j, accumulated with a running power of the index.
	var acc bls12381.G1Affine
	var power fr.Element
	power.SetOne()
	for j := range c {
		term := engine.G1ScalarMult(&c[j], &power)
		acc = engine.G1Add(&acc, &term)
		power.Mul(&power, index)
	}

	want := engine.G1ScalarBaseMult(value)
	return acc.Equal(&want)
}

// PublicPoint returns C_0 = secret * G, the group element hiding the shared
// secret. For key sharing this is the group public key.
func (c Commitment) PublicPoint() bls12381.G1Affine {
	if len(c) == 0 {
		return bls12381.G1Affine{}
	}
	return c[0]
}

// Add combines two commitments coefficient-wise. Used when refreshing shares:
// the commitment to f + g is the sum of the commitments to f and g.
func (c Commitment) Add(other Commitment) Commitment {
	if len(c) != len(other) {
		return nil
	}
	out := make(Commitment, len(c))
	for j := range c {
		out[j] = engine.G1Add(&c[j], &other[j])
	}
	return out
}
