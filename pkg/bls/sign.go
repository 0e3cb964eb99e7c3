package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/smallyu/go-bls-tss/internal/crypto/encoding"
	"github.com/smallyu/go-bls-tss/internal/crypto/h2c"
)

// Signature is a point of the prime-order subgroup of G2.
type Signature struct {
	p bls12381.G2Affine
}

// Bytes returns the 96-byte compressed encoding of the signature.
func (sig *Signature) Bytes() []byte {
	b := encoding.CompressG2(&sig.p)
	return b[:]
}

// Equal reports whether two signatures are the same point.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.p.Equal(&other.p)
}

// IsIdentity reports whether the signature is the point at infinity. Such
// signatures are always rejected by Verify.
func (sig *Signature) IsIdentity() bool {
	return sig.p.IsInfinity()
}

// SignatureFromBytes decodes a compressed G2 point, validating curve and
// subgroup membership.
func SignatureFromBytes(data []byte) (*Signature, error) {
	p, err := encoding.DecompressG2(data)
	if err != nil {
		return nil, fmt.Errorf("bls: decode signature: %w", err)
	}
	return &Signature{p: p}, nil
}

// Sign computes sk * H(msg, dst), the BLS signature on msg under the given
// domain separation tag.
func Sign(sk *SecretKey, msg, dst []byte) (*Signature, error) {
	h, err := h2c.HashToG2(msg, dst)
	if err != nil {
		return nil, err
	}
	return &Signature{p: engine.G2ScalarMult(&h, &sk.s)}, nil
}

// Verify checks the pairing equality e(G1-generator, sig) == e(pk, H(msg, dst)).
//
// A well-formed but wrong signature yields (false, nil). Malformed inputs are
// errors: an invalid DST, or a key/signature outside the prime-order
// subgroup. The identity public key and the identity signature are rejected
// with (false, nil) even though the degenerate pairing equality would hold.
func Verify(pk *PublicKey, msg []byte, sig *Signature, dst []byte) (bool, error) {
	if err := h2c.ValidateDomain(dst); err != nil {
		return false, err
	}
	if !engine.G1InSubGroup(&pk.p) {
		return false, fmt.Errorf("%w: public key fails subgroup check", ErrMalformedPoint)
	}
	if !engine.G2InSubGroup(&sig.p) {
		return false, fmt.Errorf("%w: signature fails subgroup check", ErrMalformedPoint)
	}
	if pk.p.IsInfinity() || sig.p.IsInfinity() {
		return false, nil
	}

	h, err := h2c.HashToG2(msg, dst)
	if err != nil {
		return false, err
	}

	// e(G, sig) == e(pk, H)  <=>  e(-G, sig) * e(pk, H) == 1
	g1 := engine.G1Generator()
	var negG1 bls12381.G1Affine
	negG1.Neg(&g1)

	return engine.PairingCheck(
		[]bls12381.G1Affine{negG1, pk.p},
		[]bls12381.G2Affine{sig.p, h},
	)
}
