package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/smallyu/go-bls-tss/internal/crypto/h2c"
)

// AggregateSignatures sums the given signatures into a single G2 point. The
// sequence must be non-empty: there is no canonical "identity signature" to
// return for zero signers.
func AggregateSignatures(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, fmt.Errorf("%w: no signatures to aggregate", ErrEmptyInput)
	}

	var acc bls12381.G2Affine
	for i, s := range sigs {
		if s == nil {
			return nil, fmt.Errorf("%w: signature %d is nil", ErrEmptyInput, i)
		}
		acc = engine.G2Add(&acc, &s.p)
	}
	return &Signature{p: acc}, nil
}

// AggregatePublicKeys sums the given public keys into a single G1 point, with
// the same non-empty requirement as AggregateSignatures.
func AggregatePublicKeys(pks []*PublicKey) (*PublicKey, error) {
	if len(pks) == 0 {
		return nil, fmt.Errorf("%w: no public keys to aggregate", ErrEmptyInput)
	}

	var acc bls12381.G1Affine
	for i, pk := range pks {
		if pk == nil {
			return nil, fmt.Errorf("%w: public key %d is nil", ErrEmptyInput, i)
		}
		acc = engine.G1Add(&acc, &pk.p)
	}
	return &PublicKey{p: acc}, nil
}

// AggregateVerify checks an aggregate signature over one message per signer:
//
//	e(G1-generator, sig) == prod_i e(pk_i, H(msg_i, dst))
//
// The caller must ensure the messages are distinct across signers; with
// repeated messages this unrestricted form is open to rogue-key attacks. Use
// VerifyAggregate for the same-message case.
func AggregateVerify(pks []*PublicKey, msgs [][]byte, sig *Signature, dst []byte) (bool, error) {
	if len(pks) != len(msgs) {
		return false, fmt.Errorf("%w: %d public keys, %d messages", ErrLengthMismatch, len(pks), len(msgs))
	}
	if len(pks) == 0 {
		return false, fmt.Errorf("%w: no public keys", ErrEmptyInput)
	}
	if err := h2c.ValidateDomain(dst); err != nil {
		return false, err
	}
	if !engine.G2InSubGroup(&sig.p) {
		return false, fmt.Errorf("%w: signature fails subgroup check", ErrMalformedPoint)
	}
	if sig.p.IsInfinity() {
		return false, nil
	}

	g1 := engine.G1Generator()
	var negG1 bls12381.G1Affine
	negG1.Neg(&g1)

	ps := make([]bls12381.G1Affine, 0, len(pks)+1)
	qs := make([]bls12381.G2Affine, 0, len(pks)+1)
	ps = append(ps, negG1)
	qs = append(qs, sig.p)

	for i, pk := range pks {
		if pk == nil {
			return false, fmt.Errorf("%w: public key %d is nil", ErrEmptyInput, i)
		}
		if !engine.G1InSubGroup(&pk.p) {
			return false, fmt.Errorf("%w: public key %d fails subgroup check", ErrMalformedPoint, i)
		}
		if pk.p.IsInfinity() {
			return false, nil
		}
		h, err := h2c.HashToG2(msgs[i], dst)
		if err != nil {
			return false, err
		}
		ps = append(ps, pk.p)
		qs = append(qs, h)
	}

	return engine.PairingCheck(ps, qs)
}

// VerifyAggregate checks a multi-signature where every signer signed the same
// message: the public keys are aggregated and the result verified as a single
// signature.
func VerifyAggregate(pks []*PublicKey, msg []byte, sig *Signature, dst []byte) (bool, error) {
	apk, err := AggregatePublicKeys(pks)
	if err != nil {
		return false, err
	}
	return Verify(apk, msg, sig, dst)
}
