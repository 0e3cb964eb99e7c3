package bls

import (
	"github.com/smallyu/go-bls-tss/internal/crypto/h2c"
)

// Scheme binds a validated domain separation tag so callers configure it once
// per protocol instead of threading it through every call. The tag must be
// unique per application; reusing another protocol's tag makes signatures
// interchangeable between them.
type Scheme struct {
	dst []byte
}

// NewScheme validates the domain separation tag and returns a scheme bound to
// it. Empty and oversized tags are rejected.
func NewScheme(dst []byte) (*Scheme, error) {
	if err := h2c.ValidateDomain(dst); err != nil {
		return nil, err
	}
	s := &Scheme{dst: make([]byte, len(dst))}
	copy(s.dst, dst)
	return s, nil
}

// DST returns a copy of the scheme's domain separation tag.
func (s *Scheme) DST() []byte {
	out := make([]byte, len(s.dst))
	copy(out, s.dst)
	return out
}

// Sign signs msg under the scheme's tag.
func (s *Scheme) Sign(sk *SecretKey, msg []byte) (*Signature, error) {
	return Sign(sk, msg, s.dst)
}

// Verify checks a signature under the scheme's tag.
func (s *Scheme) Verify(pk *PublicKey, msg []byte, sig *Signature) (bool, error) {
	return Verify(pk, msg, sig, s.dst)
}

// AggregateVerify checks an aggregate signature over per-signer messages
// under the scheme's tag.
func (s *Scheme) AggregateVerify(pks []*PublicKey, msgs [][]byte, sig *Signature) (bool, error) {
	return AggregateVerify(pks, msgs, sig, s.dst)
}

// VerifyAggregate checks a same-message multi-signature under the scheme's
// tag.
func (s *Scheme) VerifyAggregate(pks []*PublicKey, msg []byte, sig *Signature) (bool, error) {
	return VerifyAggregate(pks, msg, sig, s.dst)
}

// PartialSign signs msg with a key share under the scheme's tag.
func (s *Scheme) PartialSign(ks *KeyShare, msg []byte) (*SignatureShare, error) {
	return ks.PartialSign(msg, s.dst)
}

// VerifyPartialSignature checks a partial signature under the scheme's tag.
func (s *Scheme) VerifyPartialSignature(pks *PublicKeyShare, msg []byte, ss *SignatureShare) (bool, error) {
	return VerifyPartialSignature(pks, msg, ss, s.dst)
}
