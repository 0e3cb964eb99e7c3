package bls

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/smallyu/go-bls-tss/internal/crypto/commitment"
	"github.com/smallyu/go-bls-tss/internal/crypto/shamir"
	"github.com/smallyu/go-bls-tss/internal/logger"
)

// KeyShare is one fragment of a split secret key. Indices start at 1; index 0
// would reveal the secret itself and is rejected everywhere.
type KeyShare struct {
	Index     uint32
	SecretKey *SecretKey
}

// PublicKeyShare is the public counterpart of a KeyShare, used to verify
// partial signatures.
type PublicKeyShare struct {
	Index     uint32
	PublicKey *PublicKey
}

// SignatureShare is a partial signature produced with a KeyShare.
type SignatureShare struct {
	Index     uint32
	Signature *Signature
}

// ShareCommitment is a Feldman commitment to the sharing polynomial. It lets
// share holders check their fragment against the dealer's polynomial and
// exposes the group public key.
type ShareCommitment struct {
	c commitment.Commitment
}

// Split shares a secret key into n fragments such that any threshold of them
// reconstruct it, and fewer reveal nothing. The returned commitment verifies
// individual fragments.
func Split(sk *SecretKey, threshold, n int) ([]*KeyShare, *ShareCommitment, error) {
	scalarShares, poly, err := shamir.Split(&sk.s, threshold, n)
	if err != nil {
		return nil, nil, err
	}

	shares := make([]*KeyShare, n)
	for i := range scalarShares {
		fragment := new(SecretKey)
		fragment.s.Set(&scalarShares[i].Value)
		shares[i] = &KeyShare{
			Index:     uint32(i + 1),
			SecretKey: fragment,
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("threshold", threshold).
		Int("shares", n).
		Msg("split secret key")

	return shares, &ShareCommitment{c: commitment.Commit(poly)}, nil
}

// PublicShare derives the public counterpart of the key share.
func (ks *KeyShare) PublicShare() *PublicKeyShare {
	return &PublicKeyShare{
		Index:     ks.Index,
		PublicKey: ks.SecretKey.PublicKey(),
	}
}

// PartialSign signs msg with the share's key fragment. The resulting
// signature share carries the share index for reconstruction.
func (ks *KeyShare) PartialSign(msg, dst []byte) (*SignatureShare, error) {
	sig, err := Sign(ks.SecretKey, msg, dst)
	if err != nil {
		return nil, err
	}
	return &SignatureShare{Index: ks.Index, Signature: sig}, nil
}

// RecoverSecretKey interpolates the original secret key from at least
// threshold key shares with distinct nonzero indices.
func RecoverSecretKey(shares []*KeyShare, threshold int) (*SecretKey, error) {
	scalarShares := make([]shamir.ScalarShare, len(shares))
	for i, s := range shares {
		if s == nil || s.SecretKey == nil {
			// No index to attribute; 0 is never a valid share index.
			return nil, NewShareError(0, fmt.Sprintf("missing key share at position %d", i), nil)
		}
		scalarShares[i].Index.SetUint64(uint64(s.Index))
		scalarShares[i].Value.Set(&s.SecretKey.s)
	}

	value, err := shamir.ReconstructScalar(scalarShares, threshold)
	if err != nil {
		return nil, err
	}

	sk := new(SecretKey)
	sk.s.Set(&value)
	return sk, nil
}

// RecoverPublicKey interpolates the group public key from at least threshold
// public key shares.
func RecoverPublicKey(shares []*PublicKeyShare, threshold int) (*PublicKey, error) {
	g1Shares := make([]shamir.G1Share, len(shares))
	for i, s := range shares {
		if s == nil || s.PublicKey == nil {
			return nil, NewShareError(0, fmt.Sprintf("missing public key share at position %d", i), nil)
		}
		g1Shares[i].Index.SetUint64(uint64(s.Index))
		g1Shares[i].Value = s.PublicKey.p
	}

	p, err := shamir.ReconstructG1(g1Shares, threshold)
	if err != nil {
		return nil, err
	}
	return &PublicKey{p: p}, nil
}

// RecoverSignature assembles the group signature from at least threshold
// partial signatures on the same message. The result verifies under the group
// public key exactly as if it had been produced by the unsplit secret key.
func RecoverSignature(shares []*SignatureShare, threshold int) (*Signature, error) {
	g2Shares := make([]shamir.G2Share, len(shares))
	for i, s := range shares {
		if s == nil || s.Signature == nil {
			return nil, NewShareError(0, fmt.Sprintf("missing signature share at position %d", i), nil)
		}
		g2Shares[i].Index.SetUint64(uint64(s.Index))
		g2Shares[i].Value = s.Signature.p
	}

	p, err := shamir.ReconstructG2(g2Shares, threshold)
	if err != nil {
		return nil, err
	}
	return &Signature{p: p}, nil
}

// VerifyPartialSignature checks one partial signature against the matching
// public key share. Mismatched indices are an error; a wrong-but-well-formed
// partial signature yields (false, nil) like Verify.
func VerifyPartialSignature(pks *PublicKeyShare, msg []byte, ss *SignatureShare, dst []byte) (bool, error) {
	if pks.Index != ss.Index {
		return false, NewShareError(ss.Index, fmt.Sprintf("index does not match public key share %d", pks.Index), nil)
	}
	return Verify(pks.PublicKey, msg, ss.Signature, dst)
}

// Threshold returns the number of shares needed for reconstruction.
func (sc *ShareCommitment) Threshold() int {
	return len(sc.c)
}

// GroupPublicKey returns the public key of the shared secret.
func (sc *ShareCommitment) GroupPublicKey() *PublicKey {
	return &PublicKey{p: sc.c.PublicPoint()}
}

// VerifyKeyShare reports whether the key share is a correct evaluation of the
// committed sharing polynomial.
func (sc *ShareCommitment) VerifyKeyShare(ks *KeyShare) bool {
	if ks == nil || ks.SecretKey == nil {
		return false
	}
	var index fr.Element
	index.SetUint64(uint64(ks.Index))
	return sc.c.VerifyShare(&index, &ks.SecretKey.s)
}

// VerifyPublicShare reports whether a public key share lies on the committed
// polynomial "in the exponent": pk_i == sum_j i^j * C_j.
func (sc *ShareCommitment) VerifyPublicShare(ps *PublicKeyShare) bool {
	if ps == nil || ps.PublicKey == nil {
		return false
	}
	// Evaluate the committed polynomial at the share index and compare.
	var index, power fr.Element
	index.SetUint64(uint64(ps.Index))
	power.SetOne()

	acc := PublicKey{}
	for j := range sc.c {
		term := engine.G1ScalarMult(&sc.c[j], &power)
		acc.p = engine.G1Add(&acc.p, &term)
		power.Mul(&power, &index)
	}
	return acc.p.Equal(&ps.PublicKey.p)
}

// RefreshShares re-randomizes a full set of key shares without changing the
// underlying secret: the shares of a zero-secret masking polynomial are added
// to each fragment. Old and new shares must never be mixed. When the previous
// commitment is supplied, the updated commitment is returned alongside the
// new shares.
func RefreshShares(shares []*KeyShare, threshold int, sc *ShareCommitment) ([]*KeyShare, *ShareCommitment, error) {
	scalarShares := make([]shamir.ScalarShare, len(shares))
	for i, s := range shares {
		if s == nil || s.SecretKey == nil {
			return nil, nil, NewShareError(0, fmt.Sprintf("missing key share at position %d", i), nil)
		}
		scalarShares[i].Index.SetUint64(uint64(s.Index))
		scalarShares[i].Value.Set(&s.SecretKey.s)
	}

	refreshed, mask, err := shamir.Refresh(scalarShares, threshold)
	if err != nil {
		return nil, nil, err
	}

	out := make([]*KeyShare, len(shares))
	for i := range refreshed {
		fragment := new(SecretKey)
		fragment.s.Set(&refreshed[i].Value)
		out[i] = &KeyShare{Index: shares[i].Index, SecretKey: fragment}
	}

	var updated *ShareCommitment
	if sc != nil {
		combined := sc.c.Add(commitment.Commit(mask))
		if combined == nil {
			return nil, nil, fmt.Errorf("bls: commitment does not match the sharing degree")
		}
		updated = &ShareCommitment{c: combined}
	}

	log := logger.Logger()
	log.Debug().
		Int("threshold", threshold).
		Int("shares", len(shares)).
		Msg("refreshed key shares")

	return out, updated, nil
}
