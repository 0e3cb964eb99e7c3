package bls

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/hkdf"

	"github.com/smallyu/go-bls-tss/internal/crypto/curves"
	"github.com/smallyu/go-bls-tss/internal/crypto/encoding"
	"github.com/smallyu/go-bls-tss/internal/logger"
)

// Byte sizes of the fixed-width encodings.
const (
	SecretKeySize = fr.Bytes        // 32-byte big-endian scalar
	PublicKeySize = encoding.SizeG1 // 48-byte compressed G1 point
	SignatureSize = encoding.SizeG2 // 96-byte compressed G2 point
)

// MinIKMSize is the minimum input keying material length accepted by KeyGen.
const MinIKMSize = 32

// keygenSalt is the HKDF salt of the BLS signatures draft KeyGen procedure.
var keygenSalt = []byte("BLS-SIG-KEYGEN-SALT-")

var engine = curves.NewBLS12381()

// SecretKey is a scalar in [1, r). It is never serialized implicitly; use
// Bytes explicitly when a key must leave the process.
type SecretKey struct {
	s fr.Element
}

// PublicKey is a point of the prime-order subgroup of G1.
type PublicKey struct {
	p bls12381.G1Affine
}

// KeyGen derives a secret key from at least 32 bytes of input keying
// material, using the HKDF-SHA256 procedure of the BLS signatures draft. The
// same ikm always derives the same key; the caller owns the entropy.
func KeyGen(ikm []byte) (*SecretKey, error) {
	if len(ikm) < MinIKMSize {
		return nil, fmt.Errorf("bls: input keying material must be at least %d bytes, got %d", MinIKMSize, len(ikm))
	}

	// IKM || I2OSP(0, 1)
	secret := make([]byte, len(ikm)+1)
	copy(secret, ikm)

	// I2OSP(L, 2) with L = 48, enough for a negligible bias mod r.
	info := []byte{0, 48}

	salt := keygenSalt
	for {
		h := sha256.Sum256(salt)
		salt = h[:]

		prk := hkdf.Extract(sha256.New, secret, salt)
		okm := make([]byte, 48)
		if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), okm); err != nil {
			return nil, fmt.Errorf("bls: hkdf expand: %w", err)
		}

		k := new(big.Int).SetBytes(okm)
		k.Mod(k, fr.Modulus())
		if k.Sign() != 0 {
			sk := new(SecretKey)
			sk.s.SetBigInt(k)
			log := logger.Logger()
			log.Debug().Msg("derived secret key from ikm")
			return sk, nil
		}
	}
}

// GenerateKey creates a uniformly random secret key in [1, r) from the given
// randomness source (crypto/rand.Reader in production).
func GenerateKey(rand io.Reader) (*SecretKey, error) {
	buf := make([]byte, 48)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("bls: read randomness: %w", err)
		}
		k := new(big.Int).SetBytes(buf)
		k.Mod(k, fr.Modulus())
		if k.Sign() != 0 {
			sk := new(SecretKey)
			sk.s.SetBigInt(k)
			return sk, nil
		}
	}
}

// PublicKey derives the public key sk * G1-generator.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{p: engine.G1ScalarBaseMult(&sk.s)}
}

// Bytes returns the 32-byte big-endian encoding of the secret scalar.
func (sk *SecretKey) Bytes() []byte {
	b := sk.s.Bytes()
	return b[:]
}

// Equal reports whether two secret keys are the same scalar.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.s.Equal(&other.s)
}

// SecretKeyFromBytes decodes a 32-byte big-endian scalar. The value must be
// canonical (less than the group order) and nonzero.
func SecretKeyFromBytes(data []byte) (*SecretKey, error) {
	if len(data) != SecretKeySize {
		return nil, fmt.Errorf("bls: invalid secret key length: expected %d, got %d", SecretKeySize, len(data))
	}
	k := new(big.Int).SetBytes(data)
	if k.Cmp(fr.Modulus()) >= 0 {
		return nil, fmt.Errorf("bls: secret key exceeds the group order")
	}
	if k.Sign() == 0 {
		return nil, fmt.Errorf("bls: secret key is zero")
	}
	sk := new(SecretKey)
	sk.s.SetBigInt(k)
	return sk, nil
}

// Bytes returns the 48-byte compressed encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	b := encoding.CompressG1(&pk.p)
	return b[:]
}

// Equal reports whether two public keys are the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(&other.p)
}

// IsIdentity reports whether the public key is the point at infinity. Such
// keys never verify any signature.
func (pk *PublicKey) IsIdentity() bool {
	return pk.p.IsInfinity()
}

// PublicKeyFromBytes decodes a compressed G1 point, validating curve and
// subgroup membership.
func PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	p, err := encoding.DecompressG1(data)
	if err != nil {
		return nil, fmt.Errorf("bls: decode public key: %w", err)
	}
	return &PublicKey{p: p}, nil
}
