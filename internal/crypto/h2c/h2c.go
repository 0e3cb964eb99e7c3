// Package h2c maps arbitrary byte messages to points of the prime-order
// subgroup of G2 on BLS12-381 (RFC 9380, BLS12381G2_XMD:SHA-256_SSWU_RO).
//
// Every hash is bound to a caller-supplied domain separation tag (DST) so that
// outputs from different protocols never collide. An empty DST is rejected,
// never defaulted.
package h2c

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/smallyu/go-bls-tss/internal/crypto/curves"
)

// MaxDomainLen is the longest DST permitted by the expand_message_xmd
// construction.
const MaxDomainLen = 255

// ErrInvalidDomain is returned when a DST is empty or longer than MaxDomainLen.
var ErrInvalidDomain = errors.New("h2c: domain separation tag must be non-empty and at most 255 bytes")

var engine = curves.NewBLS12381()

// ValidateDomain checks that dst is usable as a domain separation tag.
func ValidateDomain(dst []byte) error {
	if len(dst) == 0 {
		return fmt.Errorf("%w: got empty tag", ErrInvalidDomain)
	}
	if len(dst) > MaxDomainLen {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidDomain, len(dst))
	}
	return nil
}

// HashToG2 deterministically maps (msg, dst) to a point of the prime-order
// subgroup of G2. Same inputs always produce the same point; distinct DSTs
// produce independent outputs.
func HashToG2(msg, dst []byte) (bls12381.G2Affine, error) {
	if err := ValidateDomain(dst); err != nil {
		return bls12381.G2Affine{}, err
	}
	p, err := engine.HashToG2(msg, dst)
	if err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("h2c: hash to G2: %w", err)
	}
	return p, nil
}
