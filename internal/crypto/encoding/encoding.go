// Package encoding serializes BLS12-381 group elements to and from the
// standard fixed-width compressed form: 48 bytes for G1, 96 bytes for G2.
//
// The three most significant bits of the leading byte carry the compression
// flag, the infinity flag, and the sign bit selecting which of the two
// possible y-coordinates to reconstruct. Decompression validates that the
// encoded x-coordinate yields a point on the curve and that the point lies in
// the prime-order subgroup.
package encoding

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// Compressed encoding sizes in bytes.
const (
	SizeG1 = bls12381.SizeOfG1AffineCompressed
	SizeG2 = bls12381.SizeOfG2AffineCompressed
)

// Flag bits stored in the three msbs of the leading byte.
const (
	mMask               byte = 0b111 << 5
	mCompressedSmallest byte = 0b100 << 5
	mCompressedLargest  byte = 0b101 << 5
	mCompressedInfinity byte = 0b110 << 5
)

var (
	// ErrPointNotOnCurve is returned when the encoded x-coordinate does not
	// correspond to a point on the curve.
	ErrPointNotOnCurve = errors.New("encoding: point is not on the curve")

	// ErrMalformedPoint is returned for structurally invalid encodings:
	// wrong length, bad flag bits, non-canonical coordinates, or a point
	// outside the prime-order subgroup.
	ErrMalformedPoint = errors.New("encoding: malformed point encoding")
)

// CompressG1 serializes a G1 point to its 48-byte compressed form.
func CompressG1(p *bls12381.G1Affine) [SizeG1]byte {
	return p.Bytes()
}

// CompressG2 serializes a G2 point to its 96-byte compressed form.
func CompressG2(q *bls12381.G2Affine) [SizeG2]byte {
	return q.Bytes()
}

// DecompressG1 reconstructs a G1 point from its compressed form. The
// y-coordinate is recovered as a square root of x^3 + 4, with the stored sign
// bit selecting between the two candidates.
func DecompressG1(buf []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine

	if len(buf) != SizeG1 {
		return p, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedPoint, SizeG1, len(buf))
	}

	flags := buf[0] & mMask
	switch flags {
	case mCompressedInfinity:
		if !restIsZero(buf) {
			return p, fmt.Errorf("%w: non-zero payload with infinity flag", ErrMalformedPoint)
		}
		p.X.SetZero()
		p.Y.SetZero()
		return p, nil
	case mCompressedSmallest, mCompressedLargest:
		// fall through to coordinate recovery
	default:
		return p, fmt.Errorf("%w: invalid flag bits 0b%03b", ErrMalformedPoint, flags>>5)
	}

	var raw [SizeG1]byte
	copy(raw[:], buf)
	raw[0] &^= mMask

	// Reject non-canonical x >= p before reducing into the field.
	x := new(big.Int).SetBytes(raw[:])
	if x.Cmp(fp.Modulus()) >= 0 {
		return p, fmt.Errorf("%w: x-coordinate exceeds the field modulus", ErrMalformedPoint)
	}
	p.X.SetBytes(raw[:])

	// y^2 = x^3 + 4
	var ySquared, b fp.Element
	ySquared.Square(&p.X)
	ySquared.Mul(&ySquared, &p.X)
	b.SetUint64(4)
	ySquared.Add(&ySquared, &b)

	if p.Y.Sqrt(&ySquared) == nil {
		return bls12381.G1Affine{}, fmt.Errorf("%w: x^3 + 4 is not a square", ErrPointNotOnCurve)
	}

	if p.Y.LexicographicallyLargest() != (flags == mCompressedLargest) {
		p.Y.Neg(&p.Y)
	}

	if !p.IsInSubGroup() {
		return bls12381.G1Affine{}, fmt.Errorf("%w: point is not in the prime-order subgroup", ErrMalformedPoint)
	}
	return p, nil
}

// DecompressG2 reconstructs a G2 point from its compressed form. The
// x-coordinate lives in Fp2 and is serialized as x_c1 || x_c0; the
// y-coordinate is recovered as a square root of x^3 + 4(1+u), with the stored
// sign bit selecting between the two candidates.
func DecompressG2(buf []byte) (bls12381.G2Affine, error) {
	var q bls12381.G2Affine

	if len(buf) != SizeG2 {
		return q, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedPoint, SizeG2, len(buf))
	}

	flags := buf[0] & mMask
	switch flags {
	case mCompressedInfinity:
		if !restIsZero(buf) {
			return q, fmt.Errorf("%w: non-zero payload with infinity flag", ErrMalformedPoint)
		}
		q.X.SetZero()
		q.Y.SetZero()
		return q, nil
	case mCompressedSmallest, mCompressedLargest:
		// fall through to coordinate recovery
	default:
		return q, fmt.Errorf("%w: invalid flag bits 0b%03b", ErrMalformedPoint, flags>>5)
	}

	var raw [SizeG2]byte
	copy(raw[:], buf)
	raw[0] &^= mMask

	// Both 48-byte limbs must encode canonical field elements.
	for _, limb := range [][]byte{raw[:SizeG1], raw[SizeG1:]} {
		if new(big.Int).SetBytes(limb).Cmp(fp.Modulus()) >= 0 {
			return q, fmt.Errorf("%w: x-coordinate exceeds the field modulus", ErrMalformedPoint)
		}
	}
	q.X.A1.SetBytes(raw[:SizeG1])
	q.X.A0.SetBytes(raw[SizeG1:])

	// y^2 = x^3 + 4(1+u)
	var ySquared, bTwist bls12381.E2
	ySquared.Square(&q.X)
	ySquared.Mul(&ySquared, &q.X)
	bTwist.A0.SetUint64(4)
	bTwist.A1.SetUint64(4)
	ySquared.Add(&ySquared, &bTwist)

	if q.Y.Sqrt(&ySquared) == nil {
		return bls12381.G2Affine{}, fmt.Errorf("%w: x^3 + 4(1+u) is not a square", ErrPointNotOnCurve)
	}

	if q.Y.LexicographicallyLargest() != (flags == mCompressedLargest) {
		q.Y.Neg(&q.Y)
	}

	if !q.IsInSubGroup() {
		return bls12381.G2Affine{}, fmt.Errorf("%w: point is not in the prime-order subgroup", ErrMalformedPoint)
	}
	return q, nil
}

// restIsZero reports whether all bits of buf outside the flag bits are zero.
func restIsZero(buf []byte) bool {
	if buf[0]&^mMask != 0 {
		return false
	}
	for _, v := range buf[1:] {
		if v != 0 {
			return false
		}
	}
	return true
}
