// Package shamir implements Shamir secret sharing and Lagrange reconstruction
// over the BLS12-381 scalar field.
//
// A secret s is split into n shares by sampling a random degree-(t-1)
// polynomial f with f(0) = s and handing out the evaluations (i, f(i)) for
// i = 1..n. Any t distinct shares recover s by evaluating the interpolation
// polynomial at x = 0; the same Lagrange coefficients recover group elements
// (partial public keys, partial signatures) by scalar-multiplying share
// values instead of field-multiplying them.
package shamir

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/smallyu/go-bls-tss/internal/crypto/curves"
	"github.com/smallyu/go-bls-tss/internal/crypto/polynomial"
)

var (
	// ErrInsufficientShares is returned when fewer shares than the threshold
	// are provided for reconstruction.
	ErrInsufficientShares = errors.New("shamir: not enough shares to reconstruct")

	// ErrDuplicateIndex is returned when share indices are not distinct and
	// nonzero.
	ErrDuplicateIndex = errors.New("shamir: share indices must be distinct and nonzero")

	// ErrSingularInterpolation is returned when a Lagrange denominator is
	// zero. This cannot occur for distinct nonzero indices but is checked
	// before every field inversion.
	ErrSingularInterpolation = errors.New("shamir: singular interpolation denominator")
)

// ScalarShare is an evaluation (index, f(index)) of a secret-sharing
// polynomial over the scalar field.
type ScalarShare struct {
	Index fr.Element
	Value fr.Element
}

// G1Share pairs a share index with a G1 group element (e.g. a partial public
// key).
type G1Share struct {
	Index fr.Element
	Value bls12381.G1Affine
}

// G2Share pairs a share index with a G2 group element (e.g. a partial
// signature).
type G2Share struct {
	Index fr.Element
	Value bls12381.G2Affine
}

var engine = curves.NewBLS12381()

// Split shares the secret into n evaluations of a random degree-(threshold-1)
// polynomial, using indices 1..n. It returns the shares together with the
// polynomial so callers can derive verification commitments.
func Split(secret *fr.Element, threshold, n int) ([]ScalarShare, *polynomial.Polynomial, error) {
	if threshold < 1 {
		return nil, nil, fmt.Errorf("shamir: threshold must be at least 1, got %d", threshold)
	}
	if n < threshold {
		return nil, nil, fmt.Errorf("shamir: cannot split into %d shares with threshold %d", n, threshold)
	}

	poly, err := polynomial.New(threshold-1, secret)
	if err != nil {
		return nil, nil, err
	}

	shares := make([]ScalarShare, n)
	for i := 0; i < n; i++ {
		shares[i].Index.SetUint64(uint64(i + 1))
		shares[i].Value = poly.Evaluate(&shares[i].Index)
	}
	return shares, poly, nil
}

// LagrangeCoefficients computes the basis coefficients
// lambda_i = prod_{j != i} (0 - x_j) / (x_i - x_j)
// for evaluating the interpolation polynomial at x = 0. The indices must be
// distinct and nonzero.
func LagrangeCoefficients(indices []fr.Element) ([]fr.Element, error) {
	if err := checkIndices(indices); err != nil {
		return nil, err
	}

	coeffs := make([]fr.Element, len(indices))
	for i := range indices {
		var numerator, denominator fr.Element
		numerator.SetOne()
		denominator.SetOne()

		for j := range indices {
			if j == i {
				continue
			}
			var term fr.Element
			term.Neg(&indices[j]) // 0 - x_j
			numerator.Mul(&numerator, &term)

			term.Sub(&indices[i], &indices[j]) // x_i - x_j
			denominator.Mul(&denominator, &term)
		}

		if denominator.IsZero() {
			return nil, ErrSingularInterpolation
		}
		denominator.Inverse(&denominator)
		coeffs[i].Mul(&numerator, &denominator)
	}
	return coeffs, nil
}

// ReconstructScalar recovers f(0) from at least threshold scalar shares.
// The result depends only on the set of shares, not their order.
func ReconstructScalar(shares []ScalarShare, threshold int) (fr.Element, error) {
	if len(shares) < threshold {
		return fr.Element{}, fmt.Errorf("%w: got %d, need %d", ErrInsufficientShares, len(shares), threshold)
	}

	indices := make([]fr.Element, len(shares))
	for i := range shares {
		indices[i] = shares[i].Index
	}
	coeffs, err := LagrangeCoefficients(indices)
	if err != nil {
		return fr.Element{}, err
	}

	var result, term fr.Element
	for i := range shares {
		term.Mul(&coeffs[i], &shares[i].Value)
		result.Add(&result, &term)
	}
	return result, nil
}

// ReconstructG1 recovers the group element committed at x = 0 from at least
// threshold G1 shares: sum_i lambda_i * V_i.
func ReconstructG1(shares []G1Share, threshold int) (bls12381.G1Affine, error) {
	if len(shares) < threshold {
		return bls12381.G1Affine{}, fmt.Errorf("%w: got %d, need %d", ErrInsufficientShares, len(shares), threshold)
	}

	indices := make([]fr.Element, len(shares))
	for i := range shares {
		indices[i] = shares[i].Index
	}
	coeffs, err := LagrangeCoefficients(indices)
	if err != nil {
		return bls12381.G1Affine{}, err
	}

	var result bls12381.G1Affine
	for i := range shares {
		scaled := engine.G1ScalarMult(&shares[i].Value, &coeffs[i])
		result = engine.G1Add(&result, &scaled)
	}
	return result, nil
}

// ReconstructG2 recovers the group element committed at x = 0 from at least
// threshold G2 shares.
func ReconstructG2(shares []G2Share, threshold int) (bls12381.G2Affine, error) {
	if len(shares) < threshold {
		return bls12381.G2Affine{}, fmt.Errorf("%w: got %d, need %d", ErrInsufficientShares, len(shares), threshold)
	}

	indices := make([]fr.Element, len(shares))
	for i := range shares {
		indices[i] = shares[i].Index
	}
	coeffs, err := LagrangeCoefficients(indices)
	if err != nil {
		return bls12381.G2Affine{}, err
	}

	var result bls12381.G2Affine
	for i := range shares {
		scaled := engine.G2ScalarMult(&shares[i].Value, &coeffs[i])
		result = engine.G2Add(&result, &scaled)
	}
	return result, nil
}

// Refresh produces a new sharing of the same secret by adding the shares of a
// random zero-secret polynomial of the same degree. Old and new shares must
// not be mixed in a reconstruction. The masking polynomial is returned so
// callers can update verification commitments.
func Refresh(shares []ScalarShare, threshold int) ([]ScalarShare, *polynomial.Polynomial, error) {
	if len(shares) == 0 {
		return nil, nil, errors.New("shamir: no shares to refresh")
	}
	if threshold < 1 {
		return nil, nil, fmt.Errorf("shamir: threshold must be at least 1, got %d", threshold)
	}

	indices := make([]fr.Element, len(shares))
	for i := range shares {
		indices[i] = shares[i].Index
	}
	if err := checkIndices(indices); err != nil {
		return nil, nil, err
	}

	var zero fr.Element
	mask, err := polynomial.New(threshold-1, &zero)
	if err != nil {
		return nil, nil, err
	}

	refreshed := make([]ScalarShare, len(shares))
	for i := range shares {
		delta := mask.Evaluate(&shares[i].Index)
		refreshed[i].Index = shares[i].Index
		refreshed[i].Value.Add(&shares[i].Value, &delta)
	}
	return refreshed, mask, nil
}

// checkIndices rejects zero and duplicate share indices.
func checkIndices(indices []fr.Element) error {
	seen := make(map[fr.Element]struct{}, len(indices))
	for i := range indices {
		if indices[i].IsZero() {
			return fmt.Errorf("%w: index at position %d is zero", ErrDuplicateIndex, i)
		}
		if _, ok := seen[indices[i]]; ok {
			return fmt.Errorf("%w: index %s appears twice", ErrDuplicateIndex, indices[i].String())
		}
		seen[indices[i]] = struct{}{}
	}
	return nil
}
