package bls

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-bls-tss/internal/crypto/encoding"
	"github.com/smallyu/go-bls-tss/internal/crypto/h2c"
	"github.com/smallyu/go-bls-tss/internal/crypto/shamir"
)

// Structural and input errors surfaced by the library. Cryptographically
// invalid-but-well-formed signatures are reported as a false verification
// result, never as an error.
var (
	// ErrInvalidDomain indicates an empty or oversized domain separation tag.
	ErrInvalidDomain = h2c.ErrInvalidDomain

	// ErrPointNotOnCurve indicates an encoded x-coordinate with no matching
	// point on the curve.
	ErrPointNotOnCurve = encoding.ErrPointNotOnCurve

	// ErrMalformedPoint indicates a structurally invalid point: wrong
	// encoding length, bad flag bits, or failed subgroup membership.
	ErrMalformedPoint = encoding.ErrMalformedPoint

	// ErrEmptyInput indicates an aggregation over zero items.
	ErrEmptyInput = errors.New("bls: empty input")

	// ErrLengthMismatch indicates parallel sequences of unequal length.
	ErrLengthMismatch = errors.New("bls: mismatched sequence lengths")

	// ErrInsufficientShares, ErrDuplicateIndex and ErrSingularInterpolation
	// report violated threshold-reconstruction preconditions.
	ErrInsufficientShares    = shamir.ErrInsufficientShares
	ErrDuplicateIndex        = shamir.ErrDuplicateIndex
	ErrSingularInterpolation = shamir.ErrSingularInterpolation
)

// ShareError attributes a failure to a specific share, so callers can exclude
// the faulty participant and retry with the remaining shares. Index 0 (never a
// valid share index) marks failures that cannot be attributed, such as a nil
// entry; the Reason then carries the slice position.
type ShareError struct {
	Index  uint32
	Reason string
	Err    error
}

func (e *ShareError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bls: share %d: %s: %v", e.Index, e.Reason, e.Err)
	}
	return fmt.Sprintf("bls: share %d: %s", e.Index, e.Reason)
}

func (e *ShareError) Unwrap() error {
	return e.Err
}

// NewShareError creates a new ShareError.
func NewShareError(index uint32, reason string, err error) *ShareError {
	return &ShareError{
		Index:  index,
		Reason: reason,
		Err:    err,
	}
}
