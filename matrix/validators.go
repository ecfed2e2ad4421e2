// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and accessors minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T any](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDims ensures at least one axis is requested and every axis size is > 0.
// Complexity: O(len(dims)).
func ValidateDims(dims []int) error {
	if len(dims) == 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}
	for _, d := range dims {
		if d <= 0 {
			return validatorErrorf("ValidateDims", ErrInvalidDimensions)
		}
	}

	return nil
}

// ValidateSameShape ensures both matrices are non-nil and have identical dims.
// Complexity: O(rank).
func ValidateSameShape[T any](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if !slices.Equal(a.dims, b.dims) {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// elementCount returns Π dims or ErrAllocation on int overflow.
// Assumes ValidateDims already passed.
func elementCount(dims []int) (int, error) {
	n := 1
	for _, d := range dims {
		if n > math.MaxInt/d {
			return 0, ErrAllocation
		}
		n *= d
	}

	return n, nil
}
