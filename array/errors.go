// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every exported
// operation returns one of these (possibly wrapped with call-site context via
// arrayErrorf) and tests MUST match them with errors.Is. No operation panics on
// user-triggered conditions.

package array

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index outside [0, Len()).
	// Accessors (At/Set/Ref) MUST return this, never clamp or panic.
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrInvalidLength indicates a negative requested length (New/Resize).
	ErrInvalidLength = errors.New("array: length must be >= 0")

	// ErrAllocation indicates that backing storage for the requested length
	// exceeds the configured byte cap or overflows the address computation.
	ErrAllocation = errors.New("array: cannot allocate backing storage")

	// ErrNilArray indicates that a nil *Array was used as receiver or argument.
	ErrNilArray = errors.New("array: nil array")
)

// arrayErrorf wraps err with the method tag and the offending index/length.
func arrayErrorf(method string, n int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, n, err)
}
