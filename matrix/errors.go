// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvlarray/array"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels shared
// with the backing array are re-exported as the very same values, so
// errors.Is(err, matrix.ErrIndexOutOfRange) and
// errors.Is(err, array.ErrIndexOutOfRange) agree.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimensions -> arity/shape mismatch -> index range -> allocation.

var (
	// ErrInvalidDimensions is returned when no axis is given or an axis size is <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible shapes: wrong number of indices,
	// different dims between operands, or a value count that does not fill the shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotScalar is returned by Value/SetValue on a view that still has axes.
	ErrNotScalar = errors.New("matrix: view is not a single element")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

var (
	// ErrIndexOutOfRange indicates an index outside its axis bounds.
	// Public indexers (Index/At/Set/Ref) MUST return this, not panic.
	ErrIndexOutOfRange = array.ErrIndexOutOfRange

	// ErrAllocation indicates that the element count overflows or the backing
	// buffer exceeds the configured byte cap.
	ErrAllocation = array.ErrAllocation
)
