// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Host the reductions that need a tighter constraint than Matrix[T any].

package matrix

import "github.com/katalvlaran/lvlarray/array"

// NewZeros returns a new zero-initialized matrix with the given axis sizes.
// It is a thin alias of New with an intention-revealing name.
func NewZeros[T any](dims ...int) (*Matrix[T], error) { return New[T](dims) }

// CloneMatrix returns a deep copy of m, or ErrNilMatrix.
func CloneMatrix[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", nil, err)
	}

	return m.Clone(), nil
}

// ZerosLike returns a new zero matrix with the same dims and options as m.
func ZerosLike[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", nil, err)
	}
	out, err := New[T](m.dims)
	if err != nil {
		return nil, err
	}
	out.opts = m.opts

	return out, nil
}

// Sum returns the arithmetic sum of every element; 0 for a nil matrix.
// Complexity: O(Π dims).
func Sum[T array.Number](m *Matrix[T]) T {
	if m == nil {
		var zero T
		return zero
	}

	return array.Sum(m.data)
}

// RowSums returns, for a rank-2 matrix, the sum of each row as an Array.
// Implementation: Nested() then array.Sum per leaf; SumOfSums(result) == Sum(m).
func RowSums[T array.Number](m *Matrix[T]) (*array.Array[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", nil, err)
	}
	rows, err := m.Nested()
	if err != nil {
		return nil, err
	}
	out, err := array.New[T](rows.Len())
	if err != nil {
		return nil, matrixErrorf("RowSums", m.dims, err)
	}
	rows.Do(func(i int, leaf *array.Array[T]) bool {
		_ = out.Set(i, array.Sum(leaf))
		return true
	})

	return out, nil
}

// Equal reports whether a and b have identical dims and equal elements.
// Two nil matrices are equal.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	return array.Equal(a.data, b.data)
}
