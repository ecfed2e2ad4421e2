// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise arithmetic over equally shaped numeric matrices,
//     plus axis reversal (Transpose) for any element type.
//   - Centralize the tight loop in one private kernel (ewZip) so every public
//     op shares validation, allocation and iteration order.
//
// Determinism & Performance:
//   - Fixed flat loop 0..n-1 over the row-major buffers (shapes are identical,
//     so equal flat offsets address equal index tuples).
//   - No hidden allocations beyond the output matrix; O(Π dims) time and space.

package matrix

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlarray/array"
)

// Real is the subset of numeric element types with a total order (no complex).
type Real interface {
	constraints.Integer | constraints.Float
}

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opClip      = "Clip"
	opTranspose = "Transpose"
)

// ewZip computes out[k] = f(a[k], b[k]) over the flat buffers of a and b.
// The result inherits a's options.
func ewZip[T any](op string, a, b *Matrix[T], f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, nil, err)
	}
	out := a.Clone()
	bv := b.data.Values()
	out.data.Apply(func(k int, x T) T { return f(x, bv[k]) })

	return out, nil
}

// ewMap computes out[k] = f(a[k]) into a fresh matrix.
func ewMap[T any](op string, a *Matrix[T], f func(x T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, nil, err)
	}
	out := a.Clone()
	out.data.Apply(func(_ int, x T) T { return f(x) })

	return out, nil
}

// Add returns a + b element-wise. Shapes must match (ErrDimensionMismatch).
func Add[T array.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a − b element-wise. Shapes must match (ErrDimensionMismatch).
func Sub[T array.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(opSub, a, b, func(x, y T) T { return x - y })
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard[T array.Number](a, b *Matrix[T]) (*Matrix[T], error) {
	return ewZip(opHadamard, a, b, func(x, y T) T { return x * y })
}

// Scale returns alpha·m.
func Scale[T array.Number](m *Matrix[T], alpha T) (*Matrix[T], error) {
	return ewMap(opScale, m, func(x T) T { return x * alpha })
}

// Clip returns a copy of m with every element clamped into [lo, hi].
// Policy: if lo > hi the bounds are swapped.
func Clip[T Real](m *Matrix[T], lo, hi T) (*Matrix[T], error) {
	if lo > hi {
		lo, hi = hi, lo
	}

	return ewMap(opClip, m, func(x T) T {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	})
}

// Transpose returns a new matrix with the axis order reversed:
// out[i_k, ..., i_0] = m[i_0, ..., i_k]. For rank 2 this is the usual mᵀ;
// rank 1 yields a copy.
// Complexity: O(Π dims).
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, nil, err)
	}
	rank := len(m.dims)
	dims := make([]int, rank)
	for d := range dims {
		dims[d] = m.dims[rank-1-d]
	}
	out, err := New[T](dims)
	if err != nil {
		return nil, matrixErrorf(opTranspose, dims, err)
	}
	out.opts = m.opts

	m.Do(func(idx []int, v T) bool {
		off := 0
		for d := 0; d < rank; d++ {
			off += idx[d] * out.strides[rank-1-d]
		}
		_ = out.data.Set(off, v) // in range: out has the reversed shape
		return true
	})

	return out, nil
}
