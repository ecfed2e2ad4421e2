// SPDX-License-Identifier: MIT

// Package matrix provides converters between rank-2 float64 matrices and
// gonum's *mat.Dense, so numeric work can move to gonum kernels and back.
// Both sides are row-major, so conversion is a single flat copy.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a rank-2 Matrix[float64] into a new *mat.Dense.
// Other ranks return ErrDimensionMismatch.
//
// Time Complexity: O(rows*cols)
func ToDense(m *Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	if m.Rank() != 2 {
		return nil, fmt.Errorf("ToDense: rank %d: %w", m.Rank(), ErrDimensionMismatch)
	}

	return mat.NewDense(m.dims[0], m.dims[1], m.Flat()), nil
}

// FromDense copies any gonum mat.Matrix into a new rank-2 Matrix[float64].
// An empty gonum matrix returns ErrInvalidDimensions.
//
// Time Complexity: O(rows*cols)
func FromDense(d mat.Matrix, opts ...Option) (*Matrix[float64], error) {
	if d == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	r, c := d.Dims()
	m, err := New[float64]([]int{r, c}, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}
	m.Apply(func(idx []int, _ float64) float64 {
		return d.At(idx[0], idx[1])
	})

	return m, nil
}
