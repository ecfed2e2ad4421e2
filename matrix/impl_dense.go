// SPDX-License-Identifier: MIT

// Package matrix - N-dimensional storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit offset formula
//     Σ idx[d]*strides[d], strides[last] == 1.
//   - Keep every element in ONE array.Array[T]: a single allocation replaces the
//     nested array-of-arrays layout while preserving its indexing semantics.
//   - Guarantee safety at the public surface: Index/At/Set/Ref return errors instead of panicking.
//   - Support no-copy views (View) for chained per-axis indexing.
//
// AI-Hints:
//   - m.Index(i).Index(j)... walks the axes outermost → innermost; the rank-0 view is the element.
//   - At/Set take the full index tuple and skip view allocation on hot paths.
//   - Nested() materializes the classic array-of-arrays form for rank-2 matrices.
//
// Complexity quicksheet:
//   - New: O(Π dims) zero-init; At/Set/Ref/Offset: O(rank); Index: O(1); Clone: O(Π dims).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlarray/array"
	"golang.org/x/exp/slices"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxIndex  = "Index"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRef    = "Ref"
	ctxOffset = "Offset"
	ctxNested = "Nested"
	ctxFrom   = "FromValues"
	ctxRows   = "FromRows"
)

// matrixErrorf wraps an error with a uniform Matrix context and the index tuple.
func matrixErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Matrix.%s%v: %w", method, idx, err)
}

// Matrix is a concrete N-dimensional row-major array.
//   - dims hold the per-axis sizes, outermost first (len >= 1, all > 0).
//   - strides[d] is the flat distance between consecutive indices on axis d.
//   - data is the flat backing Array of length Π dims.
type Matrix[T any] struct {
	dims    []int           // per-axis sizes, fixed after construction
	strides []int           // row-major strides (strides[len-1] == 1)
	data    *array.Array[T] // exclusively owned flat storage
	opts    Options         // rendering policy and allocation cap
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a zero matrix with the given axis sizes, outermost first.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate dims (>= 1 axis, every size > 0).
//   - Stage 2: compute Π dims with overflow detection.
//   - Stage 3: derive strides innermost → outermost and allocate the flat buffer.
//
// Behavior highlights:
//   - dims[0] is the branching factor of the outermost axis and dims[len-1] the
//     leaf length; the order of the slice is the order of indexing.
//   - The caller's slice is copied; later mutation does not reshape the matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrAllocation (element count overflow or byte cap exceeded).
//
// Complexity:
//   - Time O(Π dims), Space O(Π dims).
func New[T any](dims []int, opts ...Option) (*Matrix[T], error) {
	if err := ValidateDims(dims); err != nil {
		return nil, matrixErrorf(ctxNew, dims, err)
	}
	size, err := elementCount(dims)
	if err != nil {
		return nil, matrixErrorf(ctxNew, dims, err)
	}
	o := gatherOptions(opts...)
	data, err := array.New[T](size, array.WithMaxBytes(o.maxBytes))
	if err != nil {
		return nil, matrixErrorf(ctxNew, dims, err)
	}

	return &Matrix[T]{
		dims:    slices.Clone(dims),
		strides: rowMajorStrides(dims),
		data:    data,
		opts:    o,
	}, nil
}

// FromValues creates a matrix with the given dims filled from values in row-major order.
// len(values) must equal Π dims, otherwise ErrDimensionMismatch. values is copied.
func FromValues[T any](dims []int, values []T, opts ...Option) (*Matrix[T], error) {
	m, err := New[T](dims, opts...)
	if err != nil {
		return nil, err
	}
	if len(values) != m.data.Len() {
		return nil, fmt.Errorf("Matrix.%s: %d values for %d cells: %w",
			ctxFrom, len(values), m.data.Len(), ErrDimensionMismatch)
	}
	m.data.PopulateFunc(func(i int) T { return values[i] })

	return m, nil
}

// FromRows creates a rank-2 matrix from regular row slices.
// Every row must have the same non-zero length; ragged input is ErrDimensionMismatch.
func FromRows[T any](rows [][]T, opts ...Option) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxRows, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("Matrix.%s: row %d has %d values, want %d: %w",
				ctxRows, i, len(row), cols, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return FromValues([]int{len(rows), cols}, flat, opts...)
}

// FromNested creates a rank-2 matrix from an array of equally long leaf arrays.
// A nil outer array or nil leaf is ErrNilMatrix; ragged leaves are ErrDimensionMismatch.
func FromNested[T any](nested *array.Array[*array.Array[T]], opts ...Option) (*Matrix[T], error) {
	if nested == nil {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxNested, ErrNilMatrix)
	}
	rows := make([][]T, nested.Len())
	var err error
	nested.Do(func(i int, leaf *array.Array[T]) bool {
		if leaf == nil {
			err = fmt.Errorf("Matrix.%s: leaf %d: %w", ctxNested, i, ErrNilMatrix)
			return false
		}
		rows[i] = leaf.Values()
		return true
	})
	if err != nil {
		return nil, err
	}

	return FromRows(rows, opts...)
}

// rowMajorStrides computes strides for dims (innermost stride is 1).
func rowMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	step := 1
	for d := len(dims) - 1; d >= 0; d-- {
		strides[d] = step
		step *= dims[d]
	}

	return strides
}

// Rank returns the number of axes. Complexity: O(1).
func (m *Matrix[T]) Rank() int { return len(m.dims) }

// Dims returns a copy of the per-axis sizes, outermost first. Complexity: O(rank).
func (m *Matrix[T]) Dims() []int { return slices.Clone(m.dims) }

// Size returns the total number of elements (Π dims). Complexity: O(1).
func (m *Matrix[T]) Size() int { return m.data.Len() }

// offsetOf computes the flat offset of a full index tuple relative to base,
// starting at axis `from`. Returns the plain sentinel; callers wrap it.
func offsetOf(dims, strides []int, from, base int, idx []int) (int, error) {
	if len(idx) != len(dims)-from {
		return 0, ErrDimensionMismatch
	}
	off := base
	for k, i := range idx {
		d := from + k
		if i < 0 || i >= dims[d] {
			return 0, ErrIndexOutOfRange
		}
		off += i * strides[d]
	}

	return off, nil
}

// Offset returns the flat row-major offset of idx.
// Errors:
//   - ErrDimensionMismatch when len(idx) != Rank().
//   - ErrIndexOutOfRange when any idx[d] is outside [0, dims[d]).
func (m *Matrix[T]) Offset(idx ...int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(ctxOffset, idx, ErrNilMatrix)
	}
	off, err := offsetOf(m.dims, m.strides, 0, 0, idx)
	if err != nil {
		return 0, matrixErrorf(ctxOffset, idx, err)
	}

	return off, nil
}

// At returns the element at the full index tuple idx.
// Complexity: O(rank), no allocations.
func (m *Matrix[T]) At(idx ...int) (T, error) {
	var zero T
	if m == nil {
		return zero, matrixErrorf(ctxAt, idx, ErrNilMatrix)
	}
	off, err := offsetOf(m.dims, m.strides, 0, 0, idx)
	if err != nil {
		return zero, matrixErrorf(ctxAt, idx, err)
	}

	return m.data.At(off)
}

// Set stores v at the full index tuple idx.
// Complexity: O(rank), no allocations.
func (m *Matrix[T]) Set(v T, idx ...int) error {
	if m == nil {
		return matrixErrorf(ctxSet, idx, ErrNilMatrix)
	}
	off, err := offsetOf(m.dims, m.strides, 0, 0, idx)
	if err != nil {
		return matrixErrorf(ctxSet, idx, err)
	}

	return m.data.Set(off, v)
}

// Ref returns a pointer to the element at idx for in-place mutation.
func (m *Matrix[T]) Ref(idx ...int) (*T, error) {
	if m == nil {
		return nil, matrixErrorf(ctxRef, idx, ErrNilMatrix)
	}
	off, err := offsetOf(m.dims, m.strides, 0, 0, idx)
	if err != nil {
		return nil, matrixErrorf(ctxRef, idx, err)
	}

	return m.data.Ref(off)
}

// Index returns the slice at position i of the outermost axis as a no-copy View.
// MAIN DESCRIPTION:
//   - For a rank-k matrix the view has rank k-1; for k == 1 it is the element
//     itself (rank 0, read with Value, written with SetValue).
//
// Behavior highlights:
//   - Writes through the view reflect in the matrix (shared storage).
//
// Errors:
//   - ErrIndexOutOfRange for i outside [0, dims[0]).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) Index(i int) (*View[T], error) {
	if m == nil {
		return nil, matrixErrorf(ctxIndex, []int{i}, ErrNilMatrix)
	}
	if i < 0 || i >= m.dims[0] {
		return nil, matrixErrorf(ctxIndex, []int{i}, ErrIndexOutOfRange)
	}

	return &View[T]{base: m, axis: 1, offset: i * m.strides[0]}, nil
}

// Clone returns a deep copy (new buffer, same dims and options).
// Complexity: O(Π dims).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{
		dims:    slices.Clone(m.dims),
		strides: slices.Clone(m.strides),
		data:    m.data.Clone(),
		opts:    m.opts,
	}
}

// Flat returns a detached row-major copy of every element.
func (m *Matrix[T]) Flat() []T { return m.data.Values() }

// Fill overwrites every element with v (cloned per cell when T implements array.Cloner).
func (m *Matrix[T]) Fill(v T) { m.data.Populate(v) }

// Do visits each element in row-major order and calls f(idx, v).
// idx is reused between calls; copy it if it must outlive the callback.
// Stops early when f returns false.
func (m *Matrix[T]) Do(f func(idx []int, v T) bool) {
	idx := make([]int, len(m.dims))
	m.data.Do(func(_ int, v T) bool {
		if !f(idx, v) {
			return false
		}
		m.advance(idx)
		return true
	})
}

// Apply replaces each element with f(idx, v) in place, in row-major order.
// idx is reused between calls.
func (m *Matrix[T]) Apply(f func(idx []int, v T) T) {
	idx := make([]int, len(m.dims))
	m.data.Apply(func(_ int, v T) T {
		nv := f(idx, v)
		m.advance(idx)
		return nv
	})
}

// advance increments a row-major index tuple in place (odometer order).
func (m *Matrix[T]) advance(idx []int) {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < m.dims[d] {
			return
		}
		idx[d] = 0
	}
}

// Nested materializes a rank-2 matrix as an array of row arrays.
// Each leaf is an independent array.Array[T] of length dims[1];
// the result shares no storage with m. Other ranks return ErrDimensionMismatch.
func (m *Matrix[T]) Nested() (*array.Array[*array.Array[T]], error) {
	if m == nil {
		return nil, matrixErrorf(ctxNested, nil, ErrNilMatrix)
	}
	if len(m.dims) != 2 {
		return nil, matrixErrorf(ctxNested, m.dims, ErrDimensionMismatch)
	}
	rows, cols := m.dims[0], m.dims[1]
	flat := m.data.Values()
	out, err := array.New[*array.Array[T]](rows)
	if err != nil {
		return nil, matrixErrorf(ctxNested, m.dims, err)
	}
	out.PopulateFunc(func(i int) *array.Array[T] {
		return array.FromValues(flat[i*cols : (i+1)*cols]...)
	})

	return out, nil
}
