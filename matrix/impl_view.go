// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlarray/array"
	"golang.org/x/exp/slices"
)

const (
	ctxViewIndex = "Index"
	ctxViewAt    = "At"
	ctxViewSet   = "Set"
	ctxViewValue = "Value"
	ctxViewSetV  = "SetValue"
)

// viewErrorf wraps an error with a uniform View context and the index tuple.
func viewErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("View.%s%v: %w", method, idx, err)
}

// View is a non-owning window over the trailing axes of a Matrix (shared storage).
// It is produced by Matrix.Index and View.Index; a View of rank 0 is one element.
type View[T any] struct {
	base   *Matrix[T] // underlying storage owner
	axis   int        // first base axis covered by the view
	offset int        // flat offset of the view's first element in base
}

// Rank returns the number of axes left in the view (0 for a single element).
func (v *View[T]) Rank() int { return len(v.base.dims) - v.axis }

// Dims returns a copy of the view's axis sizes (empty for rank 0).
func (v *View[T]) Dims() []int { return slices.Clone(v.base.dims[v.axis:]) }

// Len returns the size of the view's outermost axis, or 0 for a single element.
func (v *View[T]) Len() int {
	if v.Rank() == 0 {
		return 0
	}

	return v.base.dims[v.axis]
}

// size returns the number of elements covered by the view.
func (v *View[T]) size() int {
	if v.Rank() == 0 {
		return 1
	}

	return v.base.dims[v.axis] * v.base.strides[v.axis]
}

// Index narrows the view to position i of its outermost axis.
// Errors:
//   - ErrDimensionMismatch on a rank-0 view (no axis left).
//   - ErrIndexOutOfRange for i outside [0, Len()).
func (v *View[T]) Index(i int) (*View[T], error) {
	if v.Rank() == 0 {
		return nil, viewErrorf(ctxViewIndex, []int{i}, ErrDimensionMismatch)
	}
	if i < 0 || i >= v.base.dims[v.axis] {
		return nil, viewErrorf(ctxViewIndex, []int{i}, ErrIndexOutOfRange)
	}

	return &View[T]{
		base:   v.base,
		axis:   v.axis + 1,
		offset: v.offset + i*v.base.strides[v.axis],
	}, nil
}

// At reads the element at idx relative to the view (len(idx) == Rank()).
func (v *View[T]) At(idx ...int) (T, error) {
	off, err := offsetOf(v.base.dims, v.base.strides, v.axis, v.offset, idx)
	if err != nil {
		var zero T
		return zero, viewErrorf(ctxViewAt, idx, err)
	}

	return v.base.data.At(off)
}

// Set writes val at idx relative to the view; the base matrix observes the write.
func (v *View[T]) Set(val T, idx ...int) error {
	off, err := offsetOf(v.base.dims, v.base.strides, v.axis, v.offset, idx)
	if err != nil {
		return viewErrorf(ctxViewSet, idx, err)
	}

	return v.base.data.Set(off, val)
}

// Value returns the element of a rank-0 view, ErrNotScalar otherwise.
func (v *View[T]) Value() (T, error) {
	if v.Rank() != 0 {
		var zero T
		return zero, viewErrorf(ctxViewValue, nil, ErrNotScalar)
	}

	return v.base.data.At(v.offset)
}

// SetValue writes the element of a rank-0 view, ErrNotScalar otherwise.
func (v *View[T]) SetValue(val T) error {
	if v.Rank() != 0 {
		return viewErrorf(ctxViewSetV, nil, ErrNotScalar)
	}

	return v.base.data.Set(v.offset, val)
}

// Fill overwrites every element covered by the view with val.
func (v *View[T]) Fill(val T) {
	end := v.offset + v.size()
	for off := v.offset; off < end; off++ {
		_ = v.base.data.Set(off, val) // offsets are in range by construction
	}
}

// ToArray copies the elements covered by the view (row-major) into a new Array.
// For a rank-1 view this is the leaf array of the nested representation.
func (v *View[T]) ToArray() *array.Array[T] {
	vals := make([]T, v.size())
	for k := range vals {
		vals[k], _ = v.base.data.At(v.offset + k) // in range by construction
	}

	return array.FromValues(vals...)
}

// Display writes the view with the base matrix's rendering options.
func (v *View[T]) Display(w io.Writer) error {
	return writeRendered(w, "View", v.render())
}

// String renders the view like Display.
func (v *View[T]) String() string { return v.render() }

func (v *View[T]) render() string {
	return render(v.base, v.axis, v.offset)
}
