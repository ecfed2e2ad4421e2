// SPDX-License-Identifier: MIT

// Package array - owning growable storage & safe accessors.
//
// Purpose:
//   - Provide a single-owner contiguous buffer with an explicit length.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Resize with a copy-then-replace discipline: the old buffer stays valid until
//     the new one is fully populated.
//
// AI-Hints:
//   - Ref(i) returns a pointer into the current buffer; it is invalidated by Resize.
//   - Use Clone for an independent lifetime; Values for a detached []T.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set/Ref: O(1); Clone/Resize/Populate: O(n).

package array

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"unsafe"

	"golang.org/x/exp/slices"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRef     = "Ref"
	ctxResize  = "Resize"
	ctxDisplay = "Display"
)

// ---------- Formatting literals ----------

const (
	_fmtSep     = " "
	_fmtLineEnd = "\n"
)

// Array is an owning, resizable container of T over contiguous storage.
//   - data has exactly Len() valid elements (zero-initialized on allocation).
//   - tag is informational metadata only.
//   - maxBytes caps every allocation made on behalf of this array.
type Array[T any] struct {
	data     []T    // exclusively owned backing buffer (len == length)
	tag      string // optional type label; empty ⇒ derived on demand
	maxBytes uint64 // allocation cap in bytes (> 0)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array[int])(nil)

// New allocates an array of length zero-initialized elements.
// MAIN DESCRIPTION:
//   - Public constructor with strict length validation and an allocation cap.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: validate length >= 0 and the byte size against the cap.
//   - Stage 3: allocate the zero-filled buffer.
//
// Errors:
//   - ErrInvalidLength for length < 0.
//   - ErrAllocation when length*sizeof(T) exceeds the cap.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T any](length int, opts ...Option) (*Array[T], error) {
	o := gatherOptions(opts...)
	if err := checkAlloc[T](length, o.maxBytes); err != nil {
		return nil, arrayErrorf(ctxNew, length, err)
	}

	return &Array[T]{
		data:     make([]T, length), // make() zero-fills
		tag:      o.typeTag,
		maxBytes: o.maxBytes,
	}, nil
}

// FromValues allocates an array holding a copy of values.
// Length is the number of values supplied; the caller's slice is not retained.
func FromValues[T any](values ...T) *Array[T] {
	buf := make([]T, len(values))
	copy(buf, values)

	return &Array[T]{data: buf, maxBytes: DefaultMaxBytes}
}

// checkAlloc validates a requested length for element type T against limit.
// Zero-sized element types never exceed the cap.
func checkAlloc[T any](n int, limit uint64) error {
	if n < 0 {
		return ErrInvalidLength
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size > 0 && uint64(n) > limit/size {
		return ErrAllocation
	}

	return nil
}

// Len returns the current element count. A nil array has length 0.
func (a *Array[T]) Len() int {
	if a == nil {
		return 0
	}

	return len(a.data)
}

// TypeTag returns the informational type label, e.g. "Array[int]".
func (a *Array[T]) TypeTag() string {
	if a != nil && a.tag != "" {
		return a.tag
	}

	return "Array[" + reflect.TypeOf((*T)(nil)).Elem().String() + "]"
}

// indexOf bounds-checks i; the sentinel is wrapped by the public caller.
func (a *Array[T]) indexOf(i int) error {
	if a == nil {
		return ErrNilArray
	}
	if i < 0 || i >= len(a.data) {
		return ErrIndexOutOfRange
	}

	return nil
}

// At returns the element at index i or ErrIndexOutOfRange.
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if err := a.indexOf(i); err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, i, err)
	}

	return a.data[i], nil
}

// Set stores v at index i or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if err := a.indexOf(i); err != nil {
		return arrayErrorf(ctxSet, i, err)
	}
	a.data[i] = v

	return nil
}

// Ref returns a pointer to the element at index i for in-place mutation.
// The pointer refers to the current buffer and must not be used after Resize.
// Complexity: O(1).
func (a *Array[T]) Ref(i int) (*T, error) {
	if err := a.indexOf(i); err != nil {
		return nil, arrayErrorf(ctxRef, i, err)
	}

	return &a.data[i], nil
}

// Resize changes the length to n, preserving the overlapping prefix.
// MAIN DESCRIPTION:
//   - Copy-then-replace: allocate a fresh zero-filled buffer, copy
//     min(Len(), n) leading elements, then swap the buffer in.
//
// Implementation:
//   - Stage 1: n == Len() ⇒ no-op.
//   - Stage 2: validate n against the allocation cap (array untouched on error).
//   - Stage 3: allocate, copy prefix, swap.
//
// Behavior highlights:
//   - New tail slots hold the zero value of T.
//   - The old buffer is dropped only after the new one is populated, so a
//     failed Resize leaves the previous contents intact.
//
// Errors:
//   - ErrNilArray, ErrInvalidLength, ErrAllocation.
//
// Complexity:
//   - Time O(n), Space O(n).
func (a *Array[T]) Resize(n int) error {
	if a == nil {
		return arrayErrorf(ctxResize, n, ErrNilArray)
	}
	if n == len(a.data) {
		return nil
	}
	if err := checkAlloc[T](n, a.limit()); err != nil {
		return arrayErrorf(ctxResize, n, err)
	}
	next := make([]T, n)
	copy(next, a.data) // copies min(len(a.data), n) elements
	a.data = next

	return nil
}

// limit returns the effective allocation cap (zero-value arrays use the default).
func (a *Array[T]) limit() uint64 {
	if a.maxBytes == 0 {
		return DefaultMaxBytes
	}

	return a.maxBytes
}

// Clone returns a deep copy with an independent buffer and the same options.
// Elements are copied by assignment; a nil receiver clones to nil.
func (a *Array[T]) Clone() *Array[T] {
	if a == nil {
		return nil
	}

	return &Array[T]{
		data:     slices.Clone(a.data),
		tag:      a.tag,
		maxBytes: a.maxBytes,
	}
}

// Populate overwrites every element with a copy of v.
// When v implements Cloner[T] each slot receives its own v.Clone(), so
// nested arrays never alias one another.
func (a *Array[T]) Populate(v T) {
	if a == nil {
		return
	}
	if c, ok := any(v).(Cloner[T]); ok {
		for i := range a.data {
			a.data[i] = c.Clone()
		}
		return
	}
	for i := range a.data {
		a.data[i] = v
	}
}

// PopulateFunc overwrites every element i with f(i), in index order.
func (a *Array[T]) PopulateFunc(f func(i int) T) {
	if a == nil {
		return
	}
	for i := range a.data {
		a.data[i] = f(i)
	}
}

// Values returns a detached copy of the elements.
func (a *Array[T]) Values() []T {
	if a == nil {
		return nil
	}

	return slices.Clone(a.data)
}

// Do visits each element in index order and calls f(i, v).
// Stops early when f returns false.
func (a *Array[T]) Do(f func(i int, v T) bool) {
	if a == nil {
		return
	}
	for i, v := range a.data {
		if !f(i, v) {
			return
		}
	}
}

// Apply replaces each element with f(i, v) in place, in index order.
func (a *Array[T]) Apply(f func(i int, v T) T) {
	if a == nil {
		return
	}
	for i, v := range a.data {
		a.data[i] = f(i, v)
	}
}

// String renders the elements as "[e0 e1 ...]" using %v.
// Nested arrays render recursively through their own String.
func (a *Array[T]) String() string {
	if a == nil {
		return "[]"
	}

	return fmt.Sprint(a.data)
}

// Display writes the elements to w on a single line, separated by one space
// and terminated by a newline. An empty array writes just the newline.
func (a *Array[T]) Display(w io.Writer) error {
	if a == nil {
		return arrayErrorf(ctxDisplay, 0, ErrNilArray)
	}
	var b strings.Builder
	for i, v := range a.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, v)
	}
	b.WriteString(_fmtLineEnd)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("Array.%s: %w", ctxDisplay, err)
	}

	return nil
}
