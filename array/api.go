// SPDX-License-Identifier: MIT
// Package array — public API facades and reductions.
//
// Purpose:
//   - Numeric reductions that need a tighter constraint than Array[T any].
//   - Thin, intention-revealing entry points delegating to the methods.

package array

import "golang.org/x/exp/slices"

// Copy returns a deep copy of src (create-from-copy).
// Unlike (*Array).Clone it reports a nil source as ErrNilArray.
func Copy[T any](src *Array[T]) (*Array[T], error) {
	if src == nil {
		return nil, arrayErrorf("Copy", 0, ErrNilArray)
	}

	return src.Clone(), nil
}

// Sum returns the arithmetic sum of all elements; 0 for an empty or nil array.
// Complexity: O(n).
func Sum[T Number](a *Array[T]) T {
	var total T
	if a == nil {
		return total
	}
	for _, v := range a.data {
		total += v
	}

	return total
}

// SumOfSums returns Σ Sum(sub) over every contained sub-array.
// Nil sub-arrays contribute zero.
// Complexity: O(total elements).
func SumOfSums[T Number](a *Array[*Array[T]]) T {
	var total T
	if a == nil {
		return total
	}
	for _, sub := range a.data {
		total += Sum(sub)
	}

	return total
}

// Equal reports whether a and b have the same length and equal elements.
// Two nil arrays are equal; a nil and an empty array are equal too.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Values(), b.Values())
}
