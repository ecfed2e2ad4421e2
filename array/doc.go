// Package array provides Array[T], an owning, resizable container over a
// contiguous buffer.
//
// What & Why:
//
//	Array manages its backing storage explicitly: it is created with a length
//	(zero-initialized) or from a list of values, deep-copied with Clone, and
//	resized with a copy-then-replace discipline that keeps the overlapping
//	prefix and zero-fills any new tail. Every accessor is bounds-checked and
//	reports ErrIndexOutOfRange instead of panicking.
//
// Reductions:
//
//	Sum and SumOfSums are package functions constrained to numeric element
//	types, so calling them on a non-numeric Array is a compile error.
//
// Complexity:
//
//	Len, At, Set and Ref run in O(1). New, Clone, Resize and Populate are O(n).
package array
