// Package matrix provides Matrix[T], an N-dimensional array stored row-major
// in a single array.Array[T].
//
// What & Why:
//
//	A matrix is created from its axis sizes, outermost first: New[int]([]int{2, 3})
//	has two outer elements, each holding three ints. Indexing walks the axes in
//	the same order, either one axis at a time with Index (returning a no-copy
//	View, whose rank-0 form is the element itself) or in one step with At/Set.
//	Every axis size is fixed at construction; every access is bounds-checked and
//	reports ErrIndexOutOfRange instead of panicking.
//
// Rendering:
//
//	Display writes a row-major text form to any io.Writer: one line per row,
//	elements separated by a space. Higher ranks stack 2-D blocks separated by
//	blank lines. Format and separator are configurable (WithElementFormat,
//	WithSeparator).
//
// Interop:
//
//	Nested/FromNested convert rank-2 matrices to and from arrays of leaf arrays;
//	ToDense/FromDense convert rank-2 float64 matrices to and from gonum.
//
// Complexity:
//
//	Rank, Dims, Size and Index run in O(1) (Dims copies rank ints).
//	At, Set, Ref and Offset perform bounds checking in O(rank).
//	New, Clone, Fill, Do and Apply are O(Π dims).
package matrix
