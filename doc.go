// Package lvlarray is a small playground of containers that manage their own
// backing storage — a generic growable array and an N-dimensional matrix
// built on top of it.
//
// What's inside:
//
//	array/   — Array[T]: owning, resizable, bounds-checked storage; Sum, SumOfSums
//	matrix/  — Matrix[T]: N-dimensional row-major array on one Array[T];
//	           per-axis View indexing, text rendering, element-wise ops, gonum interop
//	examples/ — a runnable walkthrough
//
// Why:
//
//   - Explicit ownership – every container owns its buffer; Clone is always deep
//   - Safe by default – out-of-range access returns ErrIndexOutOfRange, never panics
//   - Generic – one implementation for every element type; numeric reductions
//     are constrained at compile time
//
// Quick ASCII example (matrix.New[int]([]int{2, 3})):
//
//	axis 0 ─┬─ [0 0 0]   ← axis 1 (leaf length 3)
//	        └─ [0 0 0]
//
//	go get github.com/katalvlaran/lvlarray
package lvlarray
