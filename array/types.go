// SPDX-License-Identifier: MIT

// Package array: constraint and capability types used by Array operations.
package array

import "golang.org/x/exp/constraints"

// Number is the set of element types accepted by the numeric reductions
// (Sum, SumOfSums). Non-numeric instantiations are rejected at compile time.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Cloner is implemented by element types that know how to deep-copy
// themselves. Populate clones such values per slot so that no two slots
// share mutable state. *Array[U] satisfies Cloner[*Array[U]].
type Cloner[T any] interface {
	Clone() T
}
