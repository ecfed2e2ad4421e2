// SPDX-License-Identifier: MIT
// Package array_test contains test helpers.

package array_test

import (
	"testing"

	"github.com/katalvlaran/lvlarray/array"
)

// MustArray allocates an Array[T] of length n or fails the test.
func MustArray[T any](t testing.TB, n int, opts ...array.Option) *array.Array[T] {
	t.Helper()
	a, err := array.New[T](n, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return a
}

// MustAt reads a[i] or fails the test.
func MustAt[T any](t testing.TB, a *array.Array[T], i int) T {
	t.Helper()
	v, err := a.At(i)
	if err != nil {
		t.Fatalf("At(%d): %v", i, err)
	}

	return v
}

// MustSet writes a[i] = v or fails the test.
func MustSet[T any](t testing.TB, a *array.Array[T], i int, v T) {
	t.Helper()
	if err := a.Set(i, v); err != nil {
		t.Fatalf("Set(%d): %v", i, err)
	}
}

// Seq builds an int array [1..n] for fixtures.
func Seq(n int) *array.Array[int] {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i + 1
	}

	return array.FromValues(vals...)
}

// failWriter rejects every write; used to exercise Display error paths.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }
