// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for matrix tests.
//   • Keep helpers fatal on error so test bodies stay focused on behavior.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlarray/matrix"
)

// MustMatrix ALLOCATES a zero matrix with the given dims or fails the test.
func MustMatrix[T any](t testing.TB, dims []int, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](dims, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", dims, err)
	}

	return m
}

// NewFilled BUILDS a matrix from row-major values or fails the test.
func NewFilled[T any](t testing.TB, dims []int, vals []T, opts ...matrix.Option) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromValues(dims, vals, opts...)
	if err != nil {
		t.Fatalf("FromValues(%v): %v", dims, err)
	}

	return m
}

// MustIndex NARROWS m (or a view) along successive axes or fails the test.
func MustIndex[T any](t testing.TB, m *matrix.Matrix[T], path ...int) *matrix.View[T] {
	t.Helper()
	v, err := m.Index(path[0])
	if err != nil {
		t.Fatalf("Index(%d): %v", path[0], err)
	}
	for _, i := range path[1:] {
		if v, err = v.Index(i); err != nil {
			t.Fatalf("Index(%v): %v", path, err)
		}
	}

	return v
}

// MustAt READS m at idx or fails the test.
func MustAt[T any](t testing.TB, m *matrix.Matrix[T], idx ...int) T {
	t.Helper()
	v, err := m.At(idx...)
	if err != nil {
		t.Fatalf("At(%v): %v", idx, err)
	}

	return v
}

// MustSet WRITES v at idx or fails the test.
func MustSet[T any](t testing.TB, m *matrix.Matrix[T], v T, idx ...int) {
	t.Helper()
	if err := m.Set(v, idx...); err != nil {
		t.Fatalf("Set(%v): %v", idx, err)
	}
}

// Iota returns [start, start+1, ..., start+n-1].
func Iota(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}

	return out
}

// failWriter rejects every write; used to exercise Display error paths.
type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }
