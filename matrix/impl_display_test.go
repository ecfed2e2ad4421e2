// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarray/matrix"
)

// TestDisplay2x2 sets a 2×2 matrix cell by cell and renders it.
func TestDisplay2x2(t *testing.T) {
	m := MustMatrix[int](t, []int{2, 2})
	MustSet(t, m, 1, 0, 0)
	MustSet(t, m, 2, 0, 1)
	MustSet(t, m, 3, 1, 0)
	MustSet(t, m, 4, 1, 1)

	var buf bytes.Buffer
	require.NoError(t, m.Display(&buf))
	require.Equal(t, "1 2\n3 4\n", buf.String())
	require.Equal(t, buf.String(), m.String())
}

// TestDisplayRanks covers the rank-1 line and the stacked rank-3/4 layout.
func TestDisplayRanks(t *testing.T) {
	tests := []struct {
		name string
		dims []int
		want string
	}{
		{"vector", []int{3}, "0 1 2\n"},
		{"column", []int{3, 1}, "0\n1\n2\n"},
		{"cube", []int{2, 2, 2}, "0 1\n2 3\n\n4 5\n6 7\n"},
		{"rank4", []int{2, 1, 1, 2}, "0 1\n\n\n2 3\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			n := 1
			for _, d := range tc.dims {
				n *= d
			}
			m := NewFilled(t, tc.dims, Iota(0, n))
			require.Equal(t, tc.want, m.String())
		})
	}
}

// TestDisplayOptions verifies that format and separator reach the output.
func TestDisplayOptions(t *testing.T) {
	m := NewFilled(t, []int{2, 2}, []float64{1, 2.5, -3, 4},
		matrix.WithElementFormat("%.1f"), matrix.WithSeparator(", "))
	require.Equal(t, "1.0, 2.5\n-3.0, 4.0\n", m.String())

	// Options travel with clones and views.
	require.Equal(t, m.String(), m.Clone().String())
	require.Equal(t, "-3.0, 4.0\n", MustIndex(t, m, 1).String())
}

// TestDisplayWriterError ensures writer failures are surfaced.
func TestDisplayWriterError(t *testing.T) {
	boom := errors.New("boom")
	m := MustMatrix[int](t, []int{1, 1})
	require.ErrorIs(t, m.Display(failWriter{err: boom}), boom)
	require.ErrorIs(t, MustIndex(t, m, 0).Display(failWriter{err: boom}), boom)

	var nilM *matrix.Matrix[int]
	require.ErrorIs(t, nilM.Display(&bytes.Buffer{}), matrix.ErrNilMatrix)
	require.Equal(t, "", nilM.String())
}
