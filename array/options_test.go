// SPDX-License-Identifier: MIT
package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlarray/array"
)

// TestWithMaxBytesPanicsOnZero verifies the programmer-error guard.
func TestWithMaxBytesPanicsOnZero(t *testing.T) {
	require.PanicsWithValue(t, array.PanicMaxBytesInvalid_TestOnly, func() {
		_ = array.WithMaxBytes(0)
	})
}

// TestOptionsLastWriterWins verifies option ordering.
func TestOptionsLastWriterWins(t *testing.T) {
	a := MustArray[int](t, 0, array.WithTypeTag("first"), array.WithTypeTag("second"))
	require.Equal(t, "second", a.TypeTag())

	b := MustArray[int](t, 0, array.WithTypeTag("custom"), array.WithTypeTag(array.DefaultTypeTag))
	require.Equal(t, "Array[int]", b.TypeTag(), "empty tag restores the derived label")

	_, err := array.New[byte](8, array.WithMaxBytes(4), array.WithMaxBytes(8))
	require.NoError(t, err)
}

// TestNilOptionIgnored verifies that a nil Option is skipped.
func TestNilOptionIgnored(t *testing.T) {
	a := MustArray[int](t, 1, nil)
	require.Equal(t, 1, a.Len())
}

// TestMaxBytesSurvivesClone verifies the cap travels with the clone.
func TestMaxBytesSurvivesClone(t *testing.T) {
	a := MustArray[byte](t, 4, array.WithMaxBytes(4))
	c := a.Clone()
	require.ErrorIs(t, c.Resize(5), array.ErrAllocation)
}
