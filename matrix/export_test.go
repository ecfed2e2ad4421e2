// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box): exposes unexported option state and panic
// messages to matrix_test only; invisible in production builds.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicFormatInvalid_TestOnly    = panicFormatInvalid
	PanicSeparatorInvalid_TestOnly = panicSeparatorInvalid
	PanicMaxBytesInvalid_TestOnly  = panicMaxBytesInvalid
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Format   string
	Sep      string
	MaxBytes uint64
}

// NewMatrixOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func NewMatrixOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(NewMatrixOptions(opts...))
}

// SnapshotOfMatrix_TestOnly returns the options carried by m.
func SnapshotOfMatrix_TestOnly[T any](m *Matrix[T]) OptionsSnapshot {
	return snapshotOf(m.opts)
}

// Strides_TestOnly exposes the row-major strides of m.
func Strides_TestOnly[T any](m *Matrix[T]) []int { return append([]int(nil), m.strides...) }

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Format:   o.format,
		Sep:      o.sep,
		MaxBytes: o.maxBytes,
	}
}
