// SPDX-License-Identifier: MIT

package array

// Test bridge: exposes unexported constants and helpers to array_test only.

// Panic message exports to avoid "magic strings" in tests.
const PanicMaxBytesInvalid_TestOnly = panicMaxBytesInvalid

// CheckAlloc_TestOnly forwards to checkAlloc.
func CheckAlloc_TestOnly[T any](n int, limit uint64) error { return checkAlloc[T](n, limit) }
