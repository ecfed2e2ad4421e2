// SPDX-License-Identifier: MIT

// Package array: functional configuration for Array construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: every Array carries its own resolved options.
//   - No dead switches: each option changes observable behavior and is tested.
package array

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxBytes caps the size of a single backing buffer (1 TiB).
	// New and Resize return ErrAllocation above this cap instead of letting
	// the runtime abort on an impossible make().
	DefaultMaxBytes uint64 = 1 << 40

	// DefaultTypeTag is the empty tag; TypeTag() then derives "Array[<elem>]".
	DefaultTypeTag = ""
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxBytesInvalid = "array: WithMaxBytes: cap must be > 0"
)

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxBytes uint64 // > 0; DefaultMaxBytes
	typeTag  string // DefaultTypeTag
}

// defaultOptions returns Options filled from the Default* constants.
func defaultOptions() Options {
	return Options{
		maxBytes: DefaultMaxBytes,
		typeTag:  DefaultTypeTag,
	}
}

// gatherOptions resolves opts on top of the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithTypeTag sets the informational type label reported by TypeTag().
// The tag has no behavioral effect; an empty tag restores the derived one.
func WithTypeTag(tag string) Option {
	return func(o *Options) { o.typeTag = tag }
}

// WithMaxBytes sets the byte cap for the backing buffer (New and Resize).
// Panics if n == 0.
func WithMaxBytes(n uint64) Option {
	if n == 0 {
		panic(panicMaxBytesInvalid)
	}

	return func(o *Options) { o.maxBytes = n }
}
