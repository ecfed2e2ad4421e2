// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options travel with the matrix: Clone and views render the same way.
package matrix

import (
	"strings"

	"github.com/katalvlaran/lvlarray/array"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultElementFormat is the fmt verb used for every rendered element.
	DefaultElementFormat = "%v"

	// DefaultSeparator separates elements on a rendered line.
	DefaultSeparator = " "

	// DefaultMaxBytes caps the flat backing buffer; mirrors array.DefaultMaxBytes.
	DefaultMaxBytes = array.DefaultMaxBytes
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFormatInvalid    = "matrix: WithElementFormat: format must contain a % verb"
	panicSeparatorInvalid = "matrix: WithSeparator: separator must not contain a line break"
	panicMaxBytesInvalid  = "matrix: WithMaxBytes: cap must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation.
type Options struct {
	format   string // DefaultElementFormat
	sep      string // DefaultSeparator
	maxBytes uint64 // DefaultMaxBytes (> 0)
}

// NewMatrixOptions returns the resolved Options for opts (defaults first).
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies opts over the documented defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{
		format:   DefaultElementFormat,
		sep:      DefaultSeparator,
		maxBytes: DefaultMaxBytes,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithElementFormat sets the fmt format used for each element in Display/String,
// e.g. "%.2f" or "%3d". Panics if format has no '%' verb.
func WithElementFormat(format string) Option {
	if !strings.Contains(format, "%") {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = format }
}

// WithSeparator sets the string placed between elements of one rendered line.
// Panics if sep contains '\n' or '\r'; the empty separator is allowed.
func WithSeparator(sep string) Option {
	if strings.ContainsAny(sep, "\r\n") {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.sep = sep }
}

// WithMaxBytes caps the size of the flat backing buffer. Panics if n == 0.
func WithMaxBytes(n uint64) Option {
	if n == 0 {
		panic(panicMaxBytesInvalid)
	}

	return func(o *Options) { o.maxBytes = n }
}
