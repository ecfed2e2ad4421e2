// SPDX-License-Identifier: MIT

// Package matrix - textual rendering.
//
// Layout:
//   - rank 1: one line, elements joined by the separator.
//   - rank 2: one line per row (row-major), each terminated by '\n'.
//   - rank k >= 3: each outermost slice rendered recursively; consecutive slices
//     are separated by k-2 empty lines, so 3-D blocks read as stacked 2-D tables.
//   - rank 0 (a single-element view): the element followed by '\n'.
//
// Every element is formatted with the configured verb (DefaultElementFormat).

package matrix

import (
	"fmt"
	"io"
	"strings"
)

const (
	ctxDisplay  = "Display"
	_fmtLineEnd = "\n"
)

// Display writes the row-major rendering of m to w.
// For the 2×2 matrix [[1 2] [3 4]] it writes "1 2\n3 4\n".
func (m *Matrix[T]) Display(w io.Writer) error {
	if m == nil {
		return matrixErrorf(ctxDisplay, nil, ErrNilMatrix)
	}

	return writeRendered(w, "Matrix", render(m, 0, 0))
}

// String renders m like Display. Intended for logs and debugging.
func (m *Matrix[T]) String() string {
	if m == nil {
		return ""
	}

	return render(m, 0, 0)
}

// render formats the elements of base reachable from axis at offset.
func render[T any](base *Matrix[T], axis, offset int) string {
	var b strings.Builder
	if axis == len(base.dims) {
		v, _ := base.data.At(offset)
		fmt.Fprintf(&b, base.opts.format, v)
		b.WriteString(_fmtLineEnd)
		return b.String()
	}
	renderAxis(&b, base, axis, offset)

	return b.String()
}

// renderAxis writes the sub-block at (axis, offset) into b.
func renderAxis[T any](b *strings.Builder, base *Matrix[T], axis, offset int) {
	rest := len(base.dims) - axis
	n, stride := base.dims[axis], base.strides[axis]
	if rest == 1 {
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(base.opts.sep)
			}
			v, _ := base.data.At(offset + i*stride)
			fmt.Fprintf(b, base.opts.format, v)
		}
		b.WriteString(_fmtLineEnd)
		return
	}
	for i := 0; i < n; i++ {
		if i > 0 && rest >= 3 {
			b.WriteString(strings.Repeat(_fmtLineEnd, rest-2))
		}
		renderAxis(b, base, axis+1, offset+i*stride)
	}
}

// writeRendered sends s to w, tagging writer failures with the owner name.
func writeRendered(w io.Writer, owner, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%s.%s: %w", owner, ctxDisplay, err)
	}

	return nil
}
