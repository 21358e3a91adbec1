// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used by every Matrix
// implementation. Implementations MUST return these sentinels (optionally
// wrapped with %w) and tests MUST check them via errors.Is. No
// implementation should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Detection
// sites wrap with context ("Add: rows 2 != 3: matrix: shape mismatch");
// callers match with errors.Is.
//
// ERROR PRIORITY (enforced by the shared validators):
// nil operand -> shape mismatch -> index range.

var (
	// ErrInvalidShape is returned when a requested shape is disallowed
	// (negative rows or cols) by an allocating constructor.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrEmptyInput indicates that a nested-slice conversion received zero rows.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrJaggedInput indicates that a nested-slice conversion received rows
	// of differing lengths.
	ErrJaggedInput = errors.New("matrix: jagged input")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// of different shapes, or MatMul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange indicates that a row or column index is outside
	// [0, dimension). Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix operand was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
