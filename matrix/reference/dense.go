// SPDX-License-Identifier: MIT

// Package reference - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide the row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; FromNested: O(r*c); At/Set: O(1).

package reference

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densebench/matrix"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"         // method tag used in error wrappers
	ctxSet        = "Set"        // method tag used in error wrappers
	ctxNew        = "New"        // ctor tag
	ctxFromNested = "FromNested" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Name is the implementation label reported by Impl.
const Name = "reference"

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("reference.Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the reference row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ matrix.Matrix   = (*Dense)(nil)
	_ matrix.Nillable = (*Dense)(nil)
	_ fmt.Stringer    = (*Dense)(nil)
)

// Impl describes this implementation for generators and the harness.
var Impl = matrix.Impl{
	Name:       Name,
	New:        func(rows, cols int) (matrix.Matrix, error) { return New(rows, cols) },
	FromNested: func(values [][]float64) (matrix.Matrix, error) { return FromNested(values) },
}

// New creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with non-negative shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 via matrix.ValidateShape.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - matrix.ErrInvalidShape on negative dimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - 0×N and N×0 are legal and own a zero-length buffer.
func New(rows, cols int) (*Dense, error) {
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("reference.%s: %w", ctxNew, err)
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// FromNested converts a rectangular nested slice into a Dense.
//
// Implementation:
//   - Stage 1: matrix.ValidateNested (ErrEmptyInput / ErrJaggedInput).
//   - Stage 2: allocate and copy element by element in input order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromNested(values [][]float64) (*Dense, error) {
	shape, err := matrix.ValidateNested(values)
	if err != nil {
		return nil, fmt.Errorf("reference.%s: %w", ctxFromNested, err)
	}

	m := newDense(shape.Rows, shape.Cols)
	var i, j int
	for i = 0; i < shape.Rows; i++ {
		for j = 0; j < shape.Cols; j++ {
			m.data[i*shape.Cols+j] = values[i][j]
		}
	}

	return m, nil
}

// IsNil reports a nil receiver; see matrix.Nillable.
func (m *Dense) IsNil() bool { return m == nil }

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Dense) Shape() matrix.Shape { return matrix.Shape{Rows: m.r, Cols: m.c} }

// At returns the value at (row, col) or matrix.ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if err := matrix.ValidateIndex(m.Shape(), row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) or returns matrix.ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := matrix.ValidateIndex(m.Shape(), row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[row*m.c+col] = v

	return nil
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
