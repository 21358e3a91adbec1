// SPDX-License-Identifier: MIT

// Package optimized - Dense storage (row-major), constructors and accessors.

package optimized

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/densebench/matrix"
)

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxNew        = "New"
	ctxFromNested = "FromNested"
)

// Name is the implementation label reported by Impl.
const Name = "optimized"

// Dense is the optimized row-major matrix. Layout is identical to the
// reference: len(data) == rows*cols, element (i,j) at i*cols+j.
type Dense struct {
	rows, cols int
	data       []float64
}

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

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("optimized.Dense.%s(%d,%d): %w", method, row, col, err)
}

// New creates a rows×cols zero matrix.
//
// Implementation:
//   - Stage 1: matrix.ValidateShape(rows, cols).
//   - Stage 2: allocate one contiguous row-major buffer of rows*cols zeros.
//
// Behavior highlights:
//   - Zero dimensions are legal and yield an empty buffer.
//
// Errors:
//   - matrix.ErrInvalidShape for a negative dimension, tagged "optimized.New".
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func New(rows, cols int) (*Dense, error) {
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("optimized.%s: %w", ctxNew, err)
	}

	return alloc(rows, cols), nil
}

func alloc(rows, cols int) *Dense {
	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// FromNested converts a rectangular nested slice into a Dense.
//
// Implementation:
//   - Stage 1: matrix.ValidateNested derives the shape and checks that every
//     row has the length of the first.
//   - Stage 2: copy each row with one copy call into its slot of the flat
//     buffer; the input is never aliased.
//
// Errors:
//   - matrix.ErrEmptyInput when values has no rows.
//   - matrix.ErrJaggedInput when row lengths differ.
//   - Both tagged "optimized.FromNested".
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func FromNested(values [][]float64) (*Dense, error) {
	shape, err := matrix.ValidateNested(values)
	if err != nil {
		return nil, fmt.Errorf("optimized.%s: %w", ctxFromNested, err)
	}

	m := alloc(shape.Rows, shape.Cols)
	for i, row := range values {
		copy(m.data[i*shape.Cols:(i+1)*shape.Cols], row)
	}

	return m, nil
}

// IsNil reports a nil receiver; see matrix.Nillable.
func (m *Dense) IsNil() bool { return m == nil }

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() matrix.Shape { return matrix.Shape{Rows: m.rows, Cols: m.cols} }

// At returns element (row, col) or matrix.ErrIndexOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	if err := matrix.ValidateIndex(m.Shape(), row, col); err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[row*m.cols+col], nil
}

// Set stores v at (row, col) or returns matrix.ErrIndexOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	if err := matrix.ValidateIndex(m.Shape(), row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[row*m.cols+col] = v

	return nil
}

// String renders rows as "[a, b]\n" lines, matching the reference format.
func (m *Dense) String() string {
	buf := make([]byte, 0, 8*len(m.data)+3*m.rows)
	for i := 0; i < m.rows; i++ {
		buf = append(buf, '[')
		for j, v := range m.data[i*m.cols : (i+1)*m.cols] {
			if j > 0 {
				buf = append(buf, ", "...)
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, "]\n"...)
	}

	return string(buf)
}

// flat returns other's row-major buffer: the backing slice itself for a
// *Dense (read-only use), or a copy read through At for foreign types.
func flat(other matrix.Matrix) ([]float64, error) {
	if o, ok := other.(*Dense); ok {
		return o.data, nil
	}

	r, c := other.Rows(), other.Cols()
	out := make([]float64, r*c)
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if out[i*c+j], err = other.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
