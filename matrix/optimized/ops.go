// SPDX-License-Identifier: MIT

// Package optimized: arithmetic kernels.

package optimized

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/densebench/matrix"
)

const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMatMul = "MatMul"
)

// panelFloats bounds the packed B panel visited by one column tile
// (32768 float64 = 256 KiB, a typical per-core L2 share).
const panelFloats = 1 << 15

// transposeBlock is the square block edge used when packing B.
const transposeBlock = 32

func opErrorf(tag string, err error) error {
	return fmt.Errorf("optimized.%s: %w", tag, err)
}

// Add returns m + other as a new Dense.
//
// Implementation:
//   - Stage 1: matrix.ValidateBinarySameShape(m, other).
//   - Stage 2: obtain other's row-major buffer (shared when other is an
//     optimized Dense, materialized through At otherwise).
//   - Stage 3: one vecmath.AddBlock pass writes res = m + other.
//
// Errors:
//   - matrix.ErrNilMatrix or matrix.ErrShapeMismatch, tagged "optimized.Add".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func (m *Dense) Add(other matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateBinarySameShape(m, other); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	b, err := flat(other)
	if err != nil {
		return nil, opErrorf(opAdd, err)
	}

	res := alloc(m.rows, m.cols)
	vecmath.AddBlock(res.data, m.data, b)

	return res, nil
}

// Sub returns m - other as a new Dense.
//
// Implementation:
//   - Stage 1: matrix.ValidateBinarySameShape(m, other).
//   - Stage 2: obtain other's row-major buffer as in Add.
//   - Stage 3: vecmath.ScaleBlock writes -other into the result buffer.
//   - Stage 4: vecmath.AddBlockInPlace accumulates m, leaving m - other.
//
// Behavior highlights:
//   - Neither operand is modified; negation happens in the result buffer.
//
// Errors:
//   - matrix.ErrNilMatrix or matrix.ErrShapeMismatch, tagged "optimized.Sub".
//
// Complexity:
//   - Time O(r*c) over two passes, Space O(r*c) for the result.
func (m *Dense) Sub(other matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateBinarySameShape(m, other); err != nil {
		return nil, opErrorf(opSub, err)
	}
	b, err := flat(other)
	if err != nil {
		return nil, opErrorf(opSub, err)
	}

	res := alloc(m.rows, m.cols)
	vecmath.ScaleBlock(res.data, b, -1)
	vecmath.AddBlockInPlace(res.data, m.data)

	return res, nil
}

// MatMul returns m × other.
//
// Implementation:
//   - Stage 1: matrix.ValidateMulCompatible.
//   - Stage 2: pack other transposed (bt[j*n+k] = B[k,j]) with a blocked copy.
//   - Stage 3: for each column tile [j0, j1) sized so the tile's packed
//     columns fit in panelFloats, for each row i, every cell of the tile is
//     vecmath.DotProduct(A[i,:], bt[j,:]), k innermost over contiguous memory.
//
// Behavior highlights:
//   - One accumulator per cell (inside DotProduct), written once.
//   - Zero inner dimension: every dot product is over empty slices and
//     yields 0, so the result is the correctly shaped zero matrix.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) for the result and the packed panel.
func (m *Dense) MatMul(other matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateMulCompatible(m, other); err != nil {
		return nil, opErrorf(opMatMul, err)
	}
	b, err := flat(other)
	if err != nil {
		return nil, opErrorf(opMatMul, err)
	}

	rows, n, cols := m.rows, m.cols, other.Cols()
	res := alloc(rows, cols)
	bt := packTransposed(b, n, cols)

	tile := panelFloats / max(n, 1)
	tile = max(tile, 1)

	var aRow, out []float64
	for j0 := 0; j0 < cols; j0 += tile {
		j1 := min(j0+tile, cols)
		for i := 0; i < rows; i++ {
			aRow = m.data[i*n : (i+1)*n]
			out = res.data[i*cols : (i+1)*cols]
			for j := j0; j < j1; j++ {
				out[j] = vecmath.DotProduct(aRow, bt[j*n:(j+1)*n])
			}
		}
	}

	return res, nil
}

// packTransposed returns the cols×n transpose of the n×cols row-major
// buffer b, copied in transposeBlock×transposeBlock blocks.
func packTransposed(b []float64, n, cols int) []float64 {
	bt := make([]float64, n*cols)
	for k0 := 0; k0 < n; k0 += transposeBlock {
		k1 := min(k0+transposeBlock, n)
		for j0 := 0; j0 < cols; j0 += transposeBlock {
			j1 := min(j0+transposeBlock, cols)
			for k := k0; k < k1; k++ {
				src := b[k*cols : (k+1)*cols]
				for j := j0; j < j1; j++ {
					bt[j*n+k] = src[j]
				}
			}
		}
	}

	return bt
}
