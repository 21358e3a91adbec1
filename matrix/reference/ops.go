// SPDX-License-Identifier: MIT
// Package reference: arithmetic kernels (Add, Sub, MatMul).
//
// Purpose:
//   - Implement the arithmetic contract with the plainest possible loops.
//   - Share validation with every other implementation via matrix.Validate*.
//
// Notes:
//   - Fast path when the operand is a *Dense (flat indexing); fallback reads
//     any foreign Matrix through At with the same loop order.

package reference

import (
	"fmt"

	"github.com/katalvlaran/densebench/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMatMul = "MatMul"
)

// zeroSum is the initial value of every per-cell accumulator.
const zeroSum = 0.0

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("reference.%s: %w", tag, err)
}

// addSub computes element-wise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: matrix.ValidateBinarySameShape(a, b). Allocate result.
//   - Stage 2: fast path if b is *Dense - single flat loop 0..n-1;
//     otherwise At with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - sign is ±1, so a + sign*b is exactly a ± b in IEEE arithmetic.
func (m *Dense) addSub(other matrix.Matrix, sign float64, opTag string) (matrix.Matrix, error) {
	if err := matrix.ValidateBinarySameShape(m, other); err != nil {
		return nil, opErrorf(opTag, err)
	}

	res := newDense(m.r, m.c)

	// Fast path: *Dense with *Dense → single flat loop.
	if o, ok := other.(*Dense); ok {
		n := m.r * m.c
		for idx := 0; idx < n; idx++ {
			res.data[idx] = m.data[idx] + sign*o.data[idx]
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var bv float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if bv, err = other.At(i, j); err != nil {
				return nil, opErrorf(opTag, err)
			}
			res.data[i*m.c+j] = m.data[i*m.c+j] + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh *Dense.
//
// Errors:
//   - matrix.ErrNilMatrix (nil operand), matrix.ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Add(other matrix.Matrix) (matrix.Matrix, error) {
	return m.addSub(other, +1, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh *Dense.
//
// Errors:
//   - matrix.ErrNilMatrix (nil operand), matrix.ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Sub(other matrix.Matrix) (matrix.Matrix, error) {
	return m.addSub(other, -1, opSub)
}

// MatMul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: matrix.ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: allocate C (A.Rows × B.Cols).
//   - Stage 3: i → j → k; one scalar accumulator per cell,
//     C[i,j] = Σ_k A[i,k]*B[k,j], written once.
//
// Behavior highlights:
//   - No zero skipping and no short circuit: a zero inner dimension leaves
//     every accumulator at 0, a zero outer dimension yields an empty result.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) MatMul(other matrix.Matrix) (matrix.Matrix, error) {
	if err := matrix.ValidateMulCompatible(m, other); err != nil {
		return nil, opErrorf(opMatMul, err)
	}

	aRows, aCols, bCols := m.r, m.c, other.Cols()
	res := newDense(aRows, bCols)

	var (
		i, j, k    int
		rowOffsetA int
		sum, bv    float64
		err        error
	)

	// Fast path: both operands are *Dense.
	if o, ok := other.(*Dense); ok {
		for i = 0; i < aRows; i++ {
			rowOffsetA = i * aCols
			for j = 0; j < bCols; j++ {
				sum = zeroSum
				for k = 0; k < aCols; k++ {
					sum += m.data[rowOffsetA+k] * o.data[k*bCols+j]
				}
				res.data[i*bCols+j] = sum
			}
		}

		return res, nil
	}

	// Fallback: foreign right operand read through At, same i-j-k order.
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			sum = zeroSum
			for k = 0; k < aCols; k++ {
				if bv, err = other.At(k, j); err != nil {
					return nil, opErrorf(opMatMul, err)
				}
				sum += m.data[rowOffsetA+k] * bv
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}
