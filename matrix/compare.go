// SPDX-License-Identifier: MIT

// Package matrix: implementation-agnostic comparison and export helpers.
// These read operands through the Matrix interface only, so they can compare
// a reference result against an optimized one without knowing either type.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for helper error wrapping.
const (
	opAllClose = "AllClose"
	opEqual    = "Equal"
	opToNested = "ToNested"
)

// DefaultRelTol is the relative tolerance used for cross-implementation
// equivalence checks.
const DefaultRelTol = 1e-9

// DefaultAbsTol is the absolute floor paired with DefaultRelTol so that
// values near zero are not compared purely relatively.
const DefaultAbsTol = 1e-12

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
//
// Implementation:
//   - Stage 1: normalize tolerances to |rtol|, |atol|.
//   - Stage 2: ValidateBinarySameShape(a, b).
//   - Stage 3: fixed i→j scan via At; early exit on first violation.
//
// Returns:
//   - (true, nil) when all elements satisfy the relation; (false, nil) otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with "AllClose").
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - NaN never compares close, matching IEEE semantics.
//   - Equal infinities of the same sign compare close.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, fmt.Errorf("%s: %w", opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("%s: %w", opAllClose, err)
			}
			if av == bv {
				continue // covers equal infinities, whose difference is NaN
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports exact element-wise equality of two same-shaped matrices.
// Shape mismatch is an error, not a false result.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	ok, err := AllClose(a, b, 0, 0)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opEqual, err)
	}

	return ok, nil
}

// ToNested copies m into a freshly allocated [][]float64 (row-major order).
// It is the inverse of an implementation's FromNested for non-empty shapes.
// Complexity: O(r*c).
func ToNested(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToNested, err)
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opToNested, err)
			}
		}
	}

	return out, nil
}
