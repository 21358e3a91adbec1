// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape, nil and index checks.
//  - Keep both implementations' error surfaces identical by delegating here.
//  - Return sentinel errors wrapped with the validator tag and the offending
//    dimensions, so call sites can add their operation tag uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1), except ValidateNested (O(rows)).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are non-negative.
//
// Zero-sized dimensions are legal; negative ones are a precondition
// violation reported as ErrInvalidShape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("(%d x %d): %w", rows, cols, ErrInvalidShape))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil. A typed nil
// pointer wrapped in the interface is caught through Nillable.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if n, ok := m.(Nillable); ok && n.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// The error names the offending dimension and both values.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("rows %d != %d: %w", a.Rows(), b.Rows(), ErrShapeMismatch))
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("cols %d != %d: %w", a.Cols(), b.Cols(), ErrShapeMismatch))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (inner dimensions named).
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("inner %d != %d: %w", a.Cols(), b.Rows(), ErrShapeMismatch))
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < s.Rows and 0 ≤ j < s.Cols.
//
// Returns the bare sentinel; public indexers wrap it with their method name
// and coordinates.
// Complexity: O(1).
func ValidateIndex(s Shape, i, j int) error {
	if i < 0 || i >= s.Rows || j < 0 || j >= s.Cols {
		return ErrIndexOutOfRange
	}

	return nil
}

// ValidateNested checks that values describe a non-empty rectangular grid
// and returns its shape.
//
// Implementation:
//   - Stage 1: zero outer length → ErrEmptyInput.
//   - Stage 2: every row must match len(values[0]) → ErrJaggedInput naming the row.
//
// Behavior highlights:
//   - A nil inner row counts as length 0; rows of zero columns are legal.
//
// Complexity: O(rows).
func ValidateNested(values [][]float64) (Shape, error) {
	if len(values) == 0 {
		return Shape{}, validatorErrorf("ValidateNested", ErrEmptyInput)
	}
	cols := len(values[0])
	for i := 1; i < len(values); i++ {
		if len(values[i]) != cols {
			return Shape{}, validatorErrorf("ValidateNested",
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(values[i]), cols, ErrJaggedInput))
		}
	}

	return Shape{Rows: len(values), Cols: cols}, nil
}
