// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every implementation.
// This file contains ONLY the capability contract (Matrix), the Shape value
// and the Impl descriptor. Errors and validators live in dedicated files.
package matrix

import "fmt"

// Shape is the (rows, cols) pair describing a matrix's dimensions.
type Shape struct {
	Rows int // number of rows (>= 0)
	Cols int // number of columns (>= 0)
}

// String renders the shape as "(rows x cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d x %d)", s.Rows, s.Cols)
}

// Size returns Rows*Cols, the length of the backing row-major buffer.
// Complexity: O(1).
func (s Shape) Size() int { return s.Rows * s.Cols }

// Matrix represents a dense two-dimensional array of float64 values with a
// shape fixed at construction.
//
// Contract (identical for every implementation):
//   - Storage is row-major: element (i,j) lives at offset i*Cols()+j.
//   - At/Set return ErrIndexOutOfRange instead of panicking.
//   - Add/Sub/MatMul validate shapes through the package validators, never
//     mutate either operand and always return a freshly allocated result of
//     the receiver's concrete type.
//   - Operands of a foreign implementation are accepted and read via At.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// Shape packs Rows() and Cols() into a single value.
	// Complexity: O(1).
	Shape() Shape

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Add returns the element-wise sum receiver + other.
	// Returns ErrShapeMismatch unless both shapes are identical.
	// Complexity: O(r*c).
	Add(other Matrix) (Matrix, error)

	// Sub returns the element-wise difference receiver - other.
	// Returns ErrShapeMismatch unless both shapes are identical.
	// Complexity: O(r*c).
	Sub(other Matrix) (Matrix, error)

	// MatMul returns the matrix product receiver × other.
	// Returns ErrShapeMismatch unless receiver.Cols() == other.Rows().
	// Complexity: O(r*n*c).
	MatMul(other Matrix) (Matrix, error)
}

// Nillable is implemented by pointer-backed matrices so validators can
// reject a nil pointer stored in a non-nil Matrix interface.
type Nillable interface {
	IsNil() bool
}

// Impl bundles the constructors of one Matrix implementation.
// Generators and the comparison harness depend on Impl only, never on a
// concrete type, which keeps the two implementations interchangeable.
type Impl struct {
	// Name is a short human-readable label ("reference", "optimized").
	Name string

	// New allocates a rows×cols zero matrix (ErrInvalidShape on negatives).
	New func(rows, cols int) (Matrix, error)

	// FromNested converts a rectangular nested slice into a matrix
	// (ErrEmptyInput, ErrJaggedInput).
	FromNested func(values [][]float64) (Matrix, error)
}

// Valid reports whether every constructor of the descriptor is set.
func (im Impl) Valid() bool {
	return im.Name != "" && im.New != nil && im.FromNested != nil
}
