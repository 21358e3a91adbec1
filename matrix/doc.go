// SPDX-License-Identifier: MIT

// Package matrix defines the dense-matrix capability contract shared by the
// reference and optimized implementations.
//
// The matrix package provides:
//
//   - Matrix, a row-major float64 container with bounds-checked element
//     access and the three arithmetic operations Add, Sub and MatMul.
//   - Impl, a descriptor bundling an implementation's constructors so that
//     generators and the comparison harness stay implementation-agnostic.
//   - The sentinel error taxonomy (ErrInvalidShape, ErrEmptyInput,
//     ErrJaggedInput, ErrShapeMismatch, ErrIndexOutOfRange, ErrNilMatrix).
//   - Canonical validators used by every implementation, so that two
//     independently written kernels fail on exactly the same inputs.
//   - AllClose / Equal for tolerant and exact comparisons across
//     implementations.
//
// Implementations live in subpackages:
//
//	matrix/reference: straightforward i→j→k kernels, correctness baseline
//	matrix/optimized: SIMD-dispatched vector kernels and a packed, tiled matmul
//	matrix/matrixtest: conformance suite run against any Impl
//
// Arithmetic never mutates its operands; every call allocates and returns a
// fresh, independently owned result.
package matrix
