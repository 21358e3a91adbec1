// SPDX-License-Identifier: MIT

// Package matrixtest provides a conformance suite for matrix.Impl values.
//
// Every implementation runs the same suite from its own tests:
//
//	func TestConformance(t *testing.T) {
//		matrixtest.Run(t, reference.Impl)
//	}
//
// The suite covers construction, element access, the arithmetic contract,
// the algebraic properties (add/sub round trip, additive identity, matmul
// associativity) and the error taxonomy. Cross-implementation equivalence
// is checked by Equivalent, which feeds identical values to two Impls.
package matrixtest
