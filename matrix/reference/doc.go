// SPDX-License-Identifier: MIT

// Package reference is the straightforward, unoptimized Matrix
// implementation used as the correctness baseline.
//
// Every kernel is the textbook loop over the row-major buffer:
//
//   - Add/Sub: one linear pass 0..r*c-1.
//   - MatMul: i → j → k with a single scalar accumulator per output cell,
//     so the innermost loop walks row i of the left operand contiguously.
//
// No blocking, no vectorization, no zero skipping. The package exists so
// that optimized kernels have an independent oracle with identical error
// semantics.
//
//	m, _ := reference.FromNested([][]float64{{1, 2}, {3, 4}})
//	p, _ := m.MatMul(m)
package reference
