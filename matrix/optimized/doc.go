// SPDX-License-Identifier: MIT

// Package optimized is the performance-tuned Matrix implementation.
//
// It honors exactly the same contract as package reference (same shapes,
// same error sentinels, results equal within floating-point rounding) while
// exploiting the row-major layout:
//
//   - Add: one SIMD-dispatched pass, vecmath.AddBlock(dst, a, b).
//   - Sub: vecmath.ScaleBlock(dst, b, -1) then vecmath.AddBlockInPlace(dst, a),
//     which is a + (-b) and therefore bit-identical to a - b.
//   - MatMul: the right operand is packed once into a transposed panel so
//     that every output cell is a contiguous dot product
//     (vecmath.DotProduct) of a row of A and a packed column of B. Columns
//     are processed in tiles sized to keep the active panel cache resident.
//
// Vector kernels come from github.com/cwbudde/algo-vecmath, which selects
// AVX2/NEON/SSE2 or a pure Go fallback at first use. The SIMD dot product
// may reassociate the sum, so MatMul matches the reference within a small
// relative tolerance rather than bit for bit.
package optimized
