// SPDX-License-Identifier: MIT

// Package compare drives the side-by-side benchmark of two matrix
// implementations over a list of shape requests.
//
// A Request names an operand pair (A, B) and the operation family to time:
// AddSub enables ADD and SUB, MatMul enables MATMUL. Requests with the same
// (A, B) pair collapse into a single Row; the first occurrence fixes the row
// order and later ones only enable more operations.
//
// For every row Compare draws A once per implementation and, for each
// enabled operation, a fresh B per implementation, all from one seeded
// source in a fixed order:
//
//	A(ref), A(opt), then per op in ADD, SUB, MATMUL: B(ref), B(opt)
//
// so a run is reproducible for a given seed and request list. Each
// operation is timed with package bench (reference first), and the speedup
// of the optimized mean over the reference mean is stored per Cell.
//
// An operation that cannot apply to the row's shapes (ADD/SUB on unequal
// shapes, MATMUL with A.Cols != B.Rows) leaves its cell absent. Errors
// raised by an implementation abort the run and are returned unchanged.
//
// UniformSweep and RandomSweep produce the two request lists used by the
// densebench command.
package compare
