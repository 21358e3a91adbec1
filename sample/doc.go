// SPDX-License-Identifier: MIT

// Package sample generates random operand matrices for benchmarks.
//
// Entries are independent draws from U[0,1). The random source is always
// supplied by the caller (or built from an explicit seed), never taken from
// global state, so a fixed seed reproduces a run exactly.
//
//	g := sample.NewGenerator(reference.Impl, 0)
//	a, _ := g.Random(128, 64)
package sample
