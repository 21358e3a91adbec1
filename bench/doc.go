// SPDX-License-Identifier: MIT

// Package bench times a zero-argument operation and reduces the wall-clock
// durations to mean, sample variance and standard deviation.
//
// Methodology:
//
//  1. Run the operation warmup times; results and timings are discarded so
//     caches, allocators and lazy initialization settle.
//  2. Run it iterations times, timing each single call with a monotonic
//     Clock (time.Now carries a monotonic reading; Sub uses it).
//  3. Reduce: arithmetic mean, sample variance with the n−1 denominator
//     (0 when n ≤ 1) and its square root.
//
// The first error returned by the operation aborts the measurement and is
// returned unchanged. The clock is injected (WithClock) so tests can
// substitute a deterministic fake.
//
//	s, err := bench.Measure("ADD", func() error { _, err := a.Add(b); return err }, 2, 8)
package bench
