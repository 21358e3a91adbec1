// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrNilOperation indicates Measure was called without an operation.
	ErrNilOperation = errors.New("bench: nil operation")

	// ErrInvalidWarmup indicates a negative warm-up count.
	ErrInvalidWarmup = errors.New("bench: warmup must be >= 0")

	// ErrInvalidIterations indicates fewer than one measured iteration.
	ErrInvalidIterations = errors.New("bench: iterations must be >= 1")
)
