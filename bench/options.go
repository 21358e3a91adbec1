// SPDX-License-Identifier: MIT

// Package bench: functional configuration for Measure.
//
// Design goals:
//   - Deterministic behavior: no global state; the clock is explicit.
//   - Safe by construction: setters panic only on nonsensical values
//     (programmer error such as a nil clock).

package bench

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWarmup is the number of discarded warm-up calls.
	DefaultWarmup = 2

	// DefaultIterations is the number of measured calls.
	DefaultIterations = 8
)

const panicNilClock = "bench: WithClock: clock must be non-nil"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	clock         Clock
	keepDurations bool
}

func defaultOptions() Options {
	return Options{clock: SystemClock{}}
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithClock substitutes the time source (tests use a fake clock).
func WithClock(c Clock) Option {
	if c == nil {
		panic(panicNilClock)
	}

	return func(o *Options) { o.clock = c }
}

// WithDurations keeps the raw per-iteration durations in Sample.Durations.
func WithDurations() Option {
	return func(o *Options) { o.keepDurations = true }
}
