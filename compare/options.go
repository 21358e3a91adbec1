// SPDX-License-Identifier: MIT

package compare

import (
	"log/slog"

	"github.com/katalvlaran/densebench/bench"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultIterations is the number of measured calls per operation.
	DefaultIterations = bench.DefaultIterations

	// DefaultWarmup is the number of discarded calls per operation.
	DefaultWarmup = bench.DefaultWarmup

	// DefaultSeed seeds the operand generator.
	DefaultSeed int64 = 0
)

// Option mutates internal options. Values are checked by Compare, which
// returns ErrInvalidConfig instead of panicking.
type Option func(*Options)

// Options stores the effective configuration of one Compare run.
type Options struct {
	iterations int
	warmup     int
	seed       int64
	clock      bench.Clock
	logger     *slog.Logger
	progress   func(Progress)
}

func defaultOptions() Options {
	return Options{
		iterations: DefaultIterations,
		warmup:     DefaultWarmup,
		seed:       DefaultSeed,
		clock:      bench.SystemClock{},
		logger:     slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) validate() error {
	if o.iterations < 1 {
		return configErrorf("iterations %d < 1", o.iterations)
	}
	if o.warmup < 0 {
		return configErrorf("warmup %d < 0", o.warmup)
	}
	if o.clock == nil {
		return configErrorf("nil clock")
	}

	return nil
}

// WithIterations sets the measured calls per operation (>= 1).
func WithIterations(n int) Option {
	return func(o *Options) { o.iterations = n }
}

// WithWarmup sets the discarded calls per operation (>= 0).
func WithWarmup(n int) Option {
	return func(o *Options) { o.warmup = n }
}

// WithSeed seeds the operand generator.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithClock substitutes the timing source.
func WithClock(c bench.Clock) Option {
	return func(o *Options) { o.clock = c }
}

// WithLogger receives one debug record per measurement and an info record
// per completed row. A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// WithProgress installs a callback invoked after every completed operation.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) { o.progress = fn }
}
