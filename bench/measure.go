// SPDX-License-Identifier: MIT

package bench

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Sample is the reduced timing of one operation. Times are nanoseconds,
// Variance is ns².
type Sample struct {
	Name     string
	N        int     // measured iterations
	Mean     float64 // arithmetic mean, ns
	Variance float64 // sample variance (n−1), 0 when N ≤ 1
	StdDev   float64 // sqrt(Variance), 0 when N ≤ 1
	Min      float64 // fastest call, ns
	Max      float64 // slowest call, ns

	// Durations holds the raw timings when WithDurations is set.
	Durations []time.Duration
}

// Measure runs op warmup times (discarded) and then iterations times, each
// call timed individually, and returns the reduced Sample.
//
// Implementation:
//   - Stage 1: validate op, warmup >= 0, iterations >= 1 before any call.
//   - Stage 2: warm-up loop; an error aborts and is returned as is.
//   - Stage 3: measured loop; t0 := clock.Now(); op(); d := clock.Now().Sub(t0).
//   - Stage 4: Stats over the recorded durations.
//
// Behavior highlights:
//   - op runs exactly warmup+iterations times on success.
//   - Errors from op propagate unwrapped and unretried.
//
// Complexity:
//   - O(iterations) memory for the durations.
func Measure(name string, op func() error, warmup, iterations int, opts ...Option) (Sample, error) {
	if op == nil {
		return Sample{}, ErrNilOperation
	}
	if warmup < 0 {
		return Sample{}, ErrInvalidWarmup
	}
	if iterations < 1 {
		return Sample{}, ErrInvalidIterations
	}
	o := gatherOptions(opts...)

	for i := 0; i < warmup; i++ {
		if err := op(); err != nil {
			return Sample{}, err
		}
	}

	durations := make([]time.Duration, iterations)
	var t0 time.Time
	for i := 0; i < iterations; i++ {
		t0 = o.clock.Now()
		if err := op(); err != nil {
			return Sample{}, err
		}
		durations[i] = o.clock.Now().Sub(t0)
	}

	s := Stats(durations)
	s.Name = name
	if o.keepDurations {
		s.Durations = durations
	}

	return s, nil
}

// Stats reduces durations to mean, sample variance and standard deviation.
// Variance and StdDev are 0 for fewer than two durations; an empty input
// yields the zero Sample. Name is left empty.
func Stats(durations []time.Duration) Sample {
	s := Sample{N: len(durations)}
	if len(durations) == 0 {
		return s
	}

	xs := make([]float64, len(durations))
	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	for i, d := range durations {
		xs[i] = float64(d.Nanoseconds())
		s.Min = math.Min(s.Min, xs[i])
		s.Max = math.Max(s.Max, xs[i])
	}

	if len(xs) == 1 {
		s.Mean = xs[0]

		return s
	}
	s.Mean, s.Variance = stat.MeanVariance(xs, nil)
	s.StdDev = math.Sqrt(s.Variance)

	return s
}

// SpeedupPct returns (ref − opt) / ref × 100: positive when opt is faster.
// A zero reference mean yields 0 rather than ±Inf.
func SpeedupPct(ref, opt float64) float64 {
	if ref == 0 {
		return 0
	}

	return (ref - opt) / ref * 100
}
