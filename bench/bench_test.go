// SPDX-License-Identifier: MIT

package bench_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densebench/bench"
)

// fakeClock only moves when an operation advances it.
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// scripted returns an op that advances clk by steps[i] on its i-th call
// and counts its calls. Calls past the script advance by 1ns.
func scripted(clk *fakeClock, steps []time.Duration, calls *int) func() error {
	return func() error {
		d := time.Nanosecond
		if *calls < len(steps) {
			d = steps[*calls]
		}
		*calls++
		clk.advance(d)

		return nil
	}
}

func TestMeasureExactStatistics(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	var calls int
	// two warm-up calls (ignored) then 2, 4, 4, 4, 5, 5, 7, 9 ns
	steps := []time.Duration{100, 100, 2, 4, 4, 4, 5, 5, 7, 9}

	s, err := bench.Measure("ADD", scripted(clk, steps, &calls), 2, 8, bench.WithClock(clk))
	require.NoError(t, err)
	require.Equal(t, 10, calls)
	require.Equal(t, "ADD", s.Name)
	require.Equal(t, 8, s.N)
	require.InDelta(t, 5.0, s.Mean, 1e-12)
	require.InDelta(t, 32.0/7.0, s.Variance, 1e-12)
	require.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev, 1e-12)
	require.Equal(t, 2.0, s.Min)
	require.Equal(t, 9.0, s.Max)
	require.Nil(t, s.Durations)
}

func TestMeasureSingleIterationHasZeroVariance(t *testing.T) {
	clk := &fakeClock{}
	var calls int
	s, err := bench.Measure("one", scripted(clk, []time.Duration{42}, &calls), 0, 1, bench.WithClock(clk))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, 42.0, s.Mean)
	require.Zero(t, s.Variance)
	require.Zero(t, s.StdDev)
}

func TestMeasureKeepsDurations(t *testing.T) {
	clk := &fakeClock{}
	var calls int
	s, err := bench.Measure("k", scripted(clk, []time.Duration{3, 1, 2}, &calls), 0, 3,
		bench.WithClock(clk), bench.WithDurations())
	require.NoError(t, err)
	require.Equal(t, []time.Duration{3, 1, 2}, s.Durations)
}

func TestMeasureRejectsBadConfigBeforeRunning(t *testing.T) {
	var calls int
	op := func() error { calls++; return nil }

	_, err := bench.Measure("x", op, -1, 8)
	require.ErrorIs(t, err, bench.ErrInvalidWarmup)
	_, err = bench.Measure("x", op, 2, 0)
	require.ErrorIs(t, err, bench.ErrInvalidIterations)
	_, err = bench.Measure("x", nil, 2, 8)
	require.ErrorIs(t, err, bench.ErrNilOperation)
	require.Zero(t, calls)
}

func TestMeasurePropagatesErrorVerbatim(t *testing.T) {
	boom := errors.New("boom")

	t.Run("warmup", func(t *testing.T) {
		var calls int
		_, err := bench.Measure("x", func() error { calls++; return boom }, 2, 8)
		require.Same(t, boom, err)
		require.Equal(t, 1, calls)
	})

	t.Run("measured", func(t *testing.T) {
		var calls int
		op := func() error {
			calls++
			if calls == 4 {
				return boom
			}
			return nil
		}
		_, err := bench.Measure("x", op, 2, 8)
		require.Same(t, boom, err)
		require.Equal(t, 4, calls)
	})
}

func TestMeasureSystemClock(t *testing.T) {
	s, err := bench.Measure("sleep", func() error { time.Sleep(time.Millisecond); return nil }, 0, 2)
	require.NoError(t, err)
	require.GreaterOrEqual(t, s.Mean, float64(time.Millisecond))
}

func TestStats(t *testing.T) {
	require.Equal(t, bench.Sample{}, bench.Stats(nil))

	s := bench.Stats([]time.Duration{10, 20, 30})
	require.Equal(t, 3, s.N)
	require.InDelta(t, 20.0, s.Mean, 1e-12)
	require.InDelta(t, 100.0, s.Variance, 1e-12)
	require.InDelta(t, 10.0, s.StdDev, 1e-12)
}

func TestSpeedupPct(t *testing.T) {
	require.InDelta(t, 50.0, bench.SpeedupPct(200, 100), 1e-12)
	require.InDelta(t, -100.0, bench.SpeedupPct(100, 200), 1e-12)
	require.Zero(t, bench.SpeedupPct(100, 100))
	require.Zero(t, bench.SpeedupPct(0, 5))
}

func TestWithClockPanicsOnNil(t *testing.T) {
	require.PanicsWithValue(t, "bench: WithClock: clock must be non-nil", func() { bench.WithClock(nil) })
}

func ExampleSpeedupPct() {
	fmt.Printf("%.1f%%\n", bench.SpeedupPct(1000, 250))
	// Output: 75.0%
}
