// SPDX-License-Identifier: MIT

package bench

import "time"

// Clock is the time source used to stamp each measured call.
// Implementations must be monotonic: Now().Sub(earlier) is never negative.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, whose monotonic component gives
// nanosecond-resolution, wall-clock-jump-proof durations.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }
