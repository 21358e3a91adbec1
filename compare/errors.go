// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates unusable Compare options or implementations.
	ErrInvalidConfig = errors.New("compare: invalid config")

	// ErrInvalidSweep indicates an unusable RandomSweep configuration.
	ErrInvalidSweep = errors.New("compare: invalid sweep")
)

// configErrorf attaches the offending setting to ErrInvalidConfig.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// sweepErrorf attaches the offending setting to ErrInvalidSweep.
func sweepErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSweep, fmt.Sprintf(format, args...))
}
