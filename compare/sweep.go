// SPDX-License-Identifier: MIT

package compare

import (
	"math/rand"

	"github.com/katalvlaran/densebench/matrix"
)

// DefaultUniformSizes are the square sizes of the uniform sweep.
var DefaultUniformSizes = []int{16, 32, 64, 128, 256}

// Random sweep defaults.
const (
	DefaultSweepCount  = 5
	DefaultSweepMinDim = 10
	DefaultSweepMaxDim = 300
)

// SweepConfig bounds a random sweep: Count iterations with every dimension
// drawn uniformly from [MinDim, MaxDim].
type SweepConfig struct {
	Count  int
	MinDim int
	MaxDim int
}

// DefaultSweepConfig returns the defaults used by the densebench command.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{Count: DefaultSweepCount, MinDim: DefaultSweepMinDim, MaxDim: DefaultSweepMaxDim}
}

// Validate reports ErrInvalidSweep for unusable bounds.
func (c SweepConfig) Validate() error {
	switch {
	case c.Count < 1:
		return sweepErrorf("count %d < 1", c.Count)
	case c.MinDim < 1:
		return sweepErrorf("min dim %d < 1", c.MinDim)
	case c.MaxDim < c.MinDim:
		return sweepErrorf("max dim %d < min dim %d", c.MaxDim, c.MinDim)
	}

	return nil
}

// UniformSweep returns, for each size s, an AddSub request and a MatMul
// request on two s×s operands. Both collapse into one row in Compare.
func UniformSweep(sizes []int) []Request {
	reqs := make([]Request, 0, 2*len(sizes))
	for _, s := range sizes {
		sq := matrix.Shape{Rows: s, Cols: s}
		reqs = append(reqs,
			Request{Kind: AddSub, A: sq, B: sq},
			Request{Kind: MatMul, A: sq, B: sq},
		)
	}

	return reqs
}

// RandomSweep draws cfg.Count iterations from rng. Each iteration yields an
// AddSub request on two n×m operands followed by a MatMul request on r×k and
// k×c operands, drawing n, m, r, k, c in that order.
func RandomSweep(rng *rand.Rand, cfg SweepConfig) ([]Request, error) {
	if rng == nil {
		return nil, sweepErrorf("nil source")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	span := cfg.MaxDim - cfg.MinDim + 1
	dim := func() int { return cfg.MinDim + rng.Intn(span) }

	reqs := make([]Request, 0, 2*cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		n, m := dim(), dim()
		r, k, c := dim(), dim(), dim()
		reqs = append(reqs,
			Request{Kind: AddSub, A: matrix.Shape{Rows: n, Cols: m}, B: matrix.Shape{Rows: n, Cols: m}},
			Request{Kind: MatMul, A: matrix.Shape{Rows: r, Cols: k}, B: matrix.Shape{Rows: k, Cols: c}},
		)
	}

	return reqs, nil
}
