// SPDX-License-Identifier: MIT

package sample

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/densebench/matrix"
)

var (
	// ErrNilSource indicates that no random source was supplied.
	ErrNilSource = errors.New("sample: nil random source")

	// ErrIncompleteImpl indicates an Impl without constructors.
	ErrIncompleteImpl = errors.New("sample: incomplete matrix implementation")
)

// Random builds a rows×cols matrix through impl.FromNested from a freshly
// generated grid of rng.Float64() draws, filled in row-major order.
//
// Errors:
//   - ErrNilSource, ErrIncompleteImpl.
//   - Whatever impl.FromNested returns (e.g. matrix.ErrEmptyInput for rows == 0).
//
// Complexity: O(rows*cols) draws and two O(rows*cols) allocations.
func Random(impl matrix.Impl, rows, cols int, rng *rand.Rand) (matrix.Matrix, error) {
	if rng == nil {
		return nil, ErrNilSource
	}
	if !impl.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrIncompleteImpl, impl.Name)
	}
	if err := matrix.ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	grid := make([][]float64, rows)
	for i := range grid {
		row := make([]float64, cols)
		for j := range row {
			row[j] = rng.Float64()
		}
		grid[i] = row
	}

	return impl.FromNested(grid)
}

// Generator binds an implementation to a seeded random source.
// A Generator is not safe for concurrent use (neither is *rand.Rand).
type Generator struct {
	impl matrix.Impl
	rng  *rand.Rand
}

// NewGenerator returns a Generator whose draws are fully determined by seed.
func NewGenerator(impl matrix.Impl, seed int64) *Generator {
	return &Generator{impl: impl, rng: rand.New(rand.NewSource(seed))}
}

// NewGeneratorFrom returns a Generator sharing rng with the caller, so that
// several implementations can draw from one reproducible sequence.
func NewGeneratorFrom(impl matrix.Impl, rng *rand.Rand) *Generator {
	return &Generator{impl: impl, rng: rng}
}

// Impl returns the implementation this generator builds.
func (g *Generator) Impl() matrix.Impl { return g.impl }

// Random draws a rows×cols matrix; see the package-level Random.
func (g *Generator) Random(rows, cols int) (matrix.Matrix, error) {
	return Random(g.impl, rows, cols, g.rng)
}

// RandomShape is Random for a matrix.Shape.
func (g *Generator) RandomShape(s matrix.Shape) (matrix.Matrix, error) {
	return g.Random(s.Rows, s.Cols)
}
