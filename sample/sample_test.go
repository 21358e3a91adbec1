// SPDX-License-Identifier: MIT

package sample_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densebench/matrix"
	"github.com/katalvlaran/densebench/matrix/optimized"
	"github.com/katalvlaran/densebench/matrix/reference"
	"github.com/katalvlaran/densebench/sample"
)

func TestRandomShapeAndRange(t *testing.T) {
	m, err := sample.Random(reference.Impl, 7, 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{Rows: 7, Cols: 5}, m.Shape())

	vals, err := matrix.ToNested(m)
	require.NoError(t, err)
	for _, row := range vals {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0.0)
			require.Less(t, v, 1.0)
		}
	}
}

func TestRandomReproducibleBySeed(t *testing.T) {
	a, err := sample.NewGenerator(reference.Impl, 42).Random(4, 6)
	require.NoError(t, err)
	b, err := sample.NewGenerator(optimized.Impl, 42).Random(4, 6)
	require.NoError(t, err)

	eq, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.True(t, eq, "same seed must yield identical values across implementations")

	c, err := sample.NewGenerator(reference.Impl, 43).Random(4, 6)
	require.NoError(t, err)
	eq, err = matrix.Equal(a, c)
	require.NoError(t, err)
	require.False(t, eq)
}

func TestRandomRowMajorDrawOrder(t *testing.T) {
	m, err := sample.Random(reference.Impl, 2, 3, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, rng.Float64(), v)
		}
	}
}

func TestRandomErrors(t *testing.T) {
	_, err := sample.Random(reference.Impl, 2, 2, nil)
	require.ErrorIs(t, err, sample.ErrNilSource)

	_, err = sample.Random(matrix.Impl{}, 2, 2, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, sample.ErrIncompleteImpl)

	_, err = sample.Random(reference.Impl, -1, 2, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = sample.Random(reference.Impl, 0, 2, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, matrix.ErrEmptyInput)
}

func TestSharedSourceAdvances(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	gr := sample.NewGeneratorFrom(reference.Impl, rng)
	gopt := sample.NewGeneratorFrom(optimized.Impl, rng)

	a, err := gr.Random(3, 3)
	require.NoError(t, err)
	b, err := gopt.Random(3, 3)
	require.NoError(t, err)

	eq, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.False(t, eq, "a shared source must not replay draws")
	require.Equal(t, optimized.Name, gopt.Impl().Name)
}
