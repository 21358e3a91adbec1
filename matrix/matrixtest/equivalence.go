// SPDX-License-Identifier: MIT

package matrixtest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densebench/matrix"
)

// Case is one cross-implementation check: A (and B of the same shape) for
// Add/Sub, and A × C for MatMul, so C must be A.Cols × any.
type Case struct {
	A matrix.Shape
	C matrix.Shape
}

// DefaultCases mixes tiny, odd, square and tile-crossing shapes.
var DefaultCases = []Case{
	{A: matrix.Shape{Rows: 1, Cols: 1}, C: matrix.Shape{Rows: 1, Cols: 1}},
	{A: matrix.Shape{Rows: 2, Cols: 3}, C: matrix.Shape{Rows: 3, Cols: 4}},
	{A: matrix.Shape{Rows: 17, Cols: 31}, C: matrix.Shape{Rows: 31, Cols: 13}},
	{A: matrix.Shape{Rows: 64, Cols: 64}, C: matrix.Shape{Rows: 64, Cols: 64}},
	{A: matrix.Shape{Rows: 5, Cols: 300}, C: matrix.Shape{Rows: 300, Cols: 129}},
	{A: matrix.Shape{Rows: 3, Cols: 0}, C: matrix.Shape{Rows: 0, Cols: 2}},
}

// Equivalent feeds identical values to want and got and requires Add, Sub
// and MatMul results to agree within RelTol/AbsTol, and error conditions
// to agree on mismatched shapes.
func Equivalent(t *testing.T, want, got matrix.Impl, seed int64, cases []Case) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	for _, tc := range cases {
		a := grid(rng, tc.A)
		b := grid(rng, tc.A)
		c := grid(rng, tc.C)

		wa, wb, wc := build(t, want, a, tc.A), build(t, want, b, tc.A), build(t, want, c, tc.C)
		ga, gb, gc := build(t, got, a, tc.A), build(t, got, b, tc.A), build(t, got, c, tc.C)

		check := func(name string, w, g matrix.Matrix, werr, gerr error) {
			require.NoError(t, werr, "%s %v: %s", want.Name, tc, name)
			require.NoError(t, gerr, "%s %v: %s", got.Name, tc, name)
			require.Equal(t, w.Shape(), g.Shape(), "%v: %s shape", tc, name)
			ok, err := matrix.AllClose(g, w, RelTol, AbsTol)
			require.NoError(t, err)
			require.True(t, ok, "%v: %s diverged between %s and %s", tc, name, want.Name, got.Name)
		}

		w, werr := wa.Add(wb)
		g, gerr := ga.Add(gb)
		check("Add", w, g, werr, gerr)

		w, werr = wa.Sub(wb)
		g, gerr = ga.Sub(gb)
		check("Sub", w, g, werr, gerr)

		w, werr = wa.MatMul(wc)
		g, gerr = ga.MatMul(gc)
		check("MatMul", w, g, werr, gerr)
	}

	// Error parity on incompatible shapes.
	x, err := want.New(2, 3)
	require.NoError(t, err)
	y, err := got.New(2, 3)
	require.NoError(t, err)
	xs, err := want.New(4, 2)
	require.NoError(t, err)
	ys, err := got.New(4, 2)
	require.NoError(t, err)

	_, werr := x.MatMul(xs)
	_, gerr := y.MatMul(ys)
	require.ErrorIs(t, werr, matrix.ErrShapeMismatch)
	require.ErrorIs(t, gerr, matrix.ErrShapeMismatch)

	_, werr = x.Add(xs)
	_, gerr = y.Add(ys)
	require.ErrorIs(t, werr, matrix.ErrShapeMismatch)
	require.ErrorIs(t, gerr, matrix.ErrShapeMismatch)
}

func grid(rng *rand.Rand, s matrix.Shape) [][]float64 {
	out := make([][]float64, s.Rows)
	for i := range out {
		out[i] = make([]float64, s.Cols)
		for j := range out[i] {
			out[i][j] = rng.Float64()
		}
	}

	return out
}

// build constructs from values, falling back to New for shapes that
// FromNested cannot express (zero rows).
func build(t *testing.T, impl matrix.Impl, vals [][]float64, s matrix.Shape) matrix.Matrix {
	t.Helper()
	if s.Rows == 0 {
		m, err := impl.New(s.Rows, s.Cols)
		require.NoError(t, err)

		return m
	}
	m, err := impl.FromNested(vals)
	require.NoError(t, err)

	return m
}
