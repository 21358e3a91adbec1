// SPDX-License-Identifier: MIT

package matrixtest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/densebench/matrix"
)

// Tolerances used by property checks.
const (
	RelTol = matrix.DefaultRelTol
	AbsTol = matrix.DefaultAbsTol
)

// Suite groups contract tests for one matrix.Impl.
type Suite struct {
	suite.Suite
	Impl matrix.Impl
	rng  *rand.Rand
}

// Run executes the conformance suite against impl.
func Run(t *testing.T, impl matrix.Impl) {
	t.Helper()
	require.True(t, impl.Valid(), "impl %q has nil constructors", impl.Name)
	suite.Run(t, &Suite{Impl: impl})
}

func (s *Suite) SetupTest() {
	s.rng = rand.New(rand.NewSource(1337))
}

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing implementations onto their foreign-operand path.
type hide struct{ matrix.Matrix }

// Hide returns m behind an opaque wrapper.
func Hide(m matrix.Matrix) matrix.Matrix { return hide{m} }

// Random builds an r×c matrix of U[0,1) values from rng using impl.
func Random(t testing.TB, impl matrix.Impl, rng *rand.Rand, r, c int) matrix.Matrix {
	t.Helper()
	vals := make([][]float64, r)
	for i := range vals {
		vals[i] = make([]float64, c)
		for j := range vals[i] {
			vals[i][j] = rng.Float64()
		}
	}
	m, err := impl.FromNested(vals)
	require.NoError(t, err)

	return m
}

// Nested reads m back into [][]float64 or fails the test.
func Nested(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out, err := matrix.ToNested(m)
	require.NoError(t, err)

	return out
}

func (s *Suite) mustNested(vals [][]float64) matrix.Matrix {
	m, err := s.Impl.FromNested(vals)
	s.Require().NoError(err)

	return m
}

func (s *Suite) random(r, c int) matrix.Matrix {
	return Random(s.T(), s.Impl, s.rng, r, c)
}

// ---------- construction ----------

func (s *Suite) TestNewZeroFilled() {
	m, err := s.Impl.New(2, 3)
	s.Require().NoError(err)
	s.Equal(matrix.Shape{Rows: 2, Cols: 3}, m.Shape())
	s.Equal([][]float64{{0, 0, 0}, {0, 0, 0}}, Nested(s.T(), m))
}

func (s *Suite) TestNewZeroSized() {
	for _, sh := range []matrix.Shape{{0, 0}, {0, 4}, {4, 0}} {
		m, err := s.Impl.New(sh.Rows, sh.Cols)
		s.Require().NoError(err, "shape %v", sh)
		s.Equal(sh, m.Shape())
	}
}

func (s *Suite) TestNewNegativeShape() {
	_, err := s.Impl.New(-1, 3)
	s.Require().ErrorIs(err, matrix.ErrInvalidShape)
	_, err = s.Impl.New(3, -1)
	s.Require().ErrorIs(err, matrix.ErrInvalidShape)
}

func (s *Suite) TestFromNestedEmpty() {
	_, err := s.Impl.FromNested(nil)
	s.Require().ErrorIs(err, matrix.ErrEmptyInput)
	_, err = s.Impl.FromNested([][]float64{})
	s.Require().ErrorIs(err, matrix.ErrEmptyInput)
}

func (s *Suite) TestFromNestedJagged() {
	_, err := s.Impl.FromNested([][]float64{{1, 2}, {3, 4, 5}})
	s.Require().ErrorIs(err, matrix.ErrJaggedInput)
	_, err = s.Impl.FromNested([][]float64{{1}, nil})
	s.Require().ErrorIs(err, matrix.ErrJaggedInput)
}

func (s *Suite) TestFromNestedPreservesOrder() {
	vals := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := s.mustNested(vals)
	s.Equal(matrix.Shape{Rows: 2, Cols: 3}, m.Shape())
	s.Equal(vals, Nested(s.T(), m))

	// Conversion copies: later edits of the input do not leak in.
	vals[0][0] = 42
	v, err := m.At(0, 0)
	s.Require().NoError(err)
	s.Equal(1.0, v)
}

func (s *Suite) TestFromNestedZeroColumns() {
	m := s.mustNested([][]float64{{}, {}})
	s.Equal(matrix.Shape{Rows: 2, Cols: 0}, m.Shape())
}

// ---------- element access ----------

func (s *Suite) TestAtSetOutOfRange() {
	m, err := s.Impl.New(2, 2)
	s.Require().NoError(err)

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err = m.At(ij[0], ij[1])
		s.Require().ErrorIs(err, matrix.ErrIndexOutOfRange, "At%v", ij)
		err = m.Set(ij[0], ij[1], 1)
		s.Require().ErrorIs(err, matrix.ErrIndexOutOfRange, "Set%v", ij)
	}
}

func (s *Suite) TestSetGet() {
	m, err := s.Impl.New(2, 3)
	s.Require().NoError(err)
	s.Require().NoError(m.Set(1, 2, 7.89))
	v, err := m.At(1, 2)
	s.Require().NoError(err)
	s.Equal(7.89, v)
}

// ---------- arithmetic: concrete scenario ----------

func (s *Suite) TestTwoByTwoScenario() {
	a := s.mustNested([][]float64{{1, 2}, {3, 4}})
	b := s.mustNested([][]float64{{5, 6}, {7, 8}})

	sum, err := a.Add(b)
	s.Require().NoError(err)
	s.Equal([][]float64{{6, 8}, {10, 12}}, Nested(s.T(), sum))

	diff, err := a.Sub(b)
	s.Require().NoError(err)
	s.Equal([][]float64{{-4, -4}, {-4, -4}}, Nested(s.T(), diff))

	prod, err := a.MatMul(b)
	s.Require().NoError(err)
	s.Equal([][]float64{{19, 22}, {43, 50}}, Nested(s.T(), prod))
}

func (s *Suite) TestMatMulRectangular() {
	a := s.mustNested([][]float64{{1, 2, 3}, {4, 5, 6}})
	b := s.mustNested([][]float64{{7, 8}, {9, 10}, {11, 12}})

	prod, err := a.MatMul(b)
	s.Require().NoError(err)
	s.Equal(matrix.Shape{Rows: 2, Cols: 2}, prod.Shape())
	s.Equal([][]float64{{58, 64}, {139, 154}}, Nested(s.T(), prod))
}

// ---------- arithmetic: errors ----------

func (s *Suite) TestAddSubShapeMismatch() {
	a, err := s.Impl.New(2, 3)
	s.Require().NoError(err)
	b, err := s.Impl.New(3, 2)
	s.Require().NoError(err)

	_, err = a.Add(b)
	s.Require().ErrorIs(err, matrix.ErrShapeMismatch)
	_, err = a.Sub(b)
	s.Require().ErrorIs(err, matrix.ErrShapeMismatch)
}

func (s *Suite) TestMatMulShapeMismatch() {
	a, err := s.Impl.New(2, 3)
	s.Require().NoError(err)
	b, err := s.Impl.New(4, 2)
	s.Require().NoError(err)

	_, err = a.MatMul(b)
	s.Require().ErrorIs(err, matrix.ErrShapeMismatch)
	s.Contains(err.Error(), "3 != 4")
}

func (s *Suite) TestNilOperand() {
	a := s.random(2, 2)
	_, err := a.Add(nil)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)
	_, err = a.Sub(nil)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)
	_, err = a.MatMul(nil)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)
}

// ---------- arithmetic: zero-sized dimensions ----------

func (s *Suite) TestMatMulZeroInnerDimension() {
	a, err := s.Impl.New(2, 0)
	s.Require().NoError(err)
	b, err := s.Impl.New(0, 3)
	s.Require().NoError(err)

	prod, err := a.MatMul(b)
	s.Require().NoError(err)
	s.Equal(matrix.Shape{Rows: 2, Cols: 3}, prod.Shape())
	s.Equal([][]float64{{0, 0, 0}, {0, 0, 0}}, Nested(s.T(), prod))
}

func (s *Suite) TestMatMulZeroOuterDimension() {
	a, err := s.Impl.New(0, 3)
	s.Require().NoError(err)
	b := s.random(3, 2)

	prod, err := a.MatMul(b)
	s.Require().NoError(err)
	s.Equal(matrix.Shape{Rows: 0, Cols: 2}, prod.Shape())
}

// ---------- properties ----------

func (s *Suite) TestAddSubRoundTrip() {
	for _, sh := range []matrix.Shape{{1, 1}, {3, 7}, {16, 16}, {33, 5}} {
		a, b := s.random(sh.Rows, sh.Cols), s.random(sh.Rows, sh.Cols)
		sum, err := a.Add(b)
		s.Require().NoError(err)
		back, err := sum.Sub(b)
		s.Require().NoError(err)
		ok, err := matrix.AllClose(back, a, RelTol, AbsTol)
		s.Require().NoError(err)
		s.True(ok, "(A+B)-B != A for shape %v", sh)
	}
}

func (s *Suite) TestAddZeroIsIdentity() {
	a := s.random(5, 9)
	z, err := s.Impl.New(5, 9)
	s.Require().NoError(err)

	got, err := a.Add(z)
	s.Require().NoError(err)
	eq, err := matrix.Equal(got, a)
	s.Require().NoError(err)
	s.True(eq, "A+0 must equal A exactly")
}

func (s *Suite) TestMatMulAssociative() {
	a, b, c := s.random(7, 11), s.random(11, 5), s.random(5, 9)

	ab, err := a.MatMul(b)
	s.Require().NoError(err)
	left, err := ab.MatMul(c)
	s.Require().NoError(err)

	bc, err := b.MatMul(c)
	s.Require().NoError(err)
	right, err := a.MatMul(bc)
	s.Require().NoError(err)

	ok, err := matrix.AllClose(left, right, RelTol, AbsTol)
	s.Require().NoError(err)
	s.True(ok, "(AB)C != A(BC)")
}

func (s *Suite) TestOperandsNotMutated() {
	a, b := s.random(4, 4), s.random(4, 4)
	wantA, wantB := Nested(s.T(), a), Nested(s.T(), b)

	_, err := a.Add(b)
	s.Require().NoError(err)
	_, err = a.Sub(b)
	s.Require().NoError(err)
	_, err = a.MatMul(b)
	s.Require().NoError(err)

	s.Equal(wantA, Nested(s.T(), a))
	s.Equal(wantB, Nested(s.T(), b))
}

func (s *Suite) TestResultIsFreshInstance() {
	a, b := s.random(3, 3), s.random(3, 3)
	sum, err := a.Add(b)
	s.Require().NoError(err)
	s.Require().NoError(sum.Set(0, 0, -1))

	v, err := a.At(0, 0)
	s.Require().NoError(err)
	s.NotEqual(-1.0, v)
}

func (s *Suite) TestForeignOperandMatchesNative() {
	a, b := s.random(6, 4), s.random(6, 4)
	c := s.random(4, 3)

	type binop func(x, y matrix.Matrix) (matrix.Matrix, error)
	ops := map[string]binop{
		"Add": func(x, y matrix.Matrix) (matrix.Matrix, error) { return x.Add(y) },
		"Sub": func(x, y matrix.Matrix) (matrix.Matrix, error) { return x.Sub(y) },
	}
	for name, op := range ops {
		native, err := op(a, b)
		s.Require().NoError(err, name)
		foreign, err := op(a, Hide(b))
		s.Require().NoError(err, name)
		s.Equal(Nested(s.T(), native), Nested(s.T(), foreign), name)
	}

	native, err := a.MatMul(c)
	s.Require().NoError(err)
	foreign, err := a.MatMul(Hide(c))
	s.Require().NoError(err)
	ok, err := matrix.AllClose(foreign, native, RelTol, AbsTol)
	s.Require().NoError(err)
	s.True(ok, "MatMul foreign path diverged")
}
