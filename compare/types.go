// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/katalvlaran/densebench/bench"
	"github.com/katalvlaran/densebench/matrix"
)

// Kind selects the operation family a Request enables.
type Kind int

const (
	// AddSub enables ADD and SUB (operands must share a shape).
	AddSub Kind = iota
	// MatMul enables MATMUL (A.Cols must equal B.Rows).
	MatMul
)

// String returns "ADD/SUB" or "MATMUL".
func (k Kind) String() string {
	switch k {
	case AddSub:
		return "ADD/SUB"
	case MatMul:
		return "MATMUL"
	default:
		return "UNKNOWN"
	}
}

// Op is a single timed operation. Its value is the label used in tables,
// CSV columns and charts.
type Op string

const (
	OpAdd    Op = "ADD"
	OpSub    Op = "SUB"
	OpMatMul Op = "MATMUL"
)

// AllOps lists every operation in reporting order.
var AllOps = []Op{OpAdd, OpSub, OpMatMul}

// ops returns the operations enabled by k.
func (k Kind) ops() []Op {
	switch k {
	case AddSub:
		return []Op{OpAdd, OpSub}
	case MatMul:
		return []Op{OpMatMul}
	default:
		return nil
	}
}

// applies reports whether op is defined for operands of shapes a and b.
func (op Op) applies(a, b matrix.Shape) bool {
	switch op {
	case OpAdd, OpSub:
		return a == b
	case OpMatMul:
		return a.Cols == b.Rows
	default:
		return false
	}
}

// run performs op on x and y, discarding the result.
func (op Op) run(x, y matrix.Matrix) error {
	var err error
	switch op {
	case OpAdd:
		_, err = x.Add(y)
	case OpSub:
		_, err = x.Sub(y)
	case OpMatMul:
		_, err = x.MatMul(y)
	}

	return err
}

// Request asks for the operand pair (A, B) to be timed under Kind.
type Request struct {
	Kind Kind
	A, B matrix.Shape
}

// validate rejects shapes no generator can build (rows < 1, cols < 0) and
// kinds that enable no operation.
func (r Request) validate() error {
	if r.Kind.ops() == nil {
		return fmt.Errorf("unknown kind %d", int(r.Kind))
	}
	for _, s := range []matrix.Shape{r.A, r.B} {
		if s.Rows < 1 || s.Cols < 0 {
			return fmt.Errorf("shape %v: rows must be >= 1, cols >= 0", s)
		}
	}

	return nil
}

// Cell holds both timings of one operation and the relative speedup
// (positive when the optimized implementation is faster).
type Cell struct {
	Ref     bench.Sample
	Opt     bench.Sample
	Speedup float64 // percent, see bench.SpeedupPct
}

// Row is the result for one distinct operand pair. Cells has an entry only
// for operations that were enabled and applicable.
type Row struct {
	ShapeA, ShapeB matrix.Shape
	Cells          map[Op]Cell
}

// Label renders the pair as "(r x c) on (r x c)".
func (r Row) Label() string {
	return r.ShapeA.String() + " on " + r.ShapeB.String()
}

// Cell returns the cell for op and whether it is present.
func (r Row) Cell(op Op) (Cell, bool) {
	c, ok := r.Cells[op]

	return c, ok
}

// Progress is reported after every completed operation.
type Progress struct {
	Done  int    // operations finished so far
	Total int    // operations planned for the run
	Label string // Row.Label of the current pair
	Op    Op
	Cell  Cell
}
