// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/densebench/compare"
)

// Field suffixes, in column order within one operation.
const (
	SuffixRef     = "_Ref_ns"
	SuffixOpt     = "_Opt_ns"
	SuffixSpeedup = "_Speedup_%"
)

// Suffixes lists the per-operation fields in column order.
var Suffixes = []string{SuffixRef, SuffixOpt, SuffixSpeedup}

// SizeColumn is the header of the operand-pair column.
const SizeColumn = "Size"

// Record is one CSV line: the operand-pair label and its measured fields.
type Record struct {
	Size   string
	Fields map[string]float64
}

// FieldName joins an operation and a suffix ("MATMUL" + "_Opt_ns").
func FieldName(op compare.Op, suffix string) string {
	return string(op) + suffix
}

// Value returns the field for op and suffix and whether it is present.
func (r Record) Value(op compare.Op, suffix string) (float64, bool) {
	v, ok := r.Fields[FieldName(op, suffix)]

	return v, ok
}

// Has reports whether op was measured for this record.
func (r Record) Has(op compare.Op) bool {
	_, okRef := r.Value(op, SuffixRef)
	_, okOpt := r.Value(op, SuffixOpt)

	return okRef && okOpt
}

// RowCount parses the row count of operand A from a "(r x c) on ..." label.
// Labels that do not parse yield 0.
func (r Record) RowCount() int {
	var n int
	if _, err := fmt.Sscanf(r.Size, "(%d x", &n); err != nil {
		return 0
	}

	return n
}

// FromRows flattens comparison rows; absent cells produce no fields.
func FromRows(rows []compare.Row) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{Size: row.Label(), Fields: make(map[string]float64, len(compare.AllOps)*len(Suffixes))}
		for _, op := range compare.AllOps {
			cell, ok := row.Cell(op)
			if !ok {
				continue
			}
			rec.Fields[FieldName(op, SuffixRef)] = cell.Ref.Mean
			rec.Fields[FieldName(op, SuffixOpt)] = cell.Opt.Mean
			rec.Fields[FieldName(op, SuffixSpeedup)] = cell.Speedup
		}
		out = append(out, rec)
	}

	return out
}

// SortByRows returns a copy ordered by ascending RowCount; ties keep their
// original order.
func SortByRows(records []Record) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RowCount() < out[j].RowCount() })

	return out
}

// columns returns the union of fields present in records, in the fixed
// operation × suffix order.
func columns(records []Record) []string {
	var cols []string
	for _, op := range compare.AllOps {
		for _, suf := range Suffixes {
			name := FieldName(op, suf)
			for _, r := range records {
				if _, ok := r.Fields[name]; ok {
					cols = append(cols, name)
					break
				}
			}
		}
	}

	return cols
}
