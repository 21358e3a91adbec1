// SPDX-License-Identifier: MIT

// Package report turns comparison rows into the artifacts a benchmark run
// leaves behind: a CSV file, a terminal grid table, a static chart (PNG or
// SVG via gonum/plot) and an interactive HTML page (go-echarts).
//
// Every renderer consumes []Record, the flat form shared with the CSV file,
// so charts can be produced either straight from compare.Compare (FromRows)
// or later from a saved file (ReadCSV).
//
// Field names follow "<OP><suffix>", for example ADD_Ref_ns, ADD_Opt_ns and
// ADD_Speedup_%. A field missing from a Record means the operation was not
// measured for that operand pair.
package report
