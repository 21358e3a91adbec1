// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/densebench/compare"
)

// ANSI styles of the speedup badge.
const (
	ansiDarkGreen = "\033[42;97m"
	ansiGreen     = "\033[102;30m"
	ansiYellow    = "\033[103;30m"
	ansiOrange    = "\033[48;5;214m"
	ansiRed       = "\033[101;97m"
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
)

// SpeedupColor maps a speedup percentage to its band:
// >= 80 dark green, >= 60 green, >= 40 yellow, >= 20 orange, else red.
func SpeedupColor(pct float64) string {
	switch {
	case pct >= 80:
		return ansiDarkGreen
	case pct >= 60:
		return ansiGreen
	case pct >= 40:
		return ansiYellow
	case pct >= 20:
		return ansiOrange
	default:
		return ansiRed
	}
}

// Arrow returns "↑" for a speedup, "↓" for a slowdown and "-" otherwise.
func Arrow(pct float64) string {
	switch {
	case pct > 0:
		return "↑"
	case pct < 0:
		return "↓"
	default:
		return "-"
	}
}

// TableOptions controls RenderTable.
type TableOptions struct {
	// Color wraps each speedup badge in ANSI escape sequences.
	Color bool
}

// gridStyle is an ASCII grid with a rule under the header and between rows.
func gridStyle() table.Style {
	style := table.StyleDefault
	style.Name = "densebench"
	style.Format.Header = text.FormatDefault
	style.Options.SeparateRows = true

	return style
}

// badgeCell renders "<mean> (<arrow><|pct|>%)", styling the badge when color
// is set. Column widths ignore the escape sequences.
func badgeCell(mean, pct float64, color bool) string {
	badge := fmt.Sprintf("%s%.1f%%", Arrow(pct), math.Abs(pct))
	head := fmt.Sprintf("%10.0f (", mean)
	if !color {
		return head + badge + ")"
	}
	style := ansiReset
	switch {
	case pct > 0:
		style = SpeedupColor(pct)
	case pct < 0:
		style = ansiRed
	}

	return head + style + ansiBold + badge + ansiReset + ")"
}

// RenderTable writes records as a grid table: Size, then a reference and an
// optimized column per operation. Unmeasured cells print "-".
func RenderTable(w io.Writer, records []Record, opts TableOptions) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	tw := table.NewWriter()
	tw.SetStyle(gridStyle())

	header := table.Row{SizeColumn}
	for _, op := range compare.AllOps {
		header = append(header, "Ref "+string(op), "Opt "+string(op))
	}
	tw.AppendHeader(header)

	for _, r := range records {
		row := table.Row{r.Size}
		for _, op := range compare.AllOps {
			ref, okRef := r.Value(op, SuffixRef)
			opt, okOpt := r.Value(op, SuffixOpt)
			if !okRef || !okOpt {
				row = append(row, "-", "-")
				continue
			}
			pct, _ := r.Value(op, SuffixSpeedup)
			row = append(row, fmt.Sprintf("%10.0f", ref), badgeCell(opt, pct, opts.Color))
		}
		tw.AppendRow(row)
	}

	_, err := io.WriteString(w, tw.Render()+"\n")

	return err
}
