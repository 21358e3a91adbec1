// SPDX-License-Identifier: MIT

package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/densebench/compare"
)

// PageTitle is the HTML document title of RenderHTML.
const PageTitle = "densebench"

// HTMLOption configures RenderHTML.
type HTMLOption func(*htmlOptions)

type htmlOptions struct {
	theme string
}

// WithDarkTheme renders the page with a dark preset theme.
func WithDarkTheme() HTMLOption {
	return func(o *htmlOptions) { o.theme = types.ThemeChalk }
}

// missing is the echarts placeholder for an empty data point.
const missing = "-"

// RenderHTML writes an interactive page with one bar chart per operation,
// reference vs optimized mean time on a log axis, records ordered by
// ascending row count of operand A.
func RenderHTML(w io.Writer, records []Record, opts ...HTMLOption) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	o := htmlOptions{theme: types.ThemeWesteros}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	sorted := SortByRows(records)
	labels := make([]string, len(sorted))
	for i, r := range sorted {
		labels[i] = r.Size
	}

	page := components.NewPage()
	page.SetPageTitle(PageTitle)
	for _, op := range compare.AllOps {
		page.AddCharts(opBar(op, sorted, labels, o.theme))
	}

	return page.Render(w)
}

func opBar(op compare.Op, records []Record, labels []string, theme string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: theme, Width: "1200px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: string(op), Subtitle: "Execution time in ns (lower is better)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Matrix Sizes (N x M)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Time (ns)", Type: "log"}),
	)

	bar.SetXAxis(labels).
		AddSeries("Reference", barData(op, SuffixRef, records)).
		AddSeries("Optimized", barData(op, SuffixOpt, records))

	return bar
}

func barData(op compare.Op, suffix string, records []Record) []opts.BarData {
	out := make([]opts.BarData, len(records))
	for i, r := range records {
		if v, ok := r.Value(op, suffix); ok && v > 0 {
			out[i] = opts.BarData{Value: v}
			continue
		}
		out[i] = opts.BarData{Value: missing}
	}

	return out
}
