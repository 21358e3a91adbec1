// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densebench/bench"
	"github.com/katalvlaran/densebench/compare"
	"github.com/katalvlaran/densebench/matrix"
	"github.com/katalvlaran/densebench/report"
)

func shape(r, c int) matrix.Shape { return matrix.Shape{Rows: r, Cols: c} }

// fixtureRows: a full square row and a matmul-only rectangular row.
func fixtureRows() []compare.Row {
	full := compare.Row{ShapeA: shape(64, 64), ShapeB: shape(64, 64), Cells: map[compare.Op]compare.Cell{
		compare.OpAdd:    {Ref: bench.Sample{Mean: 2000}, Opt: bench.Sample{Mean: 500}, Speedup: 75},
		compare.OpSub:    {Ref: bench.Sample{Mean: 1000}, Opt: bench.Sample{Mean: 1100}, Speedup: -10},
		compare.OpMatMul: {Ref: bench.Sample{Mean: 900000}, Opt: bench.Sample{Mean: 90000}, Speedup: 90},
	}}
	mul := compare.Row{ShapeA: shape(12, 30), ShapeB: shape(30, 7), Cells: map[compare.Op]compare.Cell{
		compare.OpMatMul: {Ref: bench.Sample{Mean: 4000}, Opt: bench.Sample{Mean: 4000}, Speedup: 0},
	}}

	return []compare.Row{full, mul}
}

func TestFromRows(t *testing.T) {
	recs := report.FromRows(fixtureRows())
	require.Len(t, recs, 2)
	require.Equal(t, "(64 x 64) on (64 x 64)", recs[0].Size)
	require.Len(t, recs[0].Fields, 9)
	require.Equal(t, 75.0, recs[0].Fields["ADD_Speedup_%"])

	require.Len(t, recs[1].Fields, 3)
	require.True(t, recs[1].Has(compare.OpMatMul))
	require.False(t, recs[1].Has(compare.OpAdd))
	v, ok := recs[1].Value(compare.OpMatMul, report.SuffixRef)
	require.True(t, ok)
	require.Equal(t, 4000.0, v)
}

func TestSortByRows(t *testing.T) {
	recs := []report.Record{
		{Size: "(64 x 64) on (64 x 64)"},
		{Size: "garbage"},
		{Size: "(12 x 30) on (30 x 7)"},
		{Size: "(12 x 5) on (12 x 5)"},
	}
	sorted := report.SortByRows(recs)
	require.Equal(t, []string{"garbage", "(12 x 30) on (30 x 7)", "(12 x 5) on (12 x 5)", "(64 x 64) on (64 x 64)"},
		[]string{sorted[0].Size, sorted[1].Size, sorted[2].Size, sorted[3].Size})
	require.Equal(t, "(64 x 64) on (64 x 64)", recs[0].Size, "input untouched")
	require.Equal(t, 12, recs[2].RowCount())
	require.Zero(t, recs[1].RowCount())
}

func TestCSVRoundTripKeepsAbsence(t *testing.T) {
	recs := report.FromRows(fixtureRows())
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, recs))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Size,ADD_Ref_ns,ADD_Opt_ns,ADD_Speedup_%,SUB_Ref_ns,SUB_Opt_ns,SUB_Speedup_%,"+
		"MATMUL_Ref_ns,MATMUL_Opt_ns,MATMUL_Speedup_%", lines[0])
	require.Equal(t, "(12 x 30) on (30 x 7),,,,,,,4000,4000,0", lines[2])

	back, err := report.ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, recs, back)
}

func TestCSVHeaderOnlyObservedFields(t *testing.T) {
	recs := report.FromRows(fixtureRows()[1:])
	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, recs))
	require.True(t, strings.HasPrefix(buf.String(), "Size,MATMUL_Ref_ns,MATMUL_Opt_ns,MATMUL_Speedup_%\n"))
}

func TestCSVErrors(t *testing.T) {
	require.ErrorIs(t, report.WriteCSV(&bytes.Buffer{}, nil), report.ErrNoRecords)

	_, err := report.ReadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, report.ErrNoRecords)
	_, err = report.ReadCSV(strings.NewReader("Size,ADD_Ref_ns\n"))
	require.ErrorIs(t, err, report.ErrNoRecords)
	_, err = report.ReadCSV(strings.NewReader("Shape,ADD_Ref_ns\nx,1\n"))
	require.ErrorIs(t, err, report.ErrMalformedCSV)
	_, err = report.ReadCSV(strings.NewReader("Size,ADD_Ref_ns\nx,fast\n"))
	require.ErrorIs(t, err, report.ErrMalformedCSV)
	require.Contains(t, err.Error(), "line 2 column ADD_Ref_ns")
	_, err = report.ReadCSV(strings.NewReader("Size,ADD_Ref_ns\nx,1,2\n"))
	require.ErrorIs(t, err, report.ErrMalformedCSV)
}

func TestSpeedupBands(t *testing.T) {
	require.Equal(t, report.SpeedupColor(80), report.SpeedupColor(99))
	require.NotEqual(t, report.SpeedupColor(79.9), report.SpeedupColor(80))
	require.NotEqual(t, report.SpeedupColor(59.9), report.SpeedupColor(60))
	require.NotEqual(t, report.SpeedupColor(39.9), report.SpeedupColor(40))
	require.NotEqual(t, report.SpeedupColor(19.9), report.SpeedupColor(20))
	require.Equal(t, report.SpeedupColor(0), report.SpeedupColor(-50))

	require.Equal(t, "↑", report.Arrow(0.1))
	require.Equal(t, "↓", report.Arrow(-0.1))
	require.Equal(t, "-", report.Arrow(0))
}

func TestRenderTablePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderTable(&buf, report.FromRows(fixtureRows()), report.TableOptions{}))
	out := buf.String()

	require.NotContains(t, out, "\033[")
	require.Contains(t, out, "| Size ")
	require.Contains(t, out, "Ref MATMUL")
	require.Contains(t, out, "       500 (↑75.0%)")
	require.Contains(t, out, "      1100 (↓10.0%)")
	require.Contains(t, out, "      4000 (-0.0%)")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7) // rule, header, rule, row, rule, row, rule
	require.True(t, strings.HasPrefix(lines[2], "+-"))
	for _, l := range lines {
		require.Equal(t, utf8.RuneCountInString(lines[0]), utf8.RuneCountInString(l), l)
	}

	row := strings.Split(lines[5], "|")
	require.Equal(t, "-", strings.TrimSpace(row[2]), "absent ADD")
}

func TestRenderTableColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderTable(&buf, report.FromRows(fixtureRows()), report.TableOptions{Color: true}))
	out := buf.String()
	require.Contains(t, out, report.SpeedupColor(75)+"\033[1m↑75.0%\033[0m")
	require.Contains(t, out, "\033[101;97m\033[1m↓10.0%")

	// Escape sequences take no column width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, l := range lines {
		require.Equal(t, utf8.RuneCountInString(lines[0]), utf8.RuneCountInString(text.StripEscape(l)), l)
	}

	require.ErrorIs(t, report.RenderTable(&buf, nil, report.TableOptions{}), report.ErrNoRecords)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]report.Format{
		"out.png": report.FormatPNG, "a/b.SVG": report.FormatSVG, "c.html": report.FormatHTML,
	} {
		got, err := report.FormatFromPath(path)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := report.FormatFromPath("chart.gif")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestRenderChart(t *testing.T) {
	recs := report.FromRows(fixtureRows())

	var png bytes.Buffer
	require.NoError(t, report.RenderChart(&png, recs, report.ChartOptions{Format: report.FormatPNG}))
	require.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, report.RenderChart(&svg, recs, report.ChartOptions{Format: report.FormatSVG, Dark: true}))
	require.Contains(t, svg.String(), "<svg")
	require.Contains(t, svg.String(), "MATMUL")

	require.ErrorIs(t, report.RenderChart(&svg, recs, report.ChartOptions{Format: "gif"}), report.ErrUnknownFormat)
	require.ErrorIs(t, report.RenderChart(&svg, nil, report.ChartOptions{Format: report.FormatPNG}), report.ErrNoRecords)
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.RenderHTML(&buf, report.FromRows(fixtureRows()), report.WithDarkTheme()))
	out := buf.String()
	require.Contains(t, out, "echarts")
	require.Contains(t, out, "<title>densebench</title>")
	require.Contains(t, out, `"type":"log"`)
	require.Contains(t, out, "(12 x 30) on (30 x 7)")

	require.ErrorIs(t, report.RenderHTML(&buf, nil), report.ErrNoRecords)
}
