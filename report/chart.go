// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/densebench/compare"
)

// Format names an output format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))); f {
	case FormatPNG, FormatSVG, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Default chart canvas size.
const (
	DefaultChartWidth  = 15 * vg.Inch
	DefaultChartHeight = 5 * vg.Inch
)

// ChartOptions controls RenderChart. Zero sizes fall back to the defaults.
type ChartOptions struct {
	Format Format // FormatPNG or FormatSVG
	Dark   bool
	Width  vg.Length
	Height vg.Length
}

// palette colors one theme.
type palette struct {
	background, text, grid, ref, opt color.Color
}

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

var (
	lightPalette = palette{
		background: hex(0xeff1f5), text: hex(0x4c4f69), grid: hex(0xacb0be),
		ref: hex(0xd20f39), opt: hex(0x1e66f5),
	}
	darkPalette = palette{
		background: hex(0x1e1e2e), text: hex(0xcdd6f4), grid: hex(0x585b70),
		ref: hex(0xf38ba8), opt: hex(0x89b4fa),
	}
)

// log10ns maps a duration in ns to the bar height; absent or sub-ns values
// are drawn as empty bars.
func log10ns(v float64, ok bool) float64 {
	if !ok || v <= 1 {
		return 0
	}

	return math.Log10(v)
}

// powerTicks labels integer positions of a log10 axis as 10^k.
var powerTicks = plot.TickerFunc(func(lo, hi float64) []plot.Tick {
	var ticks []plot.Tick
	for k := math.Floor(lo); k <= math.Ceil(hi); k++ {
		ticks = append(ticks, plot.Tick{Value: k, Label: fmt.Sprintf("1e%d", int(k))})
	}

	return ticks
})

// RenderChart draws one grouped bar subplot per operation (reference vs
// optimized mean time, log10 axis) with records ordered by ascending row
// count of operand A, and encodes the figure as PNG or SVG.
func RenderChart(w io.Writer, records []Record, opts ChartOptions) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	if opts.Format != FormatPNG && opts.Format != FormatSVG {
		return fmt.Errorf("%w: chart %q", ErrUnknownFormat, opts.Format)
	}
	if opts.Width <= 0 {
		opts.Width = DefaultChartWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultChartHeight
	}
	pal := lightPalette
	if opts.Dark {
		pal = darkPalette
	}

	sorted := SortByRows(records)
	row := make([]*plot.Plot, 0, len(compare.AllOps))
	for _, op := range compare.AllOps {
		p, err := opPlot(op, sorted, pal)
		if err != nil {
			return err
		}
		row = append(row, p)
	}

	var (
		canvas vg.CanvasWriterTo
		sized  vg.CanvasSizer
	)
	switch opts.Format {
	case FormatPNG:
		img := vgimg.New(opts.Width, opts.Height)
		canvas, sized = vgimg.PngCanvas{Canvas: img}, img
	case FormatSVG:
		svg := vgsvg.New(opts.Width, opts.Height)
		canvas, sized = svg, svg
	}

	dc := draw.New(sized)
	dc.SetColor(pal.background)
	dc.Fill(dc.Rectangle.Path())

	tiles := draw.Tiles{
		Rows: 1, Cols: len(row),
		PadTop: vg.Points(36), PadBottom: vg.Points(8),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
		PadX: vg.Points(24),
	}
	cells := plot.Align([][]*plot.Plot{row}, tiles, dc)
	for i, p := range row {
		p.Draw(cells[0][i])
	}

	title := row[0].Title.TextStyle
	title.Font.Size = vg.Points(16)
	title.Color = pal.text
	title.XAlign = draw.XCenter
	title.YAlign = draw.YTop
	top := vg.Point{X: dc.Center().X, Y: dc.Max.Y - vg.Points(6)}
	dc.FillText(title, top, "Reference vs Optimized Execution Time (lower is better)")

	_, err := canvas.WriteTo(w)

	return err
}

// opPlot builds the subplot of one operation.
func opPlot(op compare.Op, records []Record, pal palette) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = string(op)
	p.X.Label.Text = "Matrix Sizes (N x M)"
	p.Y.Label.Text = "Time (ns)"
	p.Y.Min = 0
	p.Y.Tick.Marker = powerTicks

	p.BackgroundColor = pal.background
	p.Title.TextStyle.Color = pal.text
	p.Legend.TextStyle.Color = pal.text
	p.Legend.Top = true
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Color = pal.text
		ax.Label.TextStyle.Color = pal.text
		ax.Tick.Color = pal.text
		ax.Tick.Label.Color = pal.text
	}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = pal.grid
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(grid)

	refVals := make(plotter.Values, len(records))
	optVals := make(plotter.Values, len(records))
	labels := make([]string, len(records))
	for i, r := range records {
		refVals[i] = log10ns(r.Value(op, SuffixRef))
		optVals[i] = log10ns(r.Value(op, SuffixOpt))
		labels[i] = r.Size
	}

	width := vg.Points(10)
	ref, err := plotter.NewBarChart(refVals, width)
	if err != nil {
		return nil, err
	}
	ref.Color = pal.ref
	ref.LineStyle.Width = 0
	ref.Offset = -width / 2

	opt, err := plotter.NewBarChart(optVals, width)
	if err != nil {
		return nil, err
	}
	opt.Color = pal.opt
	opt.LineStyle.Width = 0
	opt.Offset = width / 2

	p.Add(ref, opt)
	p.Legend.Add("Reference", ref)
	p.Legend.Add("Optimized", opt)
	p.NominalX(labels...)

	return p, nil
}
