// SPDX-License-Identifier: MIT

// Command denseplot renders a densebench CSV file as a chart.
//
// Usage:
//
//	denseplot [-in benchmark_results.csv] [-out benchmark_results.png] [-dark]
//
// The output format follows the -out extension: .png and .svg produce a
// static figure, .html an interactive page.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/densebench/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("denseplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "benchmark_results.csv", "CSV written by densebench")
	out := fs.String("out", "benchmark_results.png", "output file (.png, .svg or .html)")
	dark := fs.Bool("dark", false, "use the dark theme")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	format, err := report.FormatFromPath(*out)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if err := plot(*in, *out, format, *dark); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "Saved %s\n", *out)

	return 0
}

func plot(in, out string, format report.Format, dark bool) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	records, err := report.ReadCSV(src)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	dst, err := os.Create(out)
	if err != nil {
		return err
	}

	switch format {
	case report.FormatHTML:
		var opts []report.HTMLOption
		if dark {
			opts = append(opts, report.WithDarkTheme())
		}
		err = report.RenderHTML(dst, records, opts...)
	default:
		err = report.RenderChart(dst, records, report.ChartOptions{Format: format, Dark: dark})
	}
	if cerr := dst.Close(); err == nil {
		err = cerr
	}

	return err
}
