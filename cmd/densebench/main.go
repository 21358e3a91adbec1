// SPDX-License-Identifier: MIT

// Command densebench times the reference and optimized dense matrix
// implementations side by side and reports the speedup per operation.
//
// Usage:
//
//	densebench [flags]
//
// Without -uniform it runs a random rectangular sweep; with -uniform it runs
// square sizes 16..256. Results are printed as a table and saved as CSV.
//
// Examples:
//
//	densebench
//	densebench -uniform -iterations 16
//	densebench -count 10 -min-dim 50 -max-dim 500 -chart sweep.png
//	densebench -uniform -html sweep.html -no-color
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/densebench/compare"
	"github.com/katalvlaran/densebench/matrix/optimized"
	"github.com/katalvlaran/densebench/matrix/reference"
	"github.com/katalvlaran/densebench/report"
)

// DefaultCSVPath is where results are saved unless -csv says otherwise.
const DefaultCSVPath = "benchmark_results.csv"

// config is the resolved run configuration, printed before timing starts.
type config struct {
	Configuration string `json:"configuration"`
	Iterations    int    `json:"iterations"`
	Warmup        int    `json:"warmup"`
	Seed          int64  `json:"seed"`
	Sizes         []int  `json:"sizes,omitempty"`
	Count         int    `json:"num_random_sizes,omitempty"`
	MinDim        int    `json:"min_dim,omitempty"`
	MaxDim        int    `json:"max_dim,omitempty"`

	uniform  bool
	csvPath  string
	chart    string
	html     string
	color    bool
	quiet    bool
	logLevel slog.Level
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stdout, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel}))
	if err := execute(cfg, stdout, stderr, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func parseFlags(args []string, stdout, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("densebench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	def := compare.DefaultSweepConfig()
	fs.BoolVar(&cfg.uniform, "uniform", false, "run the uniform square sweep instead of random shapes")
	sizes := fs.String("sizes", joinInts(compare.DefaultUniformSizes), "comma-separated square sizes for -uniform")
	fs.IntVar(&cfg.Count, "count", def.Count, "random sweep iterations (each adds an ADD/SUB and a MATMUL pair)")
	fs.IntVar(&cfg.MinDim, "min-dim", def.MinDim, "smallest random dimension")
	fs.IntVar(&cfg.MaxDim, "max-dim", def.MaxDim, "largest random dimension")
	fs.IntVar(&cfg.Iterations, "iterations", compare.DefaultIterations, "measured calls per operation")
	fs.IntVar(&cfg.Warmup, "warmup", compare.DefaultWarmup, "discarded calls per operation")
	fs.Int64Var(&cfg.Seed, "seed", compare.DefaultSeed, "seed for shapes and matrix values")
	fs.StringVar(&cfg.csvPath, "csv", DefaultCSVPath, "CSV output path")
	fs.StringVar(&cfg.chart, "chart", "", "optional chart output (.png or .svg)")
	fs.StringVar(&cfg.html, "html", "", "optional interactive chart output (.html)")
	noColor := fs.Bool("no-color", false, "disable ANSI colors in the table")
	fs.BoolVar(&cfg.quiet, "quiet", false, "suppress the live progress line")
	level := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: densebench [flags]\n\n")
		fmt.Fprintf(stderr, "Benchmarks the reference and optimized matrix implementations.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("densebench: unexpected arguments %q", fs.Args())
	}
	if err := cfg.logLevel.UnmarshalText([]byte(*level)); err != nil {
		return cfg, fmt.Errorf("densebench: -log-level: %w", err)
	}
	if cfg.chart != "" {
		f, err := report.FormatFromPath(cfg.chart)
		if err != nil {
			return cfg, fmt.Errorf("densebench: -chart: %w", err)
		}
		if f == report.FormatHTML {
			return cfg, fmt.Errorf("densebench: -chart: %w: use -html for .html", report.ErrUnknownFormat)
		}
	}

	if cfg.uniform {
		s, err := parseInts(*sizes)
		if err != nil {
			return cfg, fmt.Errorf("densebench: -sizes: %w", err)
		}
		cfg.Configuration = "Uniform square sweep"
		cfg.Sizes = s
		cfg.Count, cfg.MinDim, cfg.MaxDim = 0, 0, 0
	} else {
		cfg.Configuration = "Non-uniform rectangular sweep (random sizes)"
	}
	cfg.color = !*noColor && isTerminal(stdout)

	return cfg, nil
}

// requests builds the sweep; configuration errors surface before timing.
func (cfg config) requests() ([]compare.Request, error) {
	if cfg.uniform {
		return compare.UniformSweep(cfg.Sizes), nil
	}

	return compare.RandomSweep(rand.New(rand.NewSource(cfg.Seed)), compare.SweepConfig{
		Count: cfg.Count, MinDim: cfg.MinDim, MaxDim: cfg.MaxDim,
	})
}

func execute(cfg config, stdout, stderr io.Writer, logger *slog.Logger) error {
	reqs, err := cfg.requests()
	if err != nil {
		return err
	}

	js, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nBenchmark configuration :\n\n%s\n", js)

	opts := []compare.Option{
		compare.WithIterations(cfg.Iterations),
		compare.WithWarmup(cfg.Warmup),
		compare.WithSeed(cfg.Seed),
		compare.WithLogger(logger),
	}
	if !cfg.quiet {
		live := uilive.New()
		live.Out = stderr
		live.Start()
		defer live.Stop()
		opts = append(opts, compare.WithProgress(func(p compare.Progress) {
			fmt.Fprintf(live, "[%d/%d] %-28s %-6s %+.1f%%\n", p.Done, p.Total, p.Label, p.Op, p.Cell.Speedup)
		}))
	}

	rows, err := compare.Compare(reqs, reference.Impl, optimized.Impl, opts...)
	if err != nil {
		return err
	}
	records := report.FromRows(rows)

	fmt.Fprint(stdout, "\nExecution Time (ns) :\n\n")
	if err := report.RenderTable(stdout, records, report.TableOptions{Color: cfg.color}); err != nil {
		return err
	}

	if err := writeFile(cfg.csvPath, func(w io.Writer) error { return report.WriteCSV(w, records) }); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nSaved %s\n", cfg.csvPath)

	if cfg.chart != "" {
		format, _ := report.FormatFromPath(cfg.chart)
		err := writeFile(cfg.chart, func(w io.Writer) error {
			return report.RenderChart(w, records, report.ChartOptions{Format: format})
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved %s\n", cfg.chart)
	}
	if cfg.html != "" {
		if err := writeFile(cfg.html, func(w io.Writer) error { return report.RenderHTML(w, records) }); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved %s\n", cfg.html)
	}

	return nil
}

// writeFile creates path and hands it to render, keeping the first error.
func writeFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render(f)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("size %d < 1", n)
		}
		out = append(out, n)
	}

	return out, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}
