// Package densebench measures how much faster an optimized dense-matrix
// implementation is than a straightforward reference one.
//
// What is in the box?
//
//	Two interchangeable implementations of one contract:
//		• matrix           : Matrix/Impl contract, sentinel errors, validators, AllClose
//		• matrix/reference : plain nested loops, the correctness baseline
//		• matrix/optimized : vectorized kernels (algo-vecmath) and a packed MatMul
//		• matrix/matrixtest: the conformance suite both implementations pass
//
//	And the harness that compares them:
//		• sample : seeded uniform-[0,1) matrices for any Impl
//		• bench  : warm-up + timed iterations → mean, variance, stddev
//		• compare: shape sweeps, per-pair timing, speedup percentages
//		• report : CSV, terminal grid table, PNG/SVG charts, HTML page
//
// Commands:
//
//	cmd/densebench: run a uniform or random sweep, print and save results
//	cmd/denseplot : render a saved CSV as a chart
//
// Quick start:
//
//	go run ./cmd/densebench -uniform -chart sweep.png
//	go run ./cmd/denseplot -in benchmark_results.csv -out sweep.html -dark
//
// Programmatic use:
//
//	rows, err := compare.Compare(compare.UniformSweep(compare.DefaultUniformSizes),
//		reference.Impl, optimized.Impl, compare.WithIterations(16))
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = report.RenderTable(os.Stdout, report.FromRows(rows), report.TableOptions{})
package densebench
