// SPDX-License-Identifier: MIT

package compare

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/densebench/bench"
	"github.com/katalvlaran/densebench/matrix"
	"github.com/katalvlaran/densebench/sample"
)

// pair is one distinct (A, B) operand pair with the union of its enabled ops.
type pair struct {
	a, b    matrix.Shape
	enabled map[Op]bool
}

// dedupe collapses requests by (A, B); first occurrence fixes the order.
func dedupe(reqs []Request) []*pair {
	type key struct{ a, b matrix.Shape }
	seen := make(map[key]*pair, len(reqs))
	out := make([]*pair, 0, len(reqs))
	for _, r := range reqs {
		k := key{r.A, r.B}
		p, ok := seen[k]
		if !ok {
			p = &pair{a: r.A, b: r.B, enabled: make(map[Op]bool, len(AllOps))}
			seen[k] = p
			out = append(out, p)
		}
		for _, op := range r.Kind.ops() {
			p.enabled[op] = true
		}
	}

	return out
}

// planned reports whether p times op.
func (p *pair) planned(op Op) bool {
	return p.enabled[op] && op.applies(p.a, p.b)
}

// Compare times ref against opt for every distinct operand pair in reqs and
// returns one Row per pair in first-seen order.
//
// Implementation:
//   - Stage 1: validate options, both Impl descriptors and every request
//     (ErrInvalidConfig); nothing is timed on failure.
//   - Stage 2: dedupe requests by (A, B), merging enabled operations.
//   - Stage 3: per pair draw A(ref), A(opt); per planned op in AllOps order
//     draw B(ref), B(opt), time ref then opt, store the Cell.
//
// Behavior highlights:
//   - Inapplicable operations are skipped silently (absent cell).
//   - The first implementation error aborts and is returned unchanged.
//
// Complexity:
//   - Dominated by (warmup+iterations) × cost(op) per planned cell.
func Compare(reqs []Request, ref, opt matrix.Impl, opts ...Option) ([]Row, error) {
	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if !ref.Valid() {
		return nil, configErrorf("reference implementation %q incomplete", ref.Name)
	}
	if !opt.Valid() {
		return nil, configErrorf("optimized implementation %q incomplete", opt.Name)
	}
	for i, r := range reqs {
		if err := r.validate(); err != nil {
			return nil, configErrorf("request %d: %v", i, err)
		}
	}

	pairs := dedupe(reqs)
	total := 0
	for _, p := range pairs {
		for _, op := range AllOps {
			if p.planned(op) {
				total++
			}
		}
	}

	// One source feeds both generators so the draw order is global.
	rng := rand.New(rand.NewSource(o.seed))
	refGen := sample.NewGeneratorFrom(ref, rng)
	optGen := sample.NewGeneratorFrom(opt, rng)

	rows := make([]Row, 0, len(pairs))
	done := 0
	for _, p := range pairs {
		row := Row{ShapeA: p.a, ShapeB: p.b, Cells: make(map[Op]Cell, len(AllOps))}
		label := row.Label()

		aRef, err := refGen.RandomShape(p.a)
		if err != nil {
			return nil, err
		}
		aOpt, err := optGen.RandomShape(p.a)
		if err != nil {
			return nil, err
		}

		for _, op := range AllOps {
			if !p.enabled[op] {
				continue
			}
			if !op.applies(p.a, p.b) {
				o.logger.Debug("skipping inapplicable operation",
					slog.String("pair", label), slog.String("op", string(op)))
				continue
			}

			cell, err := measurePair(op, aRef, aOpt, p.b, refGen, optGen, o)
			if err != nil {
				return nil, err
			}
			row.Cells[op] = cell
			done++

			o.logger.Debug("measured",
				slog.String("pair", label),
				slog.String("op", string(op)),
				slog.Float64("ref_ns", cell.Ref.Mean),
				slog.Float64("opt_ns", cell.Opt.Mean),
				slog.Float64("speedup_pct", cell.Speedup))
			if o.progress != nil {
				o.progress(Progress{Done: done, Total: total, Label: label, Op: op, Cell: cell})
			}
		}

		o.logger.Info("row complete", slog.String("pair", label), slog.Int("cells", len(row.Cells)))
		rows = append(rows, row)
	}

	return rows, nil
}

// measurePair draws B for both implementations and times op on each.
func measurePair(op Op, aRef, aOpt matrix.Matrix, shapeB matrix.Shape,
	refGen, optGen *sample.Generator, o Options) (Cell, error) {
	bRef, err := refGen.RandomShape(shapeB)
	if err != nil {
		return Cell{}, err
	}
	bOpt, err := optGen.RandomShape(shapeB)
	if err != nil {
		return Cell{}, err
	}

	name := string(op)
	refSample, err := bench.Measure(name, func() error { return op.run(aRef, bRef) },
		o.warmup, o.iterations, bench.WithClock(o.clock))
	if err != nil {
		return Cell{}, err
	}
	optSample, err := bench.Measure(name, func() error { return op.run(aOpt, bOpt) },
		o.warmup, o.iterations, bench.WithClock(o.clock))
	if err != nil {
		return Cell{}, err
	}

	return Cell{
		Ref:     refSample,
		Opt:     optSample,
		Speedup: bench.SpeedupPct(refSample.Mean, optSample.Mean),
	}, nil
}
