// Package study evaluates many candidate beam designs against a common load
// set: cartesian grid sweeps, Monte-Carlo sampling, and candidate lists read
// from spreadsheets. Evaluations are independent and run on a bounded pool
// of goroutines; results keep the order of the candidates.
package study

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/okoham/ibeam/internal/cantilever"
	"github.com/okoham/ibeam/internal/material"
	"github.com/okoham/ibeam/internal/section"
	"golang.org/x/sync/errgroup"
)

// Candidate is one beam design to evaluate
type Candidate struct {
	Material string
	L        float64 // span (mm)
	DStab    float64 // stabiliser spacing (mm), 0 for the full span
	Geometry section.Geometry
}

// Options control a study run
type Options struct {
	Loads   []float64 // signed tip loads (N)
	Workers int       // concurrent evaluations, <= 0 for runtime.NumCPU()

	// SkipDegenerate drops candidates whose section fails
	// section.Geometry.Validate instead of evaluating them.
	SkipDegenerate bool
	// FeasibleOnly keeps only designs with every reserve factor >= 1.
	FeasibleOnly bool

	CompressionFace cantilever.CompressionFace

	Logger        *slog.Logger
	ProgressEvery int // log progress every N evaluations, 0 to disable
}

// Stats summarises a finished run
type Stats struct {
	Evaluated int
	Skipped   int // degenerate sections
	Rejected  int // infeasible designs
	Kept      int
	Elapsed   time.Duration
}

// ErrNoLoads is returned when a study is started without a load set.
var ErrNoLoads = errors.New("study: empty load set")

type outcome struct {
	summary cantilever.Summary
	skipped bool
}

// Run evaluates every candidate and returns the summaries of the kept
// designs in candidate order. An unknown material aborts the run.
func Run(ctx context.Context, reg *material.Registry, candidates []Candidate, opts Options) ([]cantilever.Summary, Stats, error) {
	if len(opts.Loads) == 0 {
		return nil, Stats{}, ErrNoLoads
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	logger.Info("study started", "candidates", len(candidates), "workers", workers, "loads", len(opts.Loads))

	outcomes := make([]outcome, len(candidates))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, cand := range candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := evaluate(reg, cand, opts)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			if out.skipped {
				logger.Debug("degenerate section skipped", "index", i, "material", cand.Material,
					"h", cand.Geometry.H, "tlf", cand.Geometry.Tlf, "tuf", cand.Geometry.Tuf)
			}
			outcomes[i] = out

			n := done.Add(1)
			if opts.ProgressEvery > 0 && n%int64(opts.ProgressEvery) == 0 {
				logger.Info("study progress", "done", n, "total", len(candidates))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{}
	results := make([]cantilever.Summary, 0, len(outcomes))
	for _, out := range outcomes {
		if out.skipped {
			stats.Skipped++
			continue
		}
		stats.Evaluated++
		if opts.FeasibleOnly && !out.summary.Feasible() {
			stats.Rejected++
			continue
		}
		results = append(results, out.summary)
	}
	stats.Kept = len(results)
	stats.Elapsed = time.Since(start)

	logger.Info("study finished", "evaluated", stats.Evaluated, "skipped", stats.Skipped,
		"rejected", stats.Rejected, "kept", stats.Kept, "elapsed", stats.Elapsed)

	return results, stats, nil
}

func evaluate(reg *material.Registry, cand Candidate, opts Options) (outcome, error) {
	if opts.SkipDegenerate {
		if err := cand.Geometry.Validate(); err != nil {
			return outcome{skipped: true}, nil
		}
	}
	beam, err := cantilever.New(reg, cand.Material, cand.L, cand.Geometry,
		cantilever.WithStabilizerSpacing(cand.DStab),
		cantilever.WithCompressionFace(opts.CompressionFace),
	)
	if err != nil {
		return outcome{}, err
	}
	return outcome{summary: beam.Analyse(opts.Loads)}, nil
}
