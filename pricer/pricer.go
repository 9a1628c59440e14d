// Package pricer wires the path generator and the payoff evaluator into a
// single pricing pass.
package pricer

import (
	"time"

	"github.com/joseluissebastia/barropt/contract"
	"github.com/joseluissebastia/barropt/gbm"
	"github.com/joseluissebastia/barropt/payoff"
)

// Options tunes one run without touching the contract terms.
type Options struct {
	Seed       uint64      // master seed for path generation
	Workers    int         // concurrent path workers, zero for GOMAXPROCS
	KeepMatrix bool        // retain the simulated matrix on the result
	Progress   func(n int) // per-path progress callback, must be concurrency-safe
}

// Result couples the estimate with run metadata.
type Result struct {
	Estimate payoff.Estimate
	Matrix   *gbm.PriceMatrix // nil unless Options.KeepMatrix
	Elapsed  time.Duration
}

// Run simulates one price matrix from the seed and evaluates the contract
// over it. The estimate depends only on the parameters and the seed.
func Run(p contract.Parameters, opt Options) (Result, error) {
	start := time.Now()

	engine, err := gbm.NewEngine(p)
	if err != nil {
		return Result{}, err
	}
	engine.Workers = opt.Workers
	engine.Progress = opt.Progress

	m := engine.Generate(opt.Seed)
	est, err := payoff.Evaluate(p, m)
	if err != nil {
		return Result{}, err
	}

	res := Result{Estimate: est, Elapsed: time.Since(start)}
	if opt.KeepMatrix {
		res.Matrix = m
	}
	return res, nil
}
