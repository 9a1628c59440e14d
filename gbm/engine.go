// Package gbm simulates geometric Brownian motion price paths under the
// risk-neutral measure, stepping each path with the exact solution of the
// GBM stochastic differential equation at a fixed step size.
//
// Paths exist only on the simulated grid: the underlying is observed once
// per step, so an excursion across a barrier between two monitoring times
// goes undetected. This discrete-monitoring effect biases knock-out values
// up and knock-in values down relative to continuous monitoring and shrinks
// as the step count grows.
package gbm

import (
	"math"
	"runtime"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/joseluissebastia/barropt/contract"
)

// Engine simulates price paths for a validated set of parameters.
type Engine struct {
	params contract.Parameters

	// Workers caps the number of concurrent path workers. Zero selects
	// runtime.GOMAXPROCS(0). The simulated matrix is identical for every
	// worker count because each path owns a dedicated generator seed.
	Workers int

	// Progress, when set, is called by workers with the number of paths just
	// completed. It must be safe for concurrent use.
	Progress func(n int)
}

// NewEngine validates p and returns an engine for it.
func NewEngine(p contract.Parameters) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: p}, nil
}

func (e *Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Generate simulates the full price matrix from the given seed. The master
// seed derives one sub-seed per path, so results depend only on the seed and
// the parameters, never on scheduling.
func (e *Engine) Generate(seed uint64) *PriceMatrix {
	p := e.params
	m := newPriceMatrix(p.Paths, p.Steps)

	master := rand.New(rand.NewSource(seed))
	seeds := make([]uint64, p.Paths)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	dt := p.Maturity / float64(p.Steps)
	drift := (p.Rate - 0.5*p.Vol*p.Vol) * dt
	volStep := p.Vol * math.Sqrt(dt)

	workers := e.workers()
	if workers > p.Paths {
		workers = p.Paths
	}
	chunk := (p.Paths + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > p.Paths {
			end = p.Paths
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(0))
			for i := start; i < end; i++ {
				rng.Seed(seeds[i])
				row := m.d.RawRowView(i)
				row[0] = p.Spot
				price := p.Spot
				for j := 1; j <= p.Steps; j++ {
					price *= math.Exp(drift + volStep*rng.NormFloat64())
					row[j] = price
				}
				if e.Progress != nil {
					e.Progress(1)
				}
			}
		}(start, end)
	}
	wg.Wait()

	return m
}
