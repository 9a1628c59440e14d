// Package payoff turns simulated price paths into a discounted Monte Carlo
// value for a European barrier option.
package payoff

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/joseluissebastia/barropt/contract"
	"github.com/joseluissebastia/barropt/gbm"
)

// Estimate is the aggregated Monte Carlo value of one contract.
type Estimate struct {
	Price    float64 // discounted mean payoff, never negative
	StdErr   float64 // standard error of Price, zero when fewer than two paths
	Paths    int     // paths aggregated into the estimate
	Breached int     // paths whose barrier condition was met
}

// Evaluate prices the contract p over the simulated matrix m. Each path is
// judged independently: the barrier is breached when the path extremum
// reaches the level (maximum for up barriers, minimum for down barriers,
// both inclusive), knock-ins pay only on breached paths, knock-outs only on
// untouched ones, and surviving paths collect the vanilla payoff at expiry
// discounted back at the risk-free rate.
//
// The matrix shape must match p exactly; a mismatch means the two pipeline
// stages were driven with different parameters and is reported as
// contract.ErrInvalidState.
func Evaluate(p contract.Parameters, m *gbm.PriceMatrix) (Estimate, error) {
	if err := p.Validate(); err != nil {
		return Estimate{}, err
	}
	if m == nil {
		return Estimate{}, fmt.Errorf("%w: nil price matrix", contract.ErrInvalidState)
	}
	if m.Paths() != p.Paths || m.Steps() != p.Steps {
		return Estimate{}, fmt.Errorf("%w: price matrix is %d paths x %d steps, parameters expect %d x %d",
			contract.ErrInvalidState, m.Paths(), m.Steps(), p.Paths, p.Steps)
	}

	discount := math.Exp(-p.Rate * p.Maturity)
	values := make([]float64, p.Paths)

	workers := runtime.GOMAXPROCS(0)
	if workers > p.Paths {
		workers = p.Paths
	}
	chunk := (p.Paths + workers - 1) / workers

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		breached int
	)
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
			local := 0
			for i := start; i < end; i++ {
				row := m.Row(i)
				hit := barrierHit(p, row)
				if hit {
					local++
				}
				if hit == p.Barrier.KnocksIn() {
					values[i] = discount * vanilla(p.Option, row[len(row)-1], p.Strike)
				}
			}
			mu.Lock()
			breached += local
			mu.Unlock()
		}(start, end)
	}
	wg.Wait()

	est := Estimate{
		Price:    stat.Mean(values, nil),
		Paths:    p.Paths,
		Breached: breached,
	}
	if p.Paths > 1 {
		est.StdErr = stat.StdDev(values, nil) / math.Sqrt(float64(p.Paths))
	}
	return est, nil
}

func barrierHit(p contract.Parameters, row []float64) bool {
	if p.Barrier.IsUp() {
		return floats.Max(row) >= p.BarrierLevel
	}
	return floats.Min(row) <= p.BarrierLevel
}

func vanilla(kind contract.OptionKind, terminal, strike float64) float64 {
	if kind == contract.Call {
		return math.Max(terminal-strike, 0)
	}
	return math.Max(strike-terminal, 0)
}
