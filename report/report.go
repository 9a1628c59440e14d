// Package report renders pricing results for the console and for files.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/xhhuango/json"

	"github.com/joseluissebastia/barropt/contract"
	"github.com/joseluissebastia/barropt/payoff"
)

// Report is the serializable summary of one pricing run.
type Report struct {
	Option       string  `json:"option"`
	Barrier      string  `json:"barrier"`
	Spot         float64 `json:"spot"`
	Strike       float64 `json:"strike"`
	BarrierLevel float64 `json:"barrier_level"`
	Maturity     float64 `json:"maturity"`
	Volatility   float64 `json:"volatility"`
	Rate         float64 `json:"rate"`
	Steps        int     `json:"steps"`
	Paths        int     `json:"paths"`
	Seed         uint64  `json:"seed"`

	Price          float64 `json:"price"`
	StdErr         float64 `json:"std_err"`
	Breached       int     `json:"breached_paths"`
	Vanilla        float64 `json:"vanilla_reference"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// New assembles a report from the run inputs and outputs. vanilla is the
// closed-form value of the barrier-free contract, shown as a reference line.
func New(p contract.Parameters, seed uint64, est payoff.Estimate, vanilla float64, elapsed time.Duration) Report {
	return Report{
		Option:         p.Option.String(),
		Barrier:        p.Barrier.String(),
		Spot:           p.Spot,
		Strike:         p.Strike,
		BarrierLevel:   p.BarrierLevel,
		Maturity:       p.Maturity,
		Volatility:     p.Vol,
		Rate:           p.Rate,
		Steps:          p.Steps,
		Paths:          p.Paths,
		Seed:           seed,
		Price:          est.Price,
		StdErr:         est.StdErr,
		Breached:       est.Breached,
		Vanilla:        vanilla,
		ElapsedSeconds: elapsed.Seconds(),
	}
}

// Text renders the report as the console contract-specification block.
func Text(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nContract Specifications\n")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 71))
	fmt.Fprintf(&b, "%-32s%s\n", "Option type:", r.Option)
	fmt.Fprintf(&b, "%-32s%s\n", "Barrier type:", r.Barrier)
	fmt.Fprintf(&b, "%-32s%g\n", "Initial price:", r.Spot)
	fmt.Fprintf(&b, "%-32s%g\n", "Strike price:", r.Strike)
	fmt.Fprintf(&b, "%-32s%g\n", "Barrier price:", r.BarrierLevel)
	fmt.Fprintf(&b, "%-32s%g\n", "Time to maturity (in years):", r.Maturity)
	fmt.Fprintf(&b, "%-32s%g\n", "Annual volatility:", r.Volatility)
	fmt.Fprintf(&b, "%-32s%g\n", "Annual risk free rate:", r.Rate)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "%-32s%d\n", "Number of steps:", r.Steps)
	fmt.Fprintf(&b, "%-32s%d\n", "Number of simulations:", r.Paths)
	fmt.Fprintf(&b, "%-32s%d\n", "Seed:", r.Seed)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "%-32s%.6f\n", "Estimated contract value:", r.Price)
	fmt.Fprintf(&b, "%-32s%.6f\n", "Standard error:", r.StdErr)
	fmt.Fprintf(&b, "%-32s%.6f\n", "Vanilla Black-Scholes value:", r.Vanilla)
	fmt.Fprintf(&b, "%-32s%d of %d paths\n", "Barrier breached on:", r.Breached, r.Paths)
	fmt.Fprintf(&b, "%-32s%.3fs\n", "Elapsed:", r.ElapsedSeconds)

	return b.String()
}

// WriteJSON dumps the report to path as indented JSON.
func WriteJSON(path string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}
	return nil
}
