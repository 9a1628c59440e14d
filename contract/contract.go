// Package contract defines the terms of a European barrier option together
// with the settings that control its Monte Carlo valuation. Parameters are
// validated once, at the boundary; the simulation and payoff packages assume
// a validated contract and never clamp or repair values themselves.
package contract

import (
	"fmt"
	"math"
	"strings"
)

// OptionKind selects the payoff side of the contract.
type OptionKind int

const (
	Call OptionKind = iota
	Put
)

// BarrierKind selects which side of the spot the barrier sits on and whether
// touching it activates (knock-in) or extinguishes (knock-out) the payoff.
type BarrierKind int

const (
	UpAndIn BarrierKind = iota
	UpAndOut
	DownAndIn
	DownAndOut
)

// MaxVol is the largest annualized volatility accepted by Validate. Inputs
// above it are usually percentages passed where a fraction is expected.
const MaxVol = 1.0

func (k OptionKind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionKind(%d)", int(k))
}

func (k BarrierKind) String() string {
	switch k {
	case UpAndIn:
		return "up_and_in"
	case UpAndOut:
		return "up_and_out"
	case DownAndIn:
		return "down_and_in"
	case DownAndOut:
		return "down_and_out"
	}
	return fmt.Sprintf("BarrierKind(%d)", int(k))
}

// ParseOptionKind converts a textual option kind ("call" or "put") into its
// OptionKind. Matching is case-insensitive.
func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(s) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: unknown option kind %q", ErrInvalidParameter, s)
}

// ParseBarrierKind converts a textual barrier kind such as "up_and_out" into
// its BarrierKind. Matching is case-insensitive and accepts hyphens in place
// of underscores.
func ParseBarrierKind(s string) (BarrierKind, error) {
	switch strings.ReplaceAll(strings.ToLower(s), "-", "_") {
	case "up_and_in":
		return UpAndIn, nil
	case "up_and_out":
		return UpAndOut, nil
	case "down_and_in":
		return DownAndIn, nil
	case "down_and_out":
		return DownAndOut, nil
	}
	return 0, fmt.Errorf("%w: unknown barrier kind %q", ErrInvalidParameter, s)
}

// IsUp reports whether the barrier sits above the initial price, so that a
// breach is a new running maximum at or beyond the level.
func (k BarrierKind) IsUp() bool {
	return k == UpAndIn || k == UpAndOut
}

// KnocksIn reports whether touching the barrier activates the payoff. The
// complement extinguishes it.
func (k BarrierKind) KnocksIn() bool {
	return k == UpAndIn || k == DownAndIn
}

func (k OptionKind) valid() bool {
	return k == Call || k == Put
}

func (k BarrierKind) valid() bool {
	return k >= UpAndIn && k <= DownAndOut
}

// Parameters fully specifies one pricing run: the option terms and the
// discretization of the Monte Carlo simulation.
type Parameters struct {
	Option  OptionKind
	Barrier BarrierKind

	Spot         float64 // initial underlying price S0
	Strike       float64 // strike K
	BarrierLevel float64 // barrier price B
	Maturity     float64 // time to expiry in years
	Vol          float64 // annualized volatility of log returns, in (0, MaxVol]
	Rate         float64 // continuously compounded annual risk-free rate

	Steps int // time steps per path; monitoring happens once per step
	Paths int // number of simulated paths
}

// Validate checks every field against its accepted domain. All violations
// wrap ErrInvalidParameter. A negative rate is legitimate and accepted.
func (p Parameters) Validate() error {
	if !p.Option.valid() {
		return fmt.Errorf("%w: unknown option kind %d", ErrInvalidParameter, int(p.Option))
	}
	if !p.Barrier.valid() {
		return fmt.Errorf("%w: unknown barrier kind %d", ErrInvalidParameter, int(p.Barrier))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spot", p.Spot},
		{"strike", p.Strike},
		{"barrier level", p.BarrierLevel},
		{"maturity", p.Maturity},
		{"volatility", p.Vol},
		{"rate", p.Rate},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrInvalidParameter, f.name, f.v)
		}
	}
	if p.Spot <= 0 {
		return fmt.Errorf("%w: spot must be positive, got %g", ErrInvalidParameter, p.Spot)
	}
	if p.Strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidParameter, p.Strike)
	}
	if p.BarrierLevel <= 0 {
		return fmt.Errorf("%w: barrier level must be positive, got %g", ErrInvalidParameter, p.BarrierLevel)
	}
	if p.Maturity <= 0 {
		return fmt.Errorf("%w: maturity must be positive, got %g", ErrInvalidParameter, p.Maturity)
	}
	if p.Vol <= 0 || p.Vol > MaxVol {
		return fmt.Errorf("%w: volatility must be in (0, %g], got %g", ErrInvalidParameter, MaxVol, p.Vol)
	}
	if p.Steps < 1 {
		return fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidParameter, p.Steps)
	}
	if p.Paths < 1 {
		return fmt.Errorf("%w: paths must be at least 1, got %d", ErrInvalidParameter, p.Paths)
	}
	return nil
}
