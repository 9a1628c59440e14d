// Package analytic provides closed-form Black-Scholes values for vanilla
// European options. The simulation never depends on it; it serves as the
// reference leg of the knock-in/knock-out parity identity and as a sanity
// line in pricing reports.
package analytic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/joseluissebastia/barropt/contract"
)

// Price returns the Black-Scholes value of a vanilla European option. A zero
// volatility or zero maturity collapses to the discounted deterministic
// payoff.
func Price(kind contract.OptionKind, spot, strike, rate, vol, maturity float64) (float64, error) {
	switch kind {
	case contract.Call:
		return Call(spot, strike, rate, vol, maturity)
	case contract.Put:
		return Put(spot, strike, rate, vol, maturity)
	}
	return 0, fmt.Errorf("%w: unknown option kind %d", contract.ErrInvalidParameter, int(kind))
}

// Call returns the Black-Scholes value of a vanilla European call.
func Call(spot, strike, rate, vol, maturity float64) (float64, error) {
	if err := checkInputs(spot, strike, rate, vol, maturity); err != nil {
		return 0, err
	}
	if vol == 0 || maturity == 0 {
		return math.Max(spot-strike*math.Exp(-rate*maturity), 0), nil
	}
	d1, d2 := d1d2(spot, strike, rate, vol, maturity)
	return spot*distuv.UnitNormal.CDF(d1) - strike*math.Exp(-rate*maturity)*distuv.UnitNormal.CDF(d2), nil
}

// Put returns the Black-Scholes value of a vanilla European put.
func Put(spot, strike, rate, vol, maturity float64) (float64, error) {
	if err := checkInputs(spot, strike, rate, vol, maturity); err != nil {
		return 0, err
	}
	if vol == 0 || maturity == 0 {
		return math.Max(strike*math.Exp(-rate*maturity)-spot, 0), nil
	}
	d1, d2 := d1d2(spot, strike, rate, vol, maturity)
	return strike*math.Exp(-rate*maturity)*distuv.UnitNormal.CDF(-d2) - spot*distuv.UnitNormal.CDF(-d1), nil
}

func d1d2(spot, strike, rate, vol, maturity float64) (float64, float64) {
	d1 := (math.Log(spot/strike) + (rate+0.5*vol*vol)*maturity) / (vol * math.Sqrt(maturity))
	return d1, d1 - vol*math.Sqrt(maturity)
}

func checkInputs(spot, strike, rate, vol, maturity float64) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spot", spot}, {"strike", strike}, {"rate", rate}, {"volatility", vol}, {"maturity", maturity},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", contract.ErrInvalidParameter, f.name, f.v)
		}
	}
	if spot <= 0 {
		return fmt.Errorf("%w: spot must be positive, got %g", contract.ErrInvalidParameter, spot)
	}
	if strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %g", contract.ErrInvalidParameter, strike)
	}
	if vol < 0 {
		return fmt.Errorf("%w: volatility must not be negative, got %g", contract.ErrInvalidParameter, vol)
	}
	if maturity < 0 {
		return fmt.Errorf("%w: maturity must not be negative, got %g", contract.ErrInvalidParameter, maturity)
	}
	return nil
}
