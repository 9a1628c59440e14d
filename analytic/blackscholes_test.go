package analytic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseluissebastia/barropt/contract"
)

func TestReferenceValues(t *testing.T) {
	t.Parallel()

	// At-the-money one-year contract, textbook inputs.
	call, err := Call(100, 100, 0.05, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10.450583572185565, call, 1e-9)

	put, err := Put(100, 100, 0.05, 0.2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.573526022256971, put, 1e-9)
}

func TestPutCallParity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		spot, strike, rate, vol, years float64
	}{
		{name: "at_the_money", spot: 100, strike: 100, rate: 0.05, vol: 0.2, years: 1},
		{name: "in_the_money_call", spot: 120, strike: 100, rate: 0.03, vol: 0.35, years: 0.5},
		{name: "out_of_the_money_call", spot: 80, strike: 100, rate: 0.01, vol: 0.15, years: 2},
		{name: "negative_rate", spot: 100, strike: 95, rate: -0.01, vol: 0.25, years: 1.25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			call, err := Call(tt.spot, tt.strike, tt.rate, tt.vol, tt.years)
			require.NoError(t, err)
			put, err := Put(tt.spot, tt.strike, tt.rate, tt.vol, tt.years)
			require.NoError(t, err)

			want := tt.spot - tt.strike*math.Exp(-tt.rate*tt.years)
			assert.InDelta(t, want, call-put, 1e-9)
		})
	}
}

func TestDegenerateInputs(t *testing.T) {
	t.Parallel()

	t.Run("zero_volatility", func(t *testing.T) {
		t.Parallel()
		call, err := Call(100, 90, 0.05, 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 100-90*math.Exp(-0.05), call, 1e-12)

		put, err := Put(100, 90, 0.05, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, put)
	})

	t.Run("zero_maturity", func(t *testing.T) {
		t.Parallel()
		call, err := Call(100, 110, 0.05, 0.2, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, call)

		put, err := Put(100, 110, 0.05, 0.2, 0)
		require.NoError(t, err)
		assert.InDelta(t, 10.0, put, 1e-12)
	})
}

func TestPriceDispatch(t *testing.T) {
	t.Parallel()

	call, err := Price(contract.Call, 100, 100, 0.05, 0.2, 1)
	require.NoError(t, err)
	put, err := Price(contract.Put, 100, 100, 0.05, 0.2, 1)
	require.NoError(t, err)
	assert.Greater(t, call, put)

	_, err = Price(contract.OptionKind(4), 100, 100, 0.05, 0.2, 1)
	assert.ErrorIs(t, err, contract.ErrInvalidParameter)
}

func TestRejectsInvalidInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		spot, strike, rate, vol, years float64
	}{
		{name: "zero_spot", spot: 0, strike: 100, rate: 0.05, vol: 0.2, years: 1},
		{name: "negative_strike", spot: 100, strike: -100, rate: 0.05, vol: 0.2, years: 1},
		{name: "negative_volatility", spot: 100, strike: 100, rate: 0.05, vol: -0.2, years: 1},
		{name: "negative_maturity", spot: 100, strike: 100, rate: 0.05, vol: 0.2, years: -1},
		{name: "nan_rate", spot: 100, strike: 100, rate: math.NaN(), vol: 0.2, years: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Call(tt.spot, tt.strike, tt.rate, tt.vol, tt.years)
			assert.ErrorIs(t, err, contract.ErrInvalidParameter)
			_, err = Put(tt.spot, tt.strike, tt.rate, tt.vol, tt.years)
			assert.ErrorIs(t, err, contract.ErrInvalidParameter)
		})
	}
}
