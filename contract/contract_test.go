package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParameters() Parameters {
	return Parameters{
		Option:       Call,
		Barrier:      UpAndOut,
		Spot:         100,
		Strike:       100,
		BarrierLevel: 150,
		Maturity:     1,
		Vol:          0.25,
		Rate:         0.04,
		Steps:        252,
		Paths:        1000,
	}
}

func TestValidateAccepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{name: "baseline", mutate: func(p *Parameters) {}},
		{name: "negative_rate", mutate: func(p *Parameters) { p.Rate = -0.02 }},
		{name: "zero_rate", mutate: func(p *Parameters) { p.Rate = 0 }},
		{name: "volatility_at_upper_bound", mutate: func(p *Parameters) { p.Vol = MaxVol }},
		{name: "single_step_single_path", mutate: func(p *Parameters) { p.Steps = 1; p.Paths = 1 }},
		{name: "put_down_and_in", mutate: func(p *Parameters) { p.Option = Put; p.Barrier = DownAndIn; p.BarrierLevel = 60 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validParameters()
			tt.mutate(&p)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{name: "zero_spot", mutate: func(p *Parameters) { p.Spot = 0 }},
		{name: "negative_spot", mutate: func(p *Parameters) { p.Spot = -100 }},
		{name: "nan_spot", mutate: func(p *Parameters) { p.Spot = math.NaN() }},
		{name: "zero_strike", mutate: func(p *Parameters) { p.Strike = 0 }},
		{name: "negative_strike", mutate: func(p *Parameters) { p.Strike = -1 }},
		{name: "zero_barrier_level", mutate: func(p *Parameters) { p.BarrierLevel = 0 }},
		{name: "negative_barrier_level", mutate: func(p *Parameters) { p.BarrierLevel = -150 }},
		{name: "zero_maturity", mutate: func(p *Parameters) { p.Maturity = 0 }},
		{name: "negative_maturity", mutate: func(p *Parameters) { p.Maturity = -1 }},
		{name: "zero_volatility", mutate: func(p *Parameters) { p.Vol = 0 }},
		{name: "negative_volatility", mutate: func(p *Parameters) { p.Vol = -0.25 }},
		{name: "volatility_above_bound", mutate: func(p *Parameters) { p.Vol = 1.5 }},
		{name: "nan_volatility", mutate: func(p *Parameters) { p.Vol = math.NaN() }},
		{name: "infinite_rate", mutate: func(p *Parameters) { p.Rate = math.Inf(1) }},
		{name: "nan_rate", mutate: func(p *Parameters) { p.Rate = math.NaN() }},
		{name: "zero_steps", mutate: func(p *Parameters) { p.Steps = 0 }},
		{name: "negative_steps", mutate: func(p *Parameters) { p.Steps = -10 }},
		{name: "zero_paths", mutate: func(p *Parameters) { p.Paths = 0 }},
		{name: "negative_paths", mutate: func(p *Parameters) { p.Paths = -1 }},
		{name: "unknown_option_kind", mutate: func(p *Parameters) { p.Option = OptionKind(9) }},
		{name: "unknown_barrier_kind", mutate: func(p *Parameters) { p.Barrier = BarrierKind(-1) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := validParameters()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestParseOptionKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    OptionKind
		wantErr bool
	}{
		{in: "call", want: Call},
		{in: "put", want: Put},
		{in: "CALL", want: Call},
		{in: "Put", want: Put},
		{in: "straddle", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseOptionKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBarrierKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    BarrierKind
		wantErr bool
	}{
		{in: "up_and_in", want: UpAndIn},
		{in: "up_and_out", want: UpAndOut},
		{in: "down_and_in", want: DownAndIn},
		{in: "down_and_out", want: DownAndOut},
		{in: "UP_AND_OUT", want: UpAndOut},
		{in: "down-and-in", want: DownAndIn},
		{in: "sideways_and_out", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseBarrierKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBarrierKindProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     BarrierKind
		isUp     bool
		knocksIn bool
	}{
		{kind: UpAndIn, isUp: true, knocksIn: true},
		{kind: UpAndOut, isUp: true, knocksIn: false},
		{kind: DownAndIn, isUp: false, knocksIn: true},
		{kind: DownAndOut, isUp: false, knocksIn: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.isUp, tt.kind.IsUp())
			assert.Equal(t, tt.knocksIn, tt.kind.KnocksIn())
		})
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range []OptionKind{Call, Put} {
		got, err := ParseOptionKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	for _, k := range []BarrierKind{UpAndIn, UpAndOut, DownAndIn, DownAndOut} {
		got, err := ParseBarrierKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}
