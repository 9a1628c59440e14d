package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseluissebastia/barropt/config"
	"github.com/joseluissebastia/barropt/contract"
)

const defaultSamplePaths = 50

// contractFlags mirrors contract.Parameters as command-line flags so that
// price and paths share one vocabulary.
type contractFlags struct {
	option     string
	barrier    string
	spot       float64
	strike     float64
	level      float64
	maturity   float64
	volatility float64
	rate       float64
	steps      int
	paths      int
}

var contractFlagNames = []string{
	"option", "barrier", "spot", "strike", "level",
	"maturity", "volatility", "rate", "steps", "paths",
}

func addContractFlags(cmd *cobra.Command) *contractFlags {
	cf := &contractFlags{}
	f := cmd.Flags()
	f.StringVar(&cf.option, "option", "", "option kind: call or put")
	f.StringVar(&cf.barrier, "barrier", "", "barrier kind: up_and_in, up_and_out, down_and_in or down_and_out")
	f.Float64Var(&cf.spot, "spot", 0, "initial underlying price")
	f.Float64Var(&cf.strike, "strike", 0, "strike price")
	f.Float64Var(&cf.level, "level", 0, "barrier price level")
	f.Float64Var(&cf.maturity, "maturity", 0, "time to maturity in years")
	f.Float64Var(&cf.volatility, "volatility", 0, "annualized volatility, in (0, 1]")
	f.Float64Var(&cf.rate, "rate", 0, "annual risk-free rate, continuously compounded")
	f.IntVar(&cf.steps, "steps", 0, "time steps per path")
	f.IntVar(&cf.paths, "paths", 0, "number of simulated paths")
	return cf
}

func requireContractFlags(cmd *cobra.Command) error {
	var missing []string
	for _, name := range contractFlagNames {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing flags %s (or pass --scenario)", strings.Join(missing, ", "))
	}
	return nil
}

func (cf *contractFlags) params() (contract.Parameters, error) {
	option, err := contract.ParseOptionKind(cf.option)
	if err != nil {
		return contract.Parameters{}, err
	}
	barrier, err := contract.ParseBarrierKind(cf.barrier)
	if err != nil {
		return contract.Parameters{}, err
	}
	p := contract.Parameters{
		Option:       option,
		Barrier:      barrier,
		Spot:         cf.spot,
		Strike:       cf.strike,
		BarrierLevel: cf.level,
		Maturity:     cf.maturity,
		Vol:          cf.volatility,
		Rate:         cf.rate,
		Steps:        cf.steps,
		Paths:        cf.paths,
	}
	if err := p.Validate(); err != nil {
		return contract.Parameters{}, err
	}
	return p, nil
}

// resolveParams turns either a scenario file or the contract flags into
// validated parameters. The scenario, when present, wins wholesale.
func resolveParams(cmd *cobra.Command, scenarioPath string, cf *contractFlags) (contract.Parameters, *config.Scenario, error) {
	if scenarioPath != "" {
		scn, err := config.LoadFromFile(scenarioPath)
		if err != nil {
			return contract.Parameters{}, nil, fmt.Errorf("load scenario: %w", err)
		}
		p, err := scn.Params()
		if err != nil {
			return contract.Parameters{}, nil, err
		}
		return p, scn, nil
	}
	if err := requireContractFlags(cmd); err != nil {
		return contract.Parameters{}, nil, err
	}
	p, err := cf.params()
	return p, nil, err
}

// resolveRun picks the seed and worker count with flag over scenario over
// environment precedence, and falls back to a time-derived seed so that
// unseeded runs differ.
func resolveRun(cmd *cobra.Command, flagSeed uint64, flagWorkers int, scn *config.Scenario) (uint64, int) {
	seed := flagSeed
	if !cmd.Flags().Changed("seed") {
		seed = envUint64("BARROPT_SEED", 0)
		if scn != nil && scn.Simulation.Seed != 0 {
			seed = scn.Simulation.Seed
		}
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	workers := flagWorkers
	if !cmd.Flags().Changed("workers") {
		workers = envInt("BARROPT_WORKERS", 0)
		if scn != nil && scn.Simulation.Workers != 0 {
			workers = scn.Simulation.Workers
		}
	}
	return seed, workers
}

func envUint64(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
