package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseluissebastia/barropt/gbm"
	"github.com/joseluissebastia/barropt/report"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Simulate price paths and export a CSV sample",
	Long: `Simulate geometric Brownian motion price paths for a contract and write a
sample of them as CSV, one column per path, for external plotting. No payoff
is evaluated.

Example:
  barropt paths --option call --barrier up_and_out \
    --spot 100 --strike 100 --level 150 --maturity 1 \
    --volatility 0.25 --rate 0.04 --steps 252 --paths 1000 \
    --seed 42 --out sample.csv --sample 25`,
	RunE: runPaths,
}

var (
	pathsContract *contractFlags
	pathsScenario string
	pathsSeed     uint64
	pathsWorkers  int
	pathsOut      string
	pathsSample   int
)

func init() {
	rootCmd.AddCommand(pathsCmd)

	pathsContract = addContractFlags(pathsCmd)
	f := pathsCmd.Flags()
	f.StringVarP(&pathsScenario, "scenario", "f", "", "path to scenario file (YAML or JSON), replaces the contract flags")
	f.Uint64Var(&pathsSeed, "seed", 0, "master seed for the simulation (0 derives one from the clock)")
	f.IntVar(&pathsWorkers, "workers", 0, "concurrent path workers (0 uses all CPUs)")
	f.StringVarP(&pathsOut, "out", "o", "paths.csv", "destination CSV file")
	f.IntVar(&pathsSample, "sample", defaultSamplePaths, "paths to keep in the CSV sample (0 keeps all)")
}

func runPaths(cmd *cobra.Command, args []string) error {
	p, scn, err := resolveParams(cmd, pathsScenario, pathsContract)
	if err != nil {
		return err
	}
	seed, workers := resolveRun(cmd, pathsSeed, pathsWorkers, scn)

	out := pathsOut
	sample := pathsSample
	if scn != nil {
		if !cmd.Flags().Changed("out") && scn.Output.PathsFile != "" {
			out = scn.Output.PathsFile
		}
		if !cmd.Flags().Changed("sample") && scn.Output.SamplePaths != 0 {
			sample = scn.Output.SamplePaths
		}
	}

	engine, err := gbm.NewEngine(p)
	if err != nil {
		return err
	}
	engine.Workers = workers

	prog, bar := newProgressBar(p.Paths)
	engine.Progress = func(n int) { bar.IncrBy(n) }
	m := engine.Generate(seed)
	prog.Wait()

	if err := report.ExportPathsCSV(out, m, p.Maturity, sample); err != nil {
		return err
	}
	fmt.Printf("Paths saved to: %s (seed %d)\n", out, seed)
	return nil
}
