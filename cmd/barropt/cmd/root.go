package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "barropt",
	Short: "Monte Carlo pricer for European barrier options",
	Long: `Barropt estimates the fair value of European barrier options by Monte
Carlo simulation of geometric Brownian motion price paths.

It provides tools for:
  - Pricing the four knock variants (up/down, in/out) for calls and puts
  - Reproducible runs from a fixed seed
  - Scenario files in YAML or JSON
  - Exporting simulated paths as CSV for external plotting
  - JSON result reports

Complete documentation is available at https://github.com/joseluissebastia/barropt`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// An optional .env may predefine BARROPT_SEED and BARROPT_WORKERS.
	_ = godotenv.Load()
}
