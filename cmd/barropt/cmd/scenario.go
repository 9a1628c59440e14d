package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseluissebastia/barropt/config"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Write a starter scenario file",
	Long: `Write the default pricing scenario, a one-year at-the-money up-and-out
call, to a YAML or JSON file for editing.`,
	RunE: runScenario,
}

var scenarioOut string

func init() {
	rootCmd.AddCommand(scenarioCmd)

	scenarioCmd.Flags().StringVarP(&scenarioOut, "out", "o", "scenario.yaml", "destination file (.yaml, .yml or .json)")
}

func runScenario(cmd *cobra.Command, args []string) error {
	if err := config.Default().SaveToFile(scenarioOut); err != nil {
		return err
	}
	fmt.Printf("Scenario written to: %s\n", scenarioOut)
	return nil
}
