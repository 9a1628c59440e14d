package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the barropt CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("barropt version %s\n", version)
		fmt.Println("Monte Carlo pricer for European barrier options")
		fmt.Println("https://github.com/joseluissebastia/barropt")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
