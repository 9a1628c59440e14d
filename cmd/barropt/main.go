package main

import (
	"os"

	"github.com/joseluissebastia/barropt/cmd/barropt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
