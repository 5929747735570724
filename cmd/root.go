package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var root = &cobra.Command{Use: "marketpulse"}

	root.AddCommand(serveCMD(), routeCMD(), agentsCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
