package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marketpulse-ai/marketpulse/internal/assistant/core"
)

func agentsCMD() *cobra.Command {
	var asJSON bool
	var agents = &cobra.Command{
		Use:   "agents",
		Short: "List the registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := core.DefaultCatalog()
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog.All())
			}
			for _, a := range catalog.All() {
				fmt.Fprintf(os.Stdout, "%s %s (%s)\n", a.Emoji, a.DisplayName, a.ID)
				fmt.Fprintf(os.Stdout, "    %s\n", a.Description)
				fmt.Fprintf(os.Stdout, "    capabilities: %s\n", strings.Join(a.Capabilities, ", "))
			}
			return nil
		},
	}
	agents.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")

	return agents
}
