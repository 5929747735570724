package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marketpulse-ai/marketpulse/internal/assistant"
	"github.com/marketpulse-ai/marketpulse/internal/assistant/core"
)

func routeCMD() *cobra.Command {
	var inputPath string
	var query string
	var mode string
	var showPrompt bool
	var route = &cobra.Command{
		Use:   "route",
		Short: "Route a query and print the decision",
		Long:  "Reads an agent context as JSON from --input (or stdin when --input is \"-\") and prints the routing decision. With --prompt the composed instruction text is printed as well. --query and --mode override the context fields.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ctx core.AgentContext
			switch {
			case inputPath == "" && query == "":
				return fmt.Errorf("either --input or --query is required")
			case inputPath == "-":
				if err := json.NewDecoder(os.Stdin).Decode(&ctx); err != nil {
					return fmt.Errorf("decoding context from stdin: %w", err)
				}
			case inputPath != "":
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("opening context file: %w", err)
				}
				defer f.Close()
				if err := json.NewDecoder(f).Decode(&ctx); err != nil {
					return fmt.Errorf("decoding context file: %w", err)
				}
			}
			if query != "" {
				ctx.Query = query
			}
			if mode != "" {
				ctx.Mode = core.Mode(mode)
			}
			if ctx.Mode == "" {
				ctx.Mode = core.ModeBusiness
			}

			asst := assistant.New(nil)
			decision, prompt := asst.BuildInstruction(&ctx)
			printDecision(os.Stdout, decision)
			if showPrompt {
				fmt.Fprintln(os.Stdout)
				fmt.Fprintln(os.Stdout, prompt)
			}
			return nil
		},
	}
	route.Flags().StringVarP(&inputPath, "input", "i", "", "agent context JSON file, or - for stdin")
	route.Flags().StringVarP(&query, "query", "q", "", "query text (overrides the context's query)")
	route.Flags().StringVarP(&mode, "mode", "m", "", "request mode: business, education or instructor")
	route.Flags().BoolVar(&showPrompt, "prompt", false, "also print the composed instruction prompt")

	return route
}

func printDecision(w io.Writer, d core.RouteDecision) {
	fmt.Fprintf(w, "agent:      %s %s\n", d.PrimaryAgent.Emoji, d.PrimaryAgent.DisplayName)
	fmt.Fprintf(w, "confidence: %.2f\n", d.Confidence)
	fmt.Fprintf(w, "reasoning:  %s\n", d.Reasoning)
}
