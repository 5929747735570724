package main

import (
	"github.com/spf13/cobra"

	"github.com/marketpulse-ai/marketpulse/config"
	"github.com/marketpulse-ai/marketpulse/internal/assistant"
	srv "github.com/marketpulse-ai/marketpulse/internal/server"
)

func serveCMD() *cobra.Command {
	var cfgPath string
	var serve = &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			asst := assistant.New(nil)
			return srv.Run(cfg, asst)
		},
	}
	serve.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")

	return serve
}
