package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Soulverse-Ecosystem/status-check/internal/config"
)

// validate is a preflight: it loads and checks everything `run` would use,
// without probing anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "check configuration and endpoint list without probing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := func(msg string) { fmt.Println("✔", msg) }
		warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		ok("configuration loaded")

		endpoints, err := config.LoadEndpoints(cfg.EndpointsFile)
		if err != nil {
			return err
		}
		ok(fmt.Sprintf("%d endpoint(s) in %s", len(endpoints), cfg.EndpointsFile))

		if _, err := cfg.Classify.Policy(); err != nil {
			return err
		}
		ok("classification policy valid")

		if cfg.Notify.WebhookURL == "" && cfg.Notify.SlackWebhook == "" {
			warn("no notification sink configured — transitions will only be logged")
		} else {
			ok("notification sink configured")
		}
		if cfg.Auth.BearerToken != "" && cfg.Auth.Authorization != "" {
			warn("both bearer_token and authorization set; bearer_token wins")
		}

		ok("preflight passed")
		return nil
	},
}
