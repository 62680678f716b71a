package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Soulverse-Ecosystem/status-check/internal/config"
	"github.com/Soulverse-Ecosystem/status-check/internal/logging"
	"github.com/Soulverse-Ecosystem/status-check/internal/monitor"
	"github.com/Soulverse-Ecosystem/status-check/internal/notify"
	"github.com/Soulverse-Ecosystem/status-check/internal/probe"
	"github.com/Soulverse-Ecosystem/status-check/internal/snapshot"
)

// run does exactly one monitoring pass and exits. The scheduler (cron,
// systemd timer) lives outside this binary.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "probe all endpoints once, notify on transitions, persist the snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err := logging.NewLogger(cfg.Logging)
		if err != nil {
			return err
		}
		defer logger.Sync()

		endpoints, err := config.LoadEndpoints(cfg.EndpointsFile)
		if err != nil {
			return err
		}
		policy, err := cfg.Classify.Policy()
		if err != nil {
			return err
		}

		prober := probe.NewHTTPProber(cfg.Probe.TimeoutDuration(), cfg.Auth.Headers(), policy)
		prober.DiagnoseDNS = cfg.Probe.DiagnoseDNS

		var sinks notify.Multi
		if wh := notify.NewWebhook(cfg.Notify.WebhookURL); wh != nil {
			sinks = append(sinks, wh)
		}
		if sl := notify.NewSlack(cfg.Notify.SlackWebhook); sl != nil {
			sinks = append(sinks, sl)
		}
		var notifier notify.Notifier
		if len(sinks) > 0 {
			notifier = sinks
		}

		r := monitor.New(logger, prober, policy, snapshot.NewFileStore(cfg.StateFile), notifier, endpoints)
		r.Timeout = cfg.Probe.TimeoutDuration()
		r.Concurrency = cfg.Probe.Concurrency
		r.ArtifactPath = cfg.ArtifactFile

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("run_start",
			zap.Int("endpoints", len(endpoints)),
			zap.String("state_file", cfg.StateFile),
		)
		return r.RunOnce(ctx)
	},
}
