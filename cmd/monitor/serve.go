package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Soulverse-Ecosystem/status-check/internal/config"
	"github.com/Soulverse-Ecosystem/status-check/internal/httpapi"
	"github.com/Soulverse-Ecosystem/status-check/internal/logging"
)

// serve publishes the persisted status artifact. It reads what `run` wrote;
// the two commands share nothing but the file.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve the published status artifact over HTTP",
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

		srv := httpapi.NewServer(logger, cfg.ArtifactFile,
			cfg.Server.RateLimitPerMin, cfg.Server.RateLimitBurst)

		logger.Info("serve_listen",
			zap.String("addr", cfg.Server.Addr),
			zap.String("artifact", cfg.ArtifactFile),
		)
		return http.ListenAndServe(cfg.Server.Addr, srv.Router())
	},
}
