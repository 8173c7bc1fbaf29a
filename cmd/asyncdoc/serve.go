package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/artpar/asyncdoc/adapters/metrics"
	"github.com/artpar/asyncdoc/app"
	"github.com/artpar/asyncdoc/config"
	"github.com/artpar/asyncdoc/web"
)

var (
	hotReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the AsyncAPI document over HTTP",
	Long: `Start the documentation server.

The server will:
  - Load configuration from asyncdoc.yaml (or --config)
  - Generate the AsyncAPI document from the configured messages
  - Serve it at /asyncapi.yaml and /asyncapi.json
  - Regenerate on config or message file changes (hot reload)

Environment variables (for Docker deployments):
  ASYNCDOC_SERVER_HOST      - Bind address (default: 0.0.0.0)
  ASYNCDOC_SERVER_PORT      - Server port (default: 8080)
  ASYNCDOC_MESSAGES_DIR     - Directory of message definition files
  ASYNCDOC_LOG_LEVEL        - Log level: debug, info, warn, error
  ASYNCDOC_METRICS_ENABLED  - Enable the Prometheus endpoint

Examples:
  asyncdoc serve
  asyncdoc serve --config /etc/asyncdoc/config.yaml
  asyncdoc serve --hot-reload=false`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&hotReload, "hot-reload", true, "enable hot reload of configuration and message files")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging)

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
	}

	svc, err := app.NewDocumentService(cfg, logger, collector)
	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	// Hot reload only works with a config file on disk.
	var holder *config.Holder
	if hotReload {
		if _, statErr := os.Stat(cfgFile); statErr == nil {
			holder, err = config.NewHolder(cfgFile, logger)
			if err != nil {
				return fmt.Errorf("error watching config: %w", err)
			}
			holder.OnChange(func(newCfg *config.Config) {
				if collector != nil {
					collector.ConfigReloads.Inc()
				}
				if regenErr := svc.Regenerate(newCfg); regenErr != nil {
					logger.Error().Err(regenErr).Msg("regeneration failed, serving previous document")
				}
			})
			if err := holder.WatchFile(); err != nil {
				return fmt.Errorf("error watching config: %w", err)
			}
			holder.WatchSignals()
			defer holder.Stop()
		} else {
			logger.Warn().Str("path", cfgFile).Msg("no config file, hot reload disabled")
		}
	}

	handler := web.NewHandler(web.Options{
		Docs:        svc,
		Logger:      logger,
		Collector:   collector,
		MetricsPath: cfg.Metrics.Path,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("documentation server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
