package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wbuf81/oscar/config"
	"github.com/wbuf81/oscar/internal/api"
	"github.com/wbuf81/oscar/internal/catalog"
	"github.com/wbuf81/oscar/internal/deepscan"
	"github.com/wbuf81/oscar/internal/history"
	"github.com/wbuf81/oscar/internal/scan"
	"github.com/wbuf81/oscar/internal/settings"
)

// serveCmd is the cobra command that starts the oscar API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the oscar api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
}

// serve initializes dependencies and starts the oscar API server
func serve(ctx context.Context) error {
	cfg := config.New()

	c := catalog.Default()

	cfgSettings, err := loadSettings(c, cfg.SettingsFile)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	hist := setupHistory(cfg)

	fetcher, err := deepscan.NewHTTPFetcher(c.Limits())
	if err != nil {
		return fmt.Errorf("setting up document fetcher: %w", err)
	}

	orchestrator := scan.New(c, cfgSettings, hist, fetcher)

	handler := api.NewHandler(orchestrator, hist, api.WithMaxBodySize(cfg.MaxBodySize))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting oscar service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// loadSettings reads the settings file when configured, falling back to
// catalog defaults otherwise
func loadSettings(c *catalog.Catalog, path string) (settings.Settings, error) {
	if path == "" {
		return settings.Default(c), nil
	}

	s, err := settings.Load(c, path)
	if err != nil {
		return settings.Settings{}, err
	}

	log.Info().Str("file", path).Msg("loaded scan settings")

	return s, nil
}

// setupHistory initializes the scan history store from config
func setupHistory(cfg *config.Config) *history.Store {
	opts := []history.Option{history.WithMaxRecords(cfg.MaxHistoryRecords)}

	if cfg.HistoryFile != "" {
		opts = append(opts, history.WithStorageFile(cfg.HistoryFile))
		log.Info().Str("file", cfg.HistoryFile).Msg("scan history persistence enabled")
	}

	return history.New(opts...)
}
