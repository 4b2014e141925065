package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openclo/openclo/internal/analysis"
	"github.com/openclo/openclo/internal/config"
	"github.com/openclo/openclo/internal/llm"
	"github.com/openclo/openclo/internal/metrics"
	"github.com/openclo/openclo/internal/server"
	"github.com/openclo/openclo/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis, checklist and suggestion endpoints plus the state API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	backend, err := newBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = backend.Close() }()

	st := store.New(backend, logger)
	st.Hydrate(ctx)

	client, err := llm.NewClient(ctx, llm.LoadConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	defer func() { _ = client.Close() }()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	analyzer := analysis.NewAnalyzer(client, logger, collector)

	srv := server.New(server.Config{Port: cfg.Port}, analyzer, st, logger, collector, registry)
	return srv.Start(ctx)
}

// newBackend selects the persistence backend: Postgres when DATABASE_URL is
// set, the local file blob otherwise.
func newBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Backend, error) {
	if cfg.DatabaseURL != "" {
		logger.Info("using postgres state backend")
		backend, err := store.NewPostgresBackend(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres backend: %w", err)
		}
		return backend, nil
	}

	logger.Info("using file state backend", zap.String("dir", cfg.StorageDir))
	backend, err := store.NewFileBackend(cfg.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create file backend: %w", err)
	}
	return backend, nil
}
