// Command server runs the profkom backend.
//
// Configuration is layered: built-in defaults, a YAML file (explicit
// -config path, PROFKOM_CONFIG, ./config.yaml, /etc/profkom/config.yaml),
// then PROFKOM_* environment overrides:
//
//	PROFKOM_PORT         - Listen port (default: 8080)
//	PROFKOM_STORAGE      - Storage type: "memory" or "postgres" (default: "memory")
//	PROFKOM_STORAGE_DSN  - PostgreSQL DSN when storage is "postgres"
//	PROFKOM_SIGNING_KEY  - Token signing key (falls back to the dev key)
//	PROFKOM_UPLOAD_DIR   - Directory for uploaded files (default: ./uploads)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/profkom/profkom-backend/pkg/auth"
	"github.com/profkom/profkom-backend/pkg/auth/token"
	"github.com/profkom/profkom-backend/pkg/config"
	"github.com/profkom/profkom-backend/pkg/content"
	"github.com/profkom/profkom-backend/pkg/credential"
	"github.com/profkom/profkom-backend/pkg/storage/memory"
	"github.com/profkom/profkom-backend/pkg/storage/postgres"
	transporthttp "github.com/profkom/profkom-backend/pkg/transport/http"
	"github.com/profkom/profkom-backend/pkg/uploads"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// Pick the storage backend. The memory store is for development;
	// everything in it is lost on restart.
	var (
		credStore    credential.Store
		contentStore content.Store
	)
	switch cfg.Storage.Type {
	case "postgres":
		pg, err := postgres.New(ctx, postgres.Config{
			DSN:            cfg.Storage.Postgres.DSN,
			MaxConns:       cfg.Storage.Postgres.MaxConns,
			MigrateOnStart: cfg.Storage.Postgres.MigrateOnStart,
		})
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		defer pg.Close()
		credStore, contentStore = pg, pg
		logger.Info("storage enabled", "type", "postgres")
	default:
		mem := memory.New()
		credStore, contentStore = mem, mem
		logger.Info("storage enabled", "type", "memory")
	}

	creds := credential.NewService(credStore, logger)
	if err := creds.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrapping admin account: %w", err)
	}

	signingKey := cfg.Auth.SigningKey
	if signingKey == "" {
		signingKey = token.FallbackKey
		logger.Warn("no signing key configured, using the built-in development key; set auth.signing_key in production")
	}
	codec := token.New([]byte(signingKey))
	gate := auth.NewGate(codec, logger)

	var saver *uploads.Saver
	if cfg.Uploads.Enabled {
		saver, err = uploads.NewSaver(cfg.Uploads.Dir)
		if err != nil {
			return fmt.Errorf("preparing upload directory: %w", err)
		}
		logger.Info("uploads enabled", "dir", cfg.Uploads.Dir)
	}

	handlers := transporthttp.NewHandlers(
		creds,
		content.NewService(contentStore),
		codec,
		gate,
		saver,
		logger,
	)

	metricsPath := ""
	if cfg.Observability.Metrics.Enabled {
		metricsPath = cfg.Observability.Metrics.Path
	}

	srv := transporthttp.NewServer(handlers,
		transporthttp.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithMetricsPath(metricsPath),
		transporthttp.WithLogger(logger),
	)

	return srv.ListenAndServe()
}
