// Package main implements the entry point for the task API server: a JSON
// HTTP service exposing CRUD over task records backed by PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/evotodo/taskapi/internal/config"
	"github.com/evotodo/taskapi/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up|down|status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("taskapi: %v", err)
	}
}

// run loads configuration, initializes logging and the database, and either
// executes an explicit migration command or starts the HTTP server.
// Any error before serving is fatal: the process must never accept traffic
// against an unverified database.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("cors_origins", len(cfg.CORS.AllowedOrigins)))

	if migrateCmd != "" {
		return runMigrationCommand(cfg, migrateCmd)
	}

	ctx := context.Background()

	db, err := setupDatabase(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	// Startup sequence: ensure schema, then verify connectivity with a
	// trivial query. Linear, no retries, no degraded-start mode.
	if err := migrateUp(db, appLogger); err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	if err := verifyDatabase(ctx, db); err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to verify database connection: %w", err)
	}
	appLogger.Info("database connection verified")

	app := newApplication(cfg, appLogger, db)
	return app.Run(ctx)
}
