package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/evotodo/taskapi/internal/config"
	"github.com/evotodo/taskapi/internal/redact"
)

// Connection pool settings for the process-wide database handle.
const (
	dbMaxOpenConns    = 10
	dbMaxIdleConns    = 5
	dbConnMaxLifetime = 5 * time.Minute
	dbPingTimeout     = 5 * time.Second
)

// setupDatabase opens the process-wide database handle and confirms the
// server is reachable. The handle is created once at startup and shared by
// all request handlers; the driver is responsible for pooling and
// concurrency safety.
func setupDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		closeDatabase(db, log)
		return nil, fmt.Errorf("failed to ping database at %s: %w", redact.URL(cfg.Database.URL), err)
	}

	log.Info("database connection established",
		slog.String("url", redact.URL(cfg.Database.URL)))
	return db, nil
}

// verifyDatabase runs a trivial liveness probe query against the database.
func verifyDatabase(ctx context.Context, db *sql.DB) error {
	probeCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	var one int
	if err := db.QueryRowContext(probeCtx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("liveness probe query failed: %w", err)
	}
	if one != 1 {
		return fmt.Errorf("liveness probe query returned unexpected value %d", one)
	}
	return nil
}

// closeDatabase closes the handle, logging rather than returning the error
// since callers are already on a failure path or shutting down.
func closeDatabase(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("error closing database connection", slog.String("error", err.Error()))
	}
}
