// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database: connecting from the environment, applying the schema
// and running test bodies inside rolled-back transactions.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/evotodo/taskapi/internal/ciutil"
)

// Timeout bounds individual test database operations.
const Timeout = 5 * time.Second

// Available reports whether an integration-test database is configured.
// Tests call this to skip when no database is reachable from the
// environment.
func Available() bool {
	return ciutil.TestDatabaseURL() != ""
}

// Open connects to the configured test database, verifies connectivity and
// applies all migrations. The connection is closed when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := ciutil.TestDatabaseURL()
	require.NotEmpty(t, url, "no test database configured")

	db, err := sql.Open("pgx", url)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	applySchema(t, db)
	return db
}

// applySchema runs the embedded project migrations against db. Migrations
// live under cmd/server/migrations, so the project root must be locatable.
func applySchema(t *testing.T, db *sql.DB) {
	t.Helper()

	root, err := ciutil.FindProjectRoot()
	require.NoError(t, err, "failed to find project root")

	dir := filepath.Join(root, "cmd", "server", "migrations")
	require.DirExists(t, dir, "migrations directory not found")

	goose.SetLogger(&gooseTestLogger{t: t})
	goose.SetBaseFS(os.DirFS(dir))
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."), "failed to apply migrations")
}

// WithTx runs fn inside a transaction that is always rolled back, keeping
// tests isolated from each other and from leftover rows.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("failed to roll back test transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// gooseTestLogger routes migration output through the test log.
type gooseTestLogger struct {
	t *testing.T
}

func (l *gooseTestLogger) Fatalf(format string, v ...interface{}) {
	l.t.Fatalf(format, v...)
}

func (l *gooseTestLogger) Printf(format string, v ...interface{}) {
	l.t.Logf(format, v...)
}
