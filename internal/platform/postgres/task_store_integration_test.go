package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evotodo/taskapi/internal/domain"
	"github.com/evotodo/taskapi/internal/platform/postgres"
	"github.com/evotodo/taskapi/internal/store"
	"github.com/evotodo/taskapi/internal/testdb"
)

// Exercises the store against a real PostgreSQL instance. Skipped unless a
// test database is configured in the environment.
func TestPostgresTaskStore_Integration(t *testing.T) {
	if !testdb.Available() {
		t.Skip("no test database configured, skipping integration test")
	}

	db := testdb.Open(t)
	ctx := context.Background()

	t.Run("create and get round-trip", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, slog.Default())

			task, err := domain.NewTask("Write integration tests", "against a live database")
			require.NoError(t, err)
			require.NoError(t, taskStore.Create(ctx, task))

			got, err := taskStore.GetByID(ctx, task.ID)
			require.NoError(t, err)
			assert.Equal(t, task.ID, got.ID)
			assert.Equal(t, task.Title, got.Title)
			assert.Equal(t, task.Description, got.Description)
			assert.False(t, got.Completed)
			// timestamptz stores microseconds, so allow for truncation.
			assert.WithinDuration(t, task.CreatedAt, got.CreatedAt, time.Second)
		})
	})

	t.Run("list filters on completed", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, slog.Default())

			open, err := domain.NewTask("Open task", "")
			require.NoError(t, err)
			require.NoError(t, taskStore.Create(ctx, open))

			done, err := domain.NewTask("Done task", "")
			require.NoError(t, err)
			done.SetCompleted(true)
			require.NoError(t, taskStore.Create(ctx, done))

			completed := true
			tasks, err := taskStore.List(ctx, store.TaskFilter{Completed: &completed})
			require.NoError(t, err)
			require.Len(t, tasks, 1)
			assert.Equal(t, done.ID, tasks[0].ID)
		})
	})

	t.Run("update persists changes", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, slog.Default())

			task, err := domain.NewTask("Before", "")
			require.NoError(t, err)
			require.NoError(t, taskStore.Create(ctx, task))

			require.NoError(t, task.UpdateTitle("After"))
			task.SetCompleted(true)
			require.NoError(t, taskStore.Update(ctx, task))

			got, err := taskStore.GetByID(ctx, task.ID)
			require.NoError(t, err)
			assert.Equal(t, "After", got.Title)
			assert.True(t, got.Completed)
		})
	})

	t.Run("delete removes the row", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, slog.Default())

			task, err := domain.NewTask("Ephemeral", "")
			require.NoError(t, err)
			require.NoError(t, taskStore.Create(ctx, task))
			require.NoError(t, taskStore.Delete(ctx, task.ID))

			_, err = taskStore.GetByID(ctx, task.ID)
			assert.ErrorIs(t, err, store.ErrTaskNotFound)
		})
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		taskStore := postgres.NewPostgresTaskStore(db, slog.Default())

		task, err := domain.NewTask("Never persisted", "")
		require.NoError(t, err)

		sentinel := errors.New("abort")
		err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			if err := taskStore.WithTx(tx).Create(ctx, task); err != nil {
				return err
			}
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		_, err = taskStore.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("transaction commits on success", func(t *testing.T) {
		taskStore := postgres.NewPostgresTaskStore(db, slog.Default())

		task, err := domain.NewTask("Persisted atomically", "")
		require.NoError(t, err)

		err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return taskStore.WithTx(tx).Create(ctx, task)
		})
		require.NoError(t, err)
		t.Cleanup(func() { _ = taskStore.Delete(ctx, task.ID) })

		got, err := taskStore.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.Title, got.Title)
	})

	t.Run("operations on missing tasks return not-found", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			taskStore := postgres.NewPostgresTaskStore(tx, slog.Default())

			missing := uuid.New()
			_, err := taskStore.GetByID(ctx, missing)
			assert.ErrorIs(t, err, store.ErrTaskNotFound)

			assert.ErrorIs(t, taskStore.Delete(ctx, missing), store.ErrTaskNotFound)
		})
	})
}
