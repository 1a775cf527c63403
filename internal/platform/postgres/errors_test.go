package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/evotodo/taskapi/internal/platform/postgres"
	"github.com/evotodo/taskapi/internal/store"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, Message: "constraint violated", ConstraintName: "tasks_pkey"}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows maps to not found",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "wrapped no rows maps to not found",
			err:     fmt.Errorf("query: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation maps to duplicate",
			err:     pgError("23505"),
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "foreign key violation maps to invalid entity",
			err:     pgError("23503"),
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "check violation maps to invalid entity",
			err:     pgError("23514"),
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "not null violation maps to invalid entity",
			err:     pgError("23502"),
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := postgres.MapError(tc.err)
			if tc.wantErr == nil {
				assert.NoError(t, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.wantErr)
		})
	}
}

func TestMapErrorPassesThroughUnknownErrors(t *testing.T) {
	original := errors.New("connection reset by peer")
	assert.Equal(t, original, postgres.MapError(original))
}

func TestIsDatabaseError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "pg error", err: pgError("57P01"), want: true},
		{name: "wrapped pg error", err: fmt.Errorf("exec: %w", pgError("08006")), want: true},
		{name: "conn done", err: sql.ErrConnDone, want: true},
		{name: "tx done", err: sql.ErrTxDone, want: true},
		{name: "transaction failed", err: store.ErrTransactionFailed, want: true},
		{name: "not found is a domain outcome", err: store.ErrTaskNotFound, want: false},
		{name: "duplicate is a domain outcome", err: postgres.MapError(pgError("23505")), want: false},
		{name: "invalid entity is a domain outcome", err: postgres.MapError(pgError("23503")), want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, postgres.IsDatabaseError(tc.err))
		})
	}
}

func TestIsConnectionException(t *testing.T) {
	assert.True(t, postgres.IsConnectionException(pgError("08006")))
	assert.False(t, postgres.IsConnectionException(pgError("23505")))
	assert.False(t, postgres.IsConnectionException(errors.New("boom")))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, postgres.IsUniqueViolation(pgError("23505")))
	assert.False(t, postgres.IsUniqueViolation(pgError("23503")))
	assert.False(t, postgres.IsUniqueViolation(nil))
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Run("rows affected", func(t *testing.T) {
		assert.NoError(t, postgres.CheckRowsAffected(fakeResult{rows: 1}, "task"))
	})

	t.Run("zero rows returns not found", func(t *testing.T) {
		err := postgres.CheckRowsAffected(fakeResult{rows: 0}, "task")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("zero rows without entity name", func(t *testing.T) {
		err := postgres.CheckRowsAffected(fakeResult{rows: 0}, "")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rows affected error is propagated", func(t *testing.T) {
		err := postgres.CheckRowsAffected(fakeResult{err: errors.New("driver does not support RowsAffected")}, "task")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, postgres.CheckRowsAffected(nil, "task"))
	})
}
