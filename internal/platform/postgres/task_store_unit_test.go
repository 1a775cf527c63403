package postgres_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evotodo/taskapi/internal/platform/postgres"
)

func TestNewPostgresTaskStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() {
		postgres.NewPostgresTaskStore(nil, nil)
	})
}

func TestPostgresTaskStore_WithTx(t *testing.T) {
	base := postgres.NewPostgresTaskStore(&sql.DB{}, nil)

	bound := base.WithTx(&sql.Tx{})
	assert.NotNil(t, bound)
	assert.IsType(t, &postgres.PostgresTaskStore{}, bound)
	assert.NotSame(t, base, bound)
}

func TestNewPostgresTaskStoreAcceptsNilLogger(t *testing.T) {
	// A zero-value *sql.DB is enough to exercise construction; no queries
	// are issued here.
	assert.NotPanics(t, func() {
		store := postgres.NewPostgresTaskStore(&sql.DB{}, nil)
		assert.NotNil(t, store)
	})
}
