package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/evotodo/taskapi/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrTaskNotFoundWrapsErrNotFound(t *testing.T) {
	assert.ErrorIs(t, store.ErrTaskNotFound, store.ErrNotFound)
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "generic not found", err: store.ErrNotFound, want: true},
		{name: "task not found", err: store.ErrTaskNotFound, want: true},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrTaskNotFound), want: true},
		{name: "duplicate", err: store.ErrDuplicate, want: false},
		{name: "unrelated", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, store.IsNotFoundError(tc.err))
		})
	}
}
