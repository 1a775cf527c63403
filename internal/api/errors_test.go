package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evotodo/taskapi/internal/api"
	"github.com/evotodo/taskapi/internal/api/shared"
	"github.com/evotodo/taskapi/internal/domain"
	"github.com/evotodo/taskapi/internal/store"
)

func handleError(t *testing.T, err error) (int, shared.ErrorResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()

	api.HandleStoreError(w, req, err)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleStoreError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "task not found",
			err:        store.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   api.CodeTaskNotFound,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("get task: %w", store.ErrTaskNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   api.CodeTaskNotFound,
		},
		{
			name:       "duplicate",
			err:        store.ErrDuplicate,
			wantStatus: http.StatusConflict,
			wantCode:   api.CodeConflict,
		},
		{
			name:       "invalid entity",
			err:        fmt.Errorf("%w: check constraint", store.ErrInvalidEntity),
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeValidationFail,
		},
		{
			name:       "domain validation",
			err:        domain.ErrTaskTitleEmpty,
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeValidationFail,
		},
		{
			name:       "driver error",
			err:        &pgconn.PgError{Code: "57P01", Message: "terminating connection"},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   api.CodeDatabaseError,
		},
		{
			name:       "unrecognized store failure is a database error",
			err:        errors.New("write: broken pipe"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   api.CodeDatabaseError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := handleError(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHandleStoreErrorHidesInternalDetail(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()

	api.HandleStoreError(w, req, &pgconn.PgError{
		Code:    "28P01",
		Message: "password authentication failed for user \"admin\"",
	})

	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "admin")
}

func TestHandleUnexpectedError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	w := httptest.NewRecorder()

	api.HandleUnexpectedError(w, req, errors.New("template render failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, api.CodeInternalError, body.Error.Code)
	assert.Equal(t, "An unexpected error occurred.", body.Error.Message)
}
