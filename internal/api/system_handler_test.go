package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evotodo/taskapi/internal/api"
)

func TestSystemHandlerRoot(t *testing.T) {
	handler := api.NewSystemHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.Root(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, api.ServiceName, body["service"])
	assert.Equal(t, api.ServiceVersion, body["version"])
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "/docs", body["docs"])
	assert.Equal(t, "/health", body["health"])
}

func TestSystemHandlerHealth(t *testing.T) {
	handler := api.NewSystemHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSystemHandlerPing(t *testing.T) {
	handler := api.NewSystemHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	w := httptest.NewRecorder()
	handler.Ping(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ping":"pong","cors":"enabled"}`, w.Body.String())
}
