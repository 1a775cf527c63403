// Package testutils provides shared helpers for tests: structured log
// capture and JSON response decoding.
package testutils

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// LogBuffer accumulates JSON log output for later inspection. Safe for use
// from handler goroutines.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Entries parses the captured output as newline-delimited JSON objects.
func (b *LogBuffer) Entries(t *testing.T) []map[string]interface{} {
	t.Helper()

	b.mu.Lock()
	raw := b.buf.String()
	b.mu.Unlock()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "malformed log line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

// CaptureLogger returns a JSON slog.Logger wired to a LogBuffer so tests
// can assert on individual log records.
func CaptureLogger() (*slog.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

// DecodeJSONResponse unmarshals a recorded response body into a generic map
// and fails the test on malformed JSON.
func DecodeJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "malformed response body: %s", w.Body.String())
	return body
}
