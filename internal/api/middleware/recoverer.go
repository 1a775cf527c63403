package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/evotodo/taskapi/internal/api"
	"github.com/evotodo/taskapi/internal/platform/logger"
)

// Recoverer converts handler panics into the service's standard
// 500 INTERNAL_SERVER_ERROR envelope instead of chi's plain-text response,
// so the error shape stays stable for clients. The panic value and stack
// are logged, never sent to the client.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				// The connection is gone; nothing useful to write.
				panic(rec)
			}

			log := logger.FromContext(r.Context())
			log.Error("panic recovered while handling request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))

			api.HandleUnexpectedError(w, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
