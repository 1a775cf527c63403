package api

import (
	"errors"
	"net/http"

	"github.com/evotodo/taskapi/internal/api/shared"
	"github.com/evotodo/taskapi/internal/domain"
	"github.com/evotodo/taskapi/internal/platform/postgres"
	"github.com/evotodo/taskapi/internal/store"
)

// Stable error codes exposed in the error envelope. Clients key off these,
// never off messages.
const (
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeInternalError  = "INTERNAL_SERVER_ERROR"
	CodeTaskNotFound   = "TASK_NOT_FOUND"
	CodeValidationFail = "VALIDATION_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeConflict       = "CONFLICT"
)

// Fixed client-facing messages for the two catch-all tiers. Internal detail
// is deliberately hidden from clients.
const (
	msgDatabaseError = "A database error occurred. Please try again later."
	msgInternalError = "An unexpected error occurred."
)

// HandleStoreError translates an error from the persistence layer into the
// appropriate HTTP error response. Translation is terminal for the request:
// no retry, no partial recovery.
//
// Two catch-all tiers sit under the specific CRUD mappings: anything the
// driver surfaced becomes 503 DATABASE_ERROR, anything else unrecognized
// becomes 500 INTERNAL_SERVER_ERROR.
func HandleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case store.IsNotFoundError(err):
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound,
			CodeTaskNotFound, "Task not found", err)

	case errors.Is(err, store.ErrDuplicate):
		shared.RespondWithErrorAndLog(w, r, http.StatusConflict,
			CodeConflict, "Task already exists", err)

	case errors.Is(err, store.ErrInvalidEntity), isDomainValidationError(err):
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeValidationFail, "Invalid task data", err)

	case postgres.IsDatabaseError(err):
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
			CodeDatabaseError, msgDatabaseError, err)

	default:
		// Anything else surfaced by a store operation is still a
		// persistence-layer failure from the client's point of view.
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
			CodeDatabaseError, msgDatabaseError, err)
	}
}

// HandleUnexpectedError translates a non-persistence failure into the
// 500 INTERNAL_SERVER_ERROR envelope.
func HandleUnexpectedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
		CodeInternalError, msgInternalError, err)
}

// isDomainValidationError reports whether the error is one of the domain
// Task validation sentinels.
func isDomainValidationError(err error) bool {
	return errors.Is(err, domain.ErrTaskIDEmpty) ||
		errors.Is(err, domain.ErrTaskTitleEmpty) ||
		errors.Is(err, domain.ErrTaskTitleTooLong)
}
