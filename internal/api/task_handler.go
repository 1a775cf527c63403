package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/evotodo/taskapi/internal/api/shared"
	"github.com/evotodo/taskapi/internal/domain"
	"github.com/evotodo/taskapi/internal/platform/logger"
	"github.com/evotodo/taskapi/internal/store"
)

// CreateTaskRequest represents the request body for creating a new task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=500"`
	Description string `json:"description" validate:"max=5000"`
}

// UpdateTaskRequest represents the request body for a full task update (PUT).
type UpdateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=500"`
	Description string `json:"description" validate:"max=5000"`
	Completed   bool   `json:"completed"`
}

// PatchTaskRequest represents the request body for a partial task update
// (PATCH). Absent fields are left unchanged.
type PatchTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=500"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Completed   *bool   `json:"completed,omitempty"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse wraps the list endpoint's payload.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// TaskHandler handles task CRUD HTTP requests.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, the default logger is used.
func NewTaskHandler(taskStore store.TaskStore, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeInvalidRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeValidationFail, "Invalid task data", err)
		return
	}

	task, err := domain.NewTask(req.Title, req.Description)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeValidationFail, "Invalid task data", err)
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		HandleStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /api/tasks requests. It supports optional
// completed, limit and offset query parameters.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTaskFilter(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeInvalidRequest, "Invalid query parameters", err)
		return
	}

	tasks, err := h.taskStore.List(r.Context(), filter)
	if err != nil {
		HandleStoreError(w, r, err)
		return
	}

	resp := TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Count: len(tasks),
	}
	for _, task := range tasks {
		resp.Tasks = append(resp.Tasks, taskToResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetTask handles GET /api/tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id} requests with a full replacement
// of the task's mutable fields.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeInvalidRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeValidationFail, "Invalid task data", err)
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleStoreError(w, r, err)
		return
	}

	if err := task.UpdateTitle(req.Title); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeValidationFail, "Invalid task data", err)
		return
	}
	task.UpdateDescription(req.Description)
	task.SetCompleted(req.Completed)

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		HandleStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// PatchTask handles PATCH /api/tasks/{id} requests, applying only the
// fields present in the request body.
func (h *TaskHandler) PatchTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req PatchTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeInvalidRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			CodeValidationFail, "Invalid task data", err)
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleStoreError(w, r, err)
		return
	}

	if req.Title != nil {
		if err := task.UpdateTitle(*req.Title); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				CodeValidationFail, "Invalid task data", err)
			return
		}
	}
	if req.Description != nil {
		task.UpdateDescription(*req.Description)
	}
	if req.Completed != nil {
		task.SetCompleted(*req.Completed)
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		HandleStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		HandleStoreError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromPath extracts and parses the {id} path parameter. On failure it
// writes the 400 response itself and returns false.
func (h *TaskHandler) taskIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		log := logger.FromContextOrDefault(r.Context(), h.logger)
		log.Debug("invalid task ID in path", slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeInvalidRequest, "Invalid task ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseTaskFilter builds a store.TaskFilter from the list endpoint's query
// parameters.
func parseTaskFilter(r *http.Request) (store.TaskFilter, error) {
	var filter store.TaskFilter
	q := r.URL.Query()

	if raw := q.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return store.TaskFilter{}, err
		}
		filter.Completed = &completed
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return store.TaskFilter{}, err
		}
		filter.Limit = limit
	}

	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return store.TaskFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
