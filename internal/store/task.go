package store

import (
	"context"

	"github.com/evotodo/taskapi/internal/domain"
	"github.com/google/uuid"
)

// TaskFilter narrows List results. A nil Completed means "any".
type TaskFilter struct {
	Completed *bool
	Limit     int
	Offset    int
}

// TaskStore defines the persistence operations for tasks.
type TaskStore interface {
	// Create saves a new task.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List retrieves tasks matching the filter, newest first.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// Update replaces an existing task's title, description and completion
	// flag. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
