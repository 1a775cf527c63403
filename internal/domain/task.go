package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = errors.New("task title cannot be empty")

	// ErrTaskTitleTooLong is returned when a task's title exceeds the
	// maximum length.
	ErrTaskTitleTooLong = errors.New("task title cannot exceed 500 characters")
)

// MaxTitleLength is the maximum number of characters allowed in a task title.
const MaxTitleLength = 500

// Task represents a single todo item managed by the API.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task with the given title and description.
// It generates a new UUID for the task ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewTask(title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if len(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	return nil
}

// UpdateTitle replaces the task's title and updates the UpdatedAt timestamp.
// Returns an error if the new title is invalid; the task is left unchanged
// in that case.
func (t *Task) UpdateTitle(title string) error {
	orig := t.Title
	t.Title = title

	if err := t.Validate(); err != nil {
		t.Title = orig
		return err
	}

	t.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateDescription replaces the task's description and updates the
// UpdatedAt timestamp. Descriptions may be empty.
func (t *Task) UpdateDescription(description string) {
	t.Description = description
	t.UpdatedAt = time.Now().UTC()
}

// SetCompleted sets the task's completion flag and updates the UpdatedAt
// timestamp.
func (t *Task) SetCompleted(completed bool) {
	t.Completed = completed
	t.UpdatedAt = time.Now().UTC()
}
