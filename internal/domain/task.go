package domain

import (
	"fmt"
	"time"
)

// MaxTitleLength is the title limit enforced by the tasks table schema.
const MaxTitleLength = 200

// Task-specific validation errors. All wrap ErrValidation.
var (
	ErrEmptyTitle   = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong = fmt.Errorf("%w: title exceeds %d characters", ErrValidation, MaxTitleLength)
	ErrEmptyOwner   = fmt.Errorf("%w: task must reference an owner", ErrValidation)
)

// Task represents a unit of work owned by a User.
// Description is optional; a nil value means the task has no description.
// UpdatedAt is refreshed by the store on every mutation, CreatedAt never is.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task for the given owner.
// The ID is assigned by the store on insert; Completed defaults to false.
// Returns an error if validation fails. Owner existence is checked by the
// service layer inside the same transaction as the insert.
func NewTask(title string, description *string, userID int64) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		Completed:   false,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if t.UserID <= 0 {
		return ErrEmptyOwner
	}
	return nil
}
