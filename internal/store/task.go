package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskhub-api/internal/domain"
)

// TaskUpdate describes a partial update to a task. A nil field leaves the
// corresponding column unchanged. ClearDescription distinguishes an explicit
// null (clear the description) from an absent field.
type TaskUpdate struct {
	Title            *string
	Description      *string
	ClearDescription bool
	Completed        *bool
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and populates the
	// system-generated ID on the passed entity.
	// Returns ErrUserNotFound if the owning user does not exist
	// (foreign key violation).
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List retrieves all tasks ordered by completed ascending (incomplete
	// first), then created_at descending (newest first) within each group.
	// Returns an empty slice when the store holds no tasks.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListByUser retrieves the given user's tasks with the same ordering
	// as List. Returns an empty slice when the user has no tasks; owner
	// existence is the caller's concern.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)

	// Update applies the patch to the task with the given ID, refreshes its
	// updated_at timestamp, and returns the full updated row.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, id int64, patch TaskUpdate) (*domain.Task, error)

	// Delete removes the task with the given ID.
	// Returns ErrTaskNotFound if the task does not exist, including when it
	// was already deleted by an earlier call.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service running inside RunInTransaction).
	WithTx(tx *sql.Tx) TaskStore
}
