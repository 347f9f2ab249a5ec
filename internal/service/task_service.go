package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/taskhub-api/internal/domain"
	"github.com/phrazzld/taskhub-api/internal/platform/logger"
	"github.com/phrazzld/taskhub-api/internal/store"
)

// TaskService implements task-related use cases. Operations that depend on an
// owner check run the check and the write inside the same transaction.
type TaskService struct {
	db    *sql.DB
	tasks store.TaskStore
	users store.UserStore
	runTx txRunner
}

// NewTaskService creates a new TaskService backed by the given database
// connection and stores.
func NewTaskService(db *sql.DB, tasks store.TaskStore, users store.UserStore) *TaskService {
	return &TaskService{
		db:    db,
		tasks: tasks,
		users: users,
		runTx: store.RunInTransaction,
	}
}

// CreateTask validates and persists a new task for the given owner.
// The owner lookup and the insert share one transaction, so the task is never
// written when the owner is missing. Returns store.ErrUserNotFound when the
// owner does not exist, or a domain validation error for invalid fields.
func (s *TaskService) CreateTask(ctx context.Context, title string, description *string, userID int64) (*domain.Task, error) {
	task, err := domain.NewTask(title, description, userID)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.users.WithTx(tx).GetByID(ctx, userID); err != nil {
			return err
		}
		return s.tasks.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", userID))
	return task, nil
}

// ListTasks returns all tasks, incomplete first, newest first within each
// group.
func (s *TaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		tasks, err = s.tasks.WithTx(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListTasksForUser returns the given user's tasks with the same ordering as
// ListTasks. Returns store.ErrUserNotFound when the user does not exist,
// which distinguishes an unknown user from a user with no tasks.
func (s *TaskService) ListTasksForUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.users.WithTx(tx).GetByID(ctx, userID); err != nil {
			return err
		}
		var err error
		tasks, err = s.tasks.WithTx(tx).ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask applies a partial update to the task with the given ID and
// returns the updated record. Absent patch fields are left unchanged; the
// updated_at timestamp is always refreshed.
// Returns store.ErrTaskNotFound if no such task exists.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, patch store.TaskUpdate) (*domain.Task, error) {
	var task *domain.Task
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		task, err = s.tasks.WithTx(tx).Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("task updated", slog.Int64("task_id", id))
	return task, nil
}

// DeleteTask removes the task with the given ID.
// Returns store.ErrTaskNotFound if no such task exists; a repeated delete of
// the same ID therefore fails rather than silently succeeding.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.tasks.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Debug("task deleted", slog.Int64("task_id", id))
	return nil
}
