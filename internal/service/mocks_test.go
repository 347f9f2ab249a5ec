package service

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskhub-api/internal/domain"
	"github.com/phrazzld/taskhub-api/internal/store"
)

// fakeTxRunner substitutes for store.RunInTransaction in unit tests: it
// invokes the function with a nil transaction, which the mock stores ignore.
func fakeTxRunner(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

// mockUserStore is a function-field mock of store.UserStore.
type mockUserStore struct {
	CreateFn  func(ctx context.Context, user *domain.User) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	ListFn    func(ctx context.Context) ([]*domain.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// mockTaskStore is a function-field mock of store.TaskStore.
type mockTaskStore struct {
	CreateFn     func(ctx context.Context, task *domain.Task) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Task, error)
	ListFn       func(ctx context.Context) ([]*domain.Task, error)
	ListByUserFn func(ctx context.Context, userID int64) ([]*domain.Task, error)
	UpdateFn     func(ctx context.Context, id int64, patch store.TaskUpdate) (*domain.Task, error)
	DeleteFn     func(ctx context.Context, id int64) error
}

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockTaskStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskStore) Update(ctx context.Context, id int64, patch store.TaskUpdate) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockTaskStore) WithTx(tx *sql.Tx) store.TaskStore { return m }
