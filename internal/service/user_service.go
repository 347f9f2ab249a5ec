package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/taskhub-api/internal/domain"
	"github.com/phrazzld/taskhub-api/internal/platform/logger"
	"github.com/phrazzld/taskhub-api/internal/store"
)

// txRunner begins, commits, and rolls back the transaction that scopes a
// single service operation. Tests substitute a fake that passes a nil tx.
type txRunner func(ctx context.Context, db *sql.DB, fn store.TxFn) error

// UserService implements user-related use cases.
type UserService struct {
	db    *sql.DB
	users store.UserStore
	runTx txRunner
}

// NewUserService creates a new UserService backed by the given database
// connection and user store.
func NewUserService(db *sql.DB, users store.UserStore) *UserService {
	return &UserService{
		db:    db,
		users: users,
		runTx: store.RunInTransaction,
	}
}

// CreateUser validates and persists a new user.
// Returns store.ErrUsernameExists or store.ErrEmailExists on a uniqueness
// conflict, or a domain validation error for invalid fields.
func (s *UserService) CreateUser(ctx context.Context, username, email string) (*domain.User, error) {
	user, err := domain.NewUser(username, email)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.users.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("user created",
		slog.Int64("user_id", user.ID))
	return user, nil
}

// ListUsers returns all users ordered by username ascending.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		users, err = s.users.WithTx(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns the user with the given ID.
// Returns store.ErrUserNotFound if no such user exists.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user *domain.User
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		user, err = s.users.WithTx(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
