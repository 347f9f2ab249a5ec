package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/taskhub-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users are never updated or deleted through this interface; the schema's
// cascade rule removes a user's tasks if a row is ever deleted out of band.
type UserStore interface {
	// Create saves a new user to the store and populates the
	// system-generated ID on the passed entity.
	// Returns ErrUsernameExists or ErrEmailExists if the corresponding
	// unique field is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// List retrieves all users ordered by username ascending.
	// Returns an empty slice when the store holds no users.
	List(ctx context.Context) ([]*domain.User, error)

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service running inside RunInTransaction).
	WithTx(tx *sql.Tx) UserStore
}
