package service

import (
	"context"
	"testing"

	"github.com/phrazzld/taskhub-api/internal/domain"
	"github.com/phrazzld/taskhub-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(users store.UserStore) *UserService {
	return &UserService{users: users, runTx: fakeTxRunner}
}

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("assigns_store_generated_id", func(t *testing.T) {
		t.Parallel()

		users := &mockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				user.ID = 42
				return nil
			},
		}
		svc := newTestUserService(users)

		user, err := svc.CreateUser(context.Background(), "ann", "ann@x.com")
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.True(t, user.IsActive)
	})

	t.Run("rejects_invalid_input_before_store", func(t *testing.T) {
		t.Parallel()

		storeCalled := false
		users := &mockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				storeCalled = true
				return nil
			},
		}
		svc := newTestUserService(users)

		_, err := svc.CreateUser(context.Background(), "", "ann@x.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.False(t, storeCalled, "invalid input must never reach the store")
	})

	t.Run("propagates_conflict", func(t *testing.T) {
		t.Parallel()

		users := &mockUserStore{
			CreateFn: func(ctx context.Context, user *domain.User) error {
				return store.ErrEmailExists
			},
		}
		svc := newTestUserService(users)

		_, err := svc.CreateUser(context.Background(), "ann", "ann@x.com")
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Parallel()

	users := &mockUserStore{
		GetByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id == 1 {
				return &domain.User{ID: 1, Username: "ann"}, nil
			}
			return nil, store.ErrUserNotFound
		},
	}
	svc := newTestUserService(users)

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ann", user.Username)

	_, err = svc.GetUser(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	users := &mockUserStore{
		ListFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{}, nil
		},
	}
	svc := newTestUserService(users)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
