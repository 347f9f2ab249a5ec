//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/taskhub-api/internal/domain"
	"github.com/phrazzld/taskhub-api/internal/platform/postgres"
	"github.com/phrazzld/taskhub-api/internal/store"
	"github.com/phrazzld/taskhub-api/migrations"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to the database named by DATABASE_URL and applies the
// embedded migrations. Tests run inside a rolled-back transaction for
// isolation, so they can execute in any order without cleanup.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "database must be reachable")

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "."))

	return db
}

// withTx runs fn inside a transaction that is always rolled back.
func withTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	fn(t, tx)
}

func mustCreateUser(t *testing.T, users store.UserStore, username, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(username, email)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestUserStoreCreate(t *testing.T) {
	db := openTestDB(t)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewUserStore(tx, nil)
		ctx := context.Background()

		first := mustCreateUser(t, users, "ann", "ann@example.com")
		second := mustCreateUser(t, users, "bob", "bob@example.com")
		assert.NotEqual(t, first.ID, second.ID, "IDs are never reissued")

		t.Run("duplicate_username", func(t *testing.T) {
			dup, err := domain.NewUser("ann", "other@example.com")
			require.NoError(t, err)
			err = users.Create(ctx, dup)
			assert.ErrorIs(t, err, store.ErrUsernameExists)
			assert.ErrorIs(t, err, store.ErrDuplicate)
		})

		t.Run("duplicate_email", func(t *testing.T) {
			dup, err := domain.NewUser("carol", "ann@example.com")
			require.NoError(t, err)
			err = users.Create(ctx, dup)
			assert.ErrorIs(t, err, store.ErrEmailExists)
			assert.ErrorIs(t, err, store.ErrDuplicate)
		})
	})
}

func TestUserStoreGetAndList(t *testing.T) {
	db := openTestDB(t)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewUserStore(tx, nil)
		ctx := context.Background()

		listed, err := users.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, listed, "empty store yields empty sequence")

		// Insert out of alphabetical order to exercise the sort.
		mustCreateUser(t, users, "zoe", "zoe@example.com")
		ann := mustCreateUser(t, users, "ann", "ann@example.com")
		mustCreateUser(t, users, "bob", "bob@example.com")

		listed, err = users.List(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, "ann", listed[0].Username)
		assert.Equal(t, "bob", listed[1].Username)
		assert.Equal(t, "zoe", listed[2].Username)

		got, err := users.GetByID(ctx, ann.ID)
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", got.Email)
		assert.True(t, got.IsActive)

		_, err = users.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestTaskStoreCreate(t *testing.T) {
	db := openTestDB(t)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewUserStore(tx, nil)
		tasks := postgres.NewTaskStore(tx, nil)
		ctx := context.Background()

		owner := mustCreateUser(t, users, "ann", "ann@example.com")

		desc := "details"
		task, err := domain.NewTask("T", &desc, owner.ID)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))
		assert.NotZero(t, task.ID)
		assert.False(t, task.Completed)

		t.Run("nonexistent_owner_rejected_by_fk", func(t *testing.T) {
			orphan, err := domain.NewTask("orphan", nil, 999999)
			require.NoError(t, err)
			err = tasks.Create(ctx, orphan)
			assert.ErrorIs(t, err, store.ErrUserNotFound)

			// No row may exist after the failed create.
			var count int
			require.NoError(t, tx.QueryRowContext(ctx,
				`SELECT count(*) FROM tasks WHERE title = 'orphan'`).Scan(&count))
			assert.Zero(t, count)
		})
	})
}

func TestTaskStoreListOrdering(t *testing.T) {
	db := openTestDB(t)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewUserStore(tx, nil)
		tasks := postgres.NewTaskStore(tx, nil)
		ctx := context.Background()

		owner := mustCreateUser(t, users, "ann", "ann@example.com")

		// Stagger created_at so the DESC ordering is deterministic.
		base := time.Now().UTC().Add(-time.Hour)
		mk := func(title string, completed bool, offset time.Duration) {
			task := &domain.Task{
				Title:     title,
				Completed: completed,
				UserID:    owner.ID,
				CreatedAt: base.Add(offset),
				UpdatedAt: base.Add(offset),
			}
			require.NoError(t, tasks.Create(ctx, task))
		}

		mk("old_incomplete", false, 0)
		mk("new_incomplete", false, 10*time.Minute)
		mk("old_done", true, 5*time.Minute)
		mk("new_done", true, 20*time.Minute)

		listed, err := tasks.List(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 4)

		titles := make([]string, 0, len(listed))
		for _, task := range listed {
			titles = append(titles, task.Title)
		}
		assert.Equal(t,
			[]string{"new_incomplete", "old_incomplete", "new_done", "old_done"},
			titles,
			"incomplete before completed, newest first within each group")

		byOwner, err := tasks.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, byOwner, 4)

		none, err := tasks.ListByUser(ctx, 999999)
		require.NoError(t, err)
		assert.Empty(t, none, "owner existence is checked by the service, not here")
	})
}

func TestTaskStoreUpdate(t *testing.T) {
	db := openTestDB(t)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewUserStore(tx, nil)
		tasks := postgres.NewTaskStore(tx, nil)
		ctx := context.Background()

		owner := mustCreateUser(t, users, "ann", "ann@example.com")
		desc := "original description"
		task, err := domain.NewTask("Original", &desc, owner.ID)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))

		t.Run("partial_patch_touches_only_named_fields", func(t *testing.T) {
			done := true
			updated, err := tasks.Update(ctx, task.ID, store.TaskUpdate{Completed: &done})
			require.NoError(t, err)

			assert.True(t, updated.Completed)
			assert.Equal(t, "Original", updated.Title)
			require.NotNil(t, updated.Description)
			assert.Equal(t, desc, *updated.Description)
			assert.Equal(t, task.CreatedAt.Unix(), updated.CreatedAt.Unix(),
				"created_at is immutable")
			assert.True(t, updated.UpdatedAt.After(task.UpdatedAt),
				"updated_at must be refreshed")
		})

		t.Run("clear_description", func(t *testing.T) {
			updated, err := tasks.Update(ctx, task.ID, store.TaskUpdate{ClearDescription: true})
			require.NoError(t, err)
			assert.Nil(t, updated.Description)
		})

		t.Run("unknown_id", func(t *testing.T) {
			_, err := tasks.Update(ctx, 999999, store.TaskUpdate{})
			assert.ErrorIs(t, err, store.ErrTaskNotFound)
		})
	})
}

func TestTaskStoreDelete(t *testing.T) {
	db := openTestDB(t)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewUserStore(tx, nil)
		tasks := postgres.NewTaskStore(tx, nil)
		ctx := context.Background()

		owner := mustCreateUser(t, users, "ann", "ann@example.com")
		task, err := domain.NewTask("doomed", nil, owner.ID)
		require.NoError(t, err)
		require.NoError(t, tasks.Create(ctx, task))

		require.NoError(t, tasks.Delete(ctx, task.ID))
		assert.ErrorIs(t, tasks.Delete(ctx, task.ID), store.ErrTaskNotFound,
			"second delete of the same id must fail")

		_, err = tasks.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestCascadeDeleteRemovesTasks(t *testing.T) {
	db := openTestDB(t)

	withTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewUserStore(tx, nil)
		tasks := postgres.NewTaskStore(tx, nil)
		ctx := context.Background()

		owner := mustCreateUser(t, users, "ann", "ann@example.com")
		for i := 0; i < 3; i++ {
			task, err := domain.NewTask(fmt.Sprintf("task %d", i), nil, owner.ID)
			require.NoError(t, err)
			require.NoError(t, tasks.Create(ctx, task))
		}

		// No user delete is exposed through the store; the schema-level
		// cascade is what guarantees no orphaned tasks survive.
		_, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, owner.ID)
		require.NoError(t, err)

		remaining, err := tasks.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}
