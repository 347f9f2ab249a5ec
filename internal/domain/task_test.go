package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("with_description", func(t *testing.T) {
		t.Parallel()

		desc := "write the report"
		task, err := NewTask("Report", &desc, 1)
		require.NoError(t, err)

		assert.Equal(t, "Report", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, desc, *task.Description)
		assert.False(t, task.Completed, "new tasks start incomplete")
		assert.Equal(t, int64(1), task.UserID)
		assert.Equal(t, task.CreatedAt, task.UpdatedAt,
			"created and updated timestamps match at creation")
	})

	t.Run("without_description", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask("Minimal", nil, 1)
		require.NoError(t, err)
		assert.Nil(t, task.Description)
	})
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		userID  int64
		wantErr error
	}{
		{
			name:    "valid_task",
			title:   "T",
			userID:  1,
			wantErr: nil,
		},
		{
			name:    "empty_title",
			title:   "",
			userID:  1,
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title_too_long",
			title:   strings.Repeat("t", MaxTitleLength+1),
			userID:  1,
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "missing_owner",
			title:   "T",
			userID:  0,
			wantErr: ErrEmptyOwner,
		},
		{
			name:    "negative_owner",
			title:   "T",
			userID:  -3,
			wantErr: ErrEmptyOwner,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task := &Task{Title: tt.title, UserID: tt.userID}
			err := task.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
