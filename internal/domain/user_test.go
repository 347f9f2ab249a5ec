package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("ann", "ann@example.com")
	require.NoError(t, err)

	assert.Equal(t, "ann", user.Username)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.True(t, user.IsActive, "new users should be active by default")
	assert.Zero(t, user.ID, "the ID is assigned by the store, not the constructor")
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{
			name:     "valid_user",
			username: "ann",
			email:    "ann@example.com",
			wantErr:  nil,
		},
		{
			name:     "empty_username",
			username: "",
			email:    "ann@example.com",
			wantErr:  ErrEmptyUsername,
		},
		{
			name:     "username_too_long",
			username: strings.Repeat("a", MaxUsernameLength+1),
			email:    "ann@example.com",
			wantErr:  ErrUsernameTooLong,
		},
		{
			name:     "empty_email",
			username: "ann",
			email:    "",
			wantErr:  ErrEmptyEmail,
		},
		{
			name:     "email_too_long",
			username: "ann",
			email:    strings.Repeat("a", MaxEmailLength) + "@x.com",
			wantErr:  ErrEmailTooLong,
		},
		{
			name:     "email_without_address_shape_accepted",
			username: "bob",
			email:    "bob",
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			user := &User{Username: tt.username, Email: tt.email, IsActive: true}
			err := user.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation,
				"all validation errors must wrap ErrValidation")
		})
	}
}
