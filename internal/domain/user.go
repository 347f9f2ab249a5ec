package domain

import (
	"fmt"
	"time"
)

// Field length limits enforced by the users table schema.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 100
)

// User-specific validation errors. All wrap ErrValidation.
var (
	ErrEmptyUsername   = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrUsernameTooLong = fmt.Errorf("%w: username exceeds %d characters", ErrValidation, MaxUsernameLength)
	ErrEmptyEmail      = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrEmailTooLong    = fmt.Errorf("%w: email exceeds %d characters", ErrValidation, MaxEmailLength)
)

// User represents a registered user of the application.
// Users are immutable after creation: no update or delete operation exists,
// and the ID and CreatedAt fields are assigned by the store.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username and email.
// The ID is assigned by the store on insert; IsActive defaults to true.
// Returns an error if validation fails.
func NewUser(username, email string) (*User, error) {
	user := &User{
		Username:  username,
		Email:     email,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}

	// Emails are only checked for presence and length: any non-empty string
	// is accepted, so registration never fails on address shape.
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if len(u.Email) > MaxEmailLength {
		return ErrEmailTooLong
	}

	return nil
}
