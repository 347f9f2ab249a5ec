package api

import (
	"encoding/json"
	"time"

	"github.com/phrazzld/taskhub-api/internal/domain"
)

// CreateUserRequest represents the request body for creating a new user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Email    string `json:"email"    validate:"required,max=100"`
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTaskRequest represents the request body for creating a new task.
type CreateTaskRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	UserID      int64   `json:"user_id"     validate:"required,gt=0"`
}

// UpdateTaskRequest represents the request body for partially updating a
// task. Absent fields leave the task unchanged; an explicit null description
// clears it.
type UpdateTaskRequest struct {
	Title       *string        `json:"title"     validate:"omitempty,min=1,max=200"`
	Description NullableString `json:"description"`
	Completed   *bool          `json:"completed"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NullableString distinguishes the three states a JSON string field can be
// in: absent (Set=false), explicitly null (Set=true, Value=nil), and present
// (Set=true, Value non-nil). encoding/json only invokes UnmarshalJSON for
// fields that appear in the payload, which is what makes Set reliable.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true
	if string(data) == "null" {
		ns.Value = nil
		return nil
	}
	return json.Unmarshal(data, &ns.Value)
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// usersToResponse converts a slice of users, always yielding a non-nil slice
// so an empty store serializes as [] rather than null.
func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		UserID:      task.UserID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// tasksToResponse converts a slice of tasks, always yielding a non-nil slice.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
