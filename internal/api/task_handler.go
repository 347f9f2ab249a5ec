package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/taskhub-api/internal/api/shared"
	"github.com/phrazzld/taskhub-api/internal/domain"
	"github.com/phrazzld/taskhub-api/internal/platform/logger"
	"github.com/phrazzld/taskhub-api/internal/store"
)

// TaskService defines the task use cases the handler depends on.
type TaskService interface {
	CreateTask(ctx context.Context, title string, description *string, userID int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	ListTasksForUser(ctx context.Context, userID int64) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, patch store.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /api/tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("task create validation failed", "error", err)
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.Title, req.Description, req.UserID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ListTasks handles GET /api/tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// ListUserTasks handles GET /api/users/{id}/tasks requests.
func (h *TaskHandler) ListUserTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	tasks, err := h.taskService.ListTasksForUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// UpdateTask handles PUT /api/tasks/{id} requests.
// The body is a partial patch: absent fields leave the task unchanged, an
// explicit null description clears it.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("task update validation failed", "error", err)
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}

	patch := store.TaskUpdate{
		Title:     req.Title,
		Completed: req.Completed,
	}
	if req.Description.Set {
		if req.Description.Value == nil {
			patch.ClearDescription = true
		} else {
			patch.Description = req.Description.Value
		}
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.MessageResponse{Message: "Task deleted successfully"})
}
