package api

import (
	"context"
	"net/http"
	"time"

	"github.com/phrazzld/taskhub-api/internal/api/shared"
	"github.com/phrazzld/taskhub-api/internal/platform/logger"
)

// Pinger is the slice of *sql.DB the health check needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body returned by GET /api/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// GreetingResponse is the body returned by GET /.
type GreetingResponse struct {
	Message string `json:"message"`
}

// HealthHandler serves the greeting and health endpoints.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Greeting handles GET / requests.
func (h *HealthHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK,
		GreetingResponse{Message: "Hello from the Task Hub API!"})
}

// Health handles GET /api/health requests. The database is pinged with a
// short timeout so a stalled pool turns the check unhealthy instead of
// hanging it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "healthy", Database: "connected"}
	status := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(r.Context()).Error("health check database ping failed",
			"error", err)
		resp = HealthResponse{Status: "unhealthy", Database: "unreachable"}
		status = http.StatusServiceUnavailable
	}

	shared.RespondWithJSON(w, r, status, resp)
}
