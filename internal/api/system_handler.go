package api

import (
	"net/http"

	"github.com/evotodo/taskapi/internal/api/shared"
)

// Service identity reported by the root endpoint.
const (
	ServiceName    = "Evolution of Todo API"
	ServiceVersion = "0.1.0"
)

// RootResponse is the service metadata payload returned by GET /.
type RootResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
	Health  string `json:"health"`
}

// SystemHandler serves the unconditional, side-effect-free system
// endpoints: root info, health check and ping.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Root handles GET / requests with service information.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Service: ServiceName,
		Version: ServiceVersion,
		Status:  "running",
		Docs:    "/docs",
		Health:  "/health",
	})
}

// Health handles GET /health requests.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Ping handles GET /api/ping requests. It exists for frontend connectivity
// testing and requires no authentication.
func (h *SystemHandler) Ping(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"ping": "pong",
		"cors": "enabled",
	})
}
