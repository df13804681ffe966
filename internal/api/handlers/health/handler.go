package health

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// Ping GET /api/health/ping
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, PingResponse{Pong: true})
}

// Version GET /api/health/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, VersionResponse{Version: h.version, Status: "up"})
}
