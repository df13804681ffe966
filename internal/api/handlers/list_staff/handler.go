package list_staff

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.ListStaff(r.Context())
	if err != nil {
		h.logger.Error("GET /staff - Failed to list staff: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /staff - Staff retrieved successfully: count=%d", len(staff))
	handlers.RespondJSON(w, http.StatusOK, staff)
}
