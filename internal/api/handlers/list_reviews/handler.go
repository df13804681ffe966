package list_reviews

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reviews - Failed to list reviews: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /reviews - Reviews retrieved successfully: count=%d", len(reviews))
	handlers.RespondJSON(w, http.StatusOK, reviews)
}
