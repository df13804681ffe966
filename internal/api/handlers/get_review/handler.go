package get_review

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

const msgInvalidReviewID = "Review ID must be a positive integer."

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

// Handle GET /api/reviews/{reviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := handlers.ParsePositiveID(mux.Vars(r)["reviewId"])
	if !ok {
		h.logger.Warn("GET /reviews/{id} - Invalid review ID: %q", mux.Vars(r)["reviewId"])
		handlers.RespondValidation(w, handlers.LocationParams, "reviewId", msgInvalidReviewID)
		return
	}

	review, err := h.service.GetByID(r.Context(), reviewID)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("GET /reviews/{id} - Failed to get review: review_id=%d, error=%v", reviewID, err)
		} else {
			h.logger.Warn("GET /reviews/{id} - Rejected: review_id=%d, %s", reviewID, handlers.DescribeError(err))
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, review)
}
