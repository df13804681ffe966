package delete_review

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const (
	msgUnauthorized    = "Unauthorized access"
	msgInvalidReviewID = "Review ID must be a positive integer."
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

// Handle DELETE /api/reviews/{reviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reviewID, ok := handlers.ParsePositiveID(mux.Vars(r)["reviewId"])
	if !ok {
		h.logger.Warn("DELETE /reviews/{id} - Invalid review ID: %q", mux.Vars(r)["reviewId"])
		handlers.RespondValidation(w, handlers.LocationParams, "reviewId", msgInvalidReviewID)
		return
	}

	if err := h.service.Delete(r.Context(), reviewID, customerID); err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("DELETE /reviews/{id} - Failed to delete review: review_id=%d, error=%v", reviewID, err)
		} else {
			h.logger.Warn("DELETE /reviews/{id} - Rejected: review_id=%d, customer_id=%d, %s",
				reviewID, customerID, handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deleted successfully: review_id=%d", reviewID)
	handlers.RespondNoContent(w)
}
