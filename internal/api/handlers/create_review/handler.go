package create_review

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

const (
	msgUnauthorized       = "Unauthorized access"
	msgInvalidRequestBody = "Request body must be a JSON object."
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

// Handle POST /api/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondValidation(w, handlers.LocationBody, "body", msgInvalidRequestBody)
		return
	}
	req.CustomerID = customerID

	review, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("POST /reviews - Failed to create review: customer_id=%d, error=%v", customerID, err)
		} else {
			h.logger.Warn("POST /reviews - Rejected: customer_id=%d, %s", customerID, handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("POST /reviews - Review created successfully: review_id=%d, customer_id=%d", review.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
