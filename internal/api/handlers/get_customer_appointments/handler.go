package get_customer_appointments

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const (
	msgInvalidCustomerID = "Customer ID must be a positive integer."
	msgUnauthorized      = "Unauthorized access"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/appointments/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	customerID, ok := handlers.ParsePositiveID(mux.Vars(r)["customerId"])
	if !ok {
		h.logger.Warn("GET /appointments/{customerId} - Invalid customer ID: %q", mux.Vars(r)["customerId"])
		handlers.RespondValidation(w, handlers.LocationParams, "customerId", msgInvalidCustomerID)
		return
	}

	result, err := h.service.ListByCustomer(r.Context(), customerID, callerID)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("GET /appointments/{customerId} - Failed to get appointments: customer_id=%d, error=%v",
				customerID, err)
		} else {
			h.logger.Warn("GET /appointments/{customerId} - Rejected: customer_id=%d, caller=%d, %s",
				customerID, callerID, handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("GET /appointments/{customerId} - Appointments retrieved successfully: customer_id=%d, count=%d",
		customerID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
