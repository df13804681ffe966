package delete_appointment

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const (
	msgUnauthorized         = "Unauthorized access"
	msgInvalidAppointmentID = "Appointment ID must be a positive integer."
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

// Handle DELETE /api/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID, ok := handlers.ParsePositiveID(mux.Vars(r)["appointmentId"])
	if !ok {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %q", mux.Vars(r)["appointmentId"])
		handlers.RespondValidation(w, handlers.LocationParams, "appointmentId", msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), appointmentID, customerID); err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%d, error=%v",
				appointmentID, err)
		} else {
			h.logger.Warn("DELETE /appointments/{id} - Rejected: appointment_id=%d, customer_id=%d, %s",
				appointmentID, customerID, handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted successfully: appointment_id=%d", appointmentID)
	handlers.RespondNoContent(w)
}
