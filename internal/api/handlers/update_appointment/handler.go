package update_appointment

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	updateAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_appointment"
)

const (
	msgUnauthorized         = "Unauthorized access"
	msgInvalidAppointmentID = "Appointment ID must be a positive integer."
	msgInvalidRequestBody   = "Request body must be a JSON object."
	msgServiceRequired      = "Service must not be empty."
	msgInvalidDate          = "Date must be a valid ISO 8601 date."
	msgInvalidStaffID       = "Staff ID must be a positive integer."
)

type Handler struct {
	useCase  UpdateAppointmentUseCase
	services *handlers.ServiceAllowlist
	location *time.Location
	logger   Logger
}

func NewHandler(
	useCase UpdateAppointmentUseCase,
	services *handlers.ServiceAllowlist,
	location *time.Location,
	logger Logger,
) *Handler {
	return &Handler{
		useCase:  useCase,
		services: services,
		location: location,
		logger:   logger,
	}
}

// Handle PATCH /api/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	appointmentID, ok := handlers.ParsePositiveID(mux.Vars(r)["appointmentId"])
	if !ok {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %q", mux.Vars(r)["appointmentId"])
		handlers.RespondValidation(w, handlers.LocationParams, "appointmentId", msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondValidation(w, handlers.LocationBody, "body", msgInvalidRequestBody)
		return
	}

	useCaseReq := &updateAppointment.Request{
		AppointmentID: appointmentID,
		CustomerID:    customerID,
		ServiceName:   req.Service,
		StaffID:       req.StaffID,
	}

	if req.Service != nil {
		switch {
		case *req.Service == "":
			handlers.RespondValidation(w, handlers.LocationBody, "service", msgServiceRequired)
			return
		case !h.services.Allows(*req.Service):
			h.logger.Warn("PATCH /appointments/{id} - Service not allowed: %q", *req.Service)
			handlers.RespondValidation(w, handlers.LocationBody, "service", h.services.Message())
			return
		}
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		handlers.RespondValidation(w, handlers.LocationBody, "staffId", msgInvalidStaffID)
		return
	}

	if req.Date != nil {
		date, err := handlers.ParseDateTime(*req.Date, h.location)
		if err != nil {
			h.logger.Warn("PATCH /appointments/{id} - Invalid date: %v", err)
			handlers.RespondValidation(w, handlers.LocationBody, "date", msgInvalidDate)
			return
		}
		useCaseReq.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v",
				appointmentID, err)
		} else {
			h.logger.Warn("PATCH /appointments/{id} - Rejected: appointment_id=%d, customer_id=%d, %s",
				appointmentID, customerID, handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
