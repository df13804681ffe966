package create_appointment

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
)

const (
	msgUnauthorized       = "Unauthorized access"
	msgInvalidRequestBody = "Request body must be a JSON object."
	msgServiceRequired    = "Service is required."
	msgDateRequired       = "Date is required."
	msgInvalidDate        = "Date must be a valid ISO 8601 date."
	msgInvalidStaffID     = "Staff ID must be a positive integer."
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	services *handlers.ServiceAllowlist
	location *time.Location
	logger   Logger
}

func NewHandler(
	useCase CreateAppointmentUseCase,
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

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondValidation(w, handlers.LocationBody, "body", msgInvalidRequestBody)
		return
	}

	// Валидация входных данных до вызова use case
	switch {
	case req.Service == "":
		handlers.RespondValidation(w, handlers.LocationBody, "service", msgServiceRequired)
		return
	case !h.services.Allows(req.Service):
		h.logger.Warn("POST /appointments - Service not allowed: %q", req.Service)
		handlers.RespondValidation(w, handlers.LocationBody, "service", h.services.Message())
		return
	case req.Date == "":
		handlers.RespondValidation(w, handlers.LocationBody, "date", msgDateRequired)
		return
	case req.StaffID <= 0:
		handlers.RespondValidation(w, handlers.LocationBody, "staffId", msgInvalidStaffID)
		return
	}

	date, err := handlers.ParseDateTime(req.Date, h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date: %v", err)
		handlers.RespondValidation(w, handlers.LocationBody, "date", msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createAppointment.Request{
		CustomerID:  customerID,
		ServiceName: req.Service,
		Date:        date,
		StaffID:     req.StaffID,
	})
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, staff_id=%d, error=%v",
				customerID, req.StaffID, err)
		} else {
			h.logger.Warn("POST /appointments - Rejected: customer_id=%d, staff_id=%d, %s",
				customerID, req.StaffID, handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, customer_id=%d, staff_id=%d",
		result.ID, customerID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
