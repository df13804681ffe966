package get_staff_availability

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getStaffAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_staff_availability"
)

const (
	msgInvalidStaffID   = "Staff ID must be a positive integer."
	msgMissingServiceID = "Service ID is required."
	msgInvalidServiceID = "Service ID must be a positive integer."
	msgMissingDate      = "Date parameter is required."
	msgInvalidDate      = "Date must be a valid ISO 8601 date (e.g., 2025-03-15)."
)

type Handler struct {
	useCase  GetStaffAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetStaffAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/staff/{staffId}/availability
// Query params: date (required, YYYY-MM-DD), serviceId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := handlers.ParsePositiveID(mux.Vars(r)["staffId"])
	if !ok {
		h.logger.Warn("GET /staff/{id}/availability - Invalid staff ID: %q", mux.Vars(r)["staffId"])
		handlers.RespondValidation(w, handlers.LocationParams, "staffId", msgInvalidStaffID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		handlers.RespondValidation(w, handlers.LocationQuery, "date", msgMissingDate)
		return
	}
	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability - Invalid date: %v", err)
		handlers.RespondValidation(w, handlers.LocationQuery, "date", msgInvalidDate)
		return
	}

	serviceIDStr := query.Get("serviceId")
	if serviceIDStr == "" {
		handlers.RespondValidation(w, handlers.LocationQuery, "serviceId", msgMissingServiceID)
		return
	}
	serviceID, ok := handlers.ParsePositiveID(serviceIDStr)
	if !ok {
		h.logger.Warn("GET /staff/{id}/availability - Invalid service ID: %q", serviceIDStr)
		handlers.RespondValidation(w, handlers.LocationQuery, "serviceId", msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getStaffAvailability.Request{
		StaffID:   staffID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("GET /staff/{id}/availability - Failed to get availability: staff_id=%d, error=%v",
				staffID, err)
		} else {
			h.logger.Warn("GET /staff/{id}/availability - Rejected: staff_id=%d, %s",
				staffID, handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("GET /staff/{id}/availability - Slots retrieved: staff_id=%d, date=%s, count=%d",
		staffID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result.Slots)
}
