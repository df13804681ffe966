package update_appointment

import (
	"time"

	updateAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model. Отсутствующие поля не изменяются
type UpdateAppointmentRequest struct {
	Service *string `json:"service,omitempty"`
	Date    *string `json:"date,omitempty"` // ISO 8601
	StaffID *int64  `json:"staffId,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentID   int64  `json:"appointmentId"`
	CustomerID      int64  `json:"customerId"`
	Service         string `json:"service"`
	Date            string `json:"date"` // UTC, RFC 3339
	StaffID         int64  `json:"staffId"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID:   resp.ID,
		CustomerID:      resp.CustomerID,
		Service:         resp.ServiceName,
		Date:            resp.Date.UTC().Format(time.RFC3339),
		StaffID:         resp.StaffID,
		DurationMinutes: resp.DurationMinutes,
	}
}
