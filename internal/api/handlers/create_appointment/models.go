package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model.
// customerId берётся из токена, а не из тела
type CreateAppointmentRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"` // ISO 8601
	StaffID int64  `json:"staffId"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	CustomerID    int64  `json:"customerId"`
	Service       string `json:"service"`
	Date          string `json:"date"` // UTC, RFC 3339
	StaffID       int64  `json:"staffId"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID: resp.ID,
		CustomerID:    resp.CustomerID,
		Service:       resp.ServiceName,
		Date:          resp.Date.UTC().Format(time.RFC3339),
		StaffID:       resp.StaffID,
	}
}
