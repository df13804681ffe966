package update_appointment

import "time"

// Request модель запроса на изменение приёма.
// nil поля не изменяются
type Request struct {
	AppointmentID int64
	CustomerID    int64 // ID клиента из токена
	Date          *time.Time
	ServiceName   *string
	StaffID       *int64
}

// Response модель ответа с изменённым приёмом
type Response struct {
	ID              int64
	CustomerID      int64
	StaffID         int64
	ServiceID       int64
	ServiceName     string
	Date            time.Time
	DurationMinutes int
	UpdatedAt       time.Time
}
