package delete_appointment

import "context"

type AppointmentService interface {
	Delete(ctx context.Context, appointmentID, callerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
