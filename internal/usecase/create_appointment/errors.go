package create_appointment

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrStoreClosed возвращается, когда время начала вне часов работы салона
	ErrStoreClosed = domain.Unprocessable("The store is closed during the selected time.")

	// ErrStaffNotExists возвращается, когда сотрудник не найден
	ErrStaffNotExists = domain.Validation("staffId", "Staff member does not exist.")

	// ErrNotAligned возвращается, когда время начала не кратно 15 минутам
	ErrNotAligned = domain.Validation("date", "Appointments must be scheduled in 15-minute intervals.")

	// ErrDateInPast возвращается, когда время начала в прошлом
	ErrDateInPast = domain.Validation("date", "Appointment date cannot be in the past.")

	// ErrServiceNotFound возвращается, когда услуга с таким названием не найдена
	ErrServiceNotFound = domain.NotFound("Service not found.")

	// ErrStaffUnavailable возвращается, когда у сотрудника есть пересекающийся приём
	ErrStaffUnavailable = domain.Conflict("This staff member is not available during the selected time.")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
