package update_appointment

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrNothingToUpdate возвращается, когда не передано ни одно изменяемое поле
	ErrNothingToUpdate = domain.Validation("body", "At least one of date, service or staffId must be provided.")

	// ErrForbidden возвращается, когда приём принадлежит другому клиенту
	ErrForbidden = domain.Forbidden("You do not have permission to update this appointment.")

	// ErrStoreClosed возвращается, когда новое время начала вне часов работы салона
	ErrStoreClosed = domain.Unprocessable("The store is closed during the selected time.")

	// ErrNotAligned возвращается, когда новое время начала не кратно 15 минутам
	ErrNotAligned = domain.Validation("date", "Appointments must be scheduled in 15-minute intervals.")

	// ErrStaffNotExists возвращается, когда новый сотрудник не найден
	ErrStaffNotExists = domain.Validation("staffId", "Staff member does not exist.")

	// ErrServiceNotFound возвращается, когда новая услуга не найдена
	ErrServiceNotFound = domain.NotFound("Service not found.")

	// ErrStaffUnavailable возвращается, когда новый интервал пересекается с другим приёмом сотрудника
	ErrStaffUnavailable = domain.Conflict("This staff member is not available during the selected time.")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)

func errAppointmentNotFound(id int64) error {
	return domain.NotFound("No appointment found with ID %d", id)
}
