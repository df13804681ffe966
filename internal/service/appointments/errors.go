package appointments

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrViewForbidden возвращается при попытке посмотреть чужие приёмы
	ErrViewForbidden = domain.Forbidden("You do not have permission to view these appointments.")

	// ErrDeleteForbidden возвращается при попытке удалить чужой приём
	ErrDeleteForbidden = domain.Forbidden("You do not have permission to delete this appointment.")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)

func errAppointmentNotFound(id int64) error {
	return domain.NotFound("No appointment found with ID %d", id)
}
