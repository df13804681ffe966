package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// Service сервис для чтения и удаления приёмов
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса приёмов
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// ListByCustomer возвращает приёмы клиента. Клиент может смотреть только свои приёмы
func (s *Service) ListByCustomer(ctx context.Context, customerID, callerID int64) ([]models.AppointmentResponse, error) {
	s.logger.Info("ListByCustomer: customer=%d, caller=%d", customerID, callerID)

	if customerID != callerID {
		s.logger.Warn("ListByCustomer: caller=%d is not allowed to view appointments of customer=%d",
			callerID, customerID)
		return nil, ErrViewForbidden
	}

	list, err := s.appointmentRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: found %d appointments for customer=%d", len(list), customerID)
	return models.FromDomainAppointments(list), nil
}

// Delete удаляет приём. Удалить может только владелец
func (s *Service) Delete(ctx context.Context, appointmentID, callerID int64) error {
	s.logger.Info("Delete: appointment id=%d by customer=%d", appointmentID, callerID)

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", appointmentID)
			return errAppointmentNotFound(appointmentID)
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !appointment.IsOwnedBy(callerID) {
		s.logger.Warn("Delete: customer=%d is not owner of appointment id=%d", callerID, appointmentID)
		return ErrDeleteForbidden
	}

	if err := s.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		// Приём мог быть удалён параллельным запросом
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found during delete", appointmentID)
			return errAppointmentNotFound(appointmentID)
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", appointmentID)
	return nil
}
