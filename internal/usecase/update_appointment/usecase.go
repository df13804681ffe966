package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
)

// UseCase use case для переноса приёма или смены услуги/сотрудника
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	hours           *domain.OperatingHours
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	hours *domain.OperatingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		hours:           hours,
		logger:          logger,
	}
}

// Execute выполняет use case изменения приёма.
// Проверка на прошедшую дату при изменении не выполняется.
// Если услуга не меняется, сохраняется длительность, зафиксированная при бронировании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, customer=%d", req.AppointmentID, req.CustomerID)

	// 1. Должно быть передано хотя бы одно поле
	if !hasChanges(req) {
		uc.logger.Warn("UpdateAppointment: id=%d nothing to update", req.AppointmentID)
		return nil, ErrNothingToUpdate
	}

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Загружаем приём (с блокировкой строки)
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
				return errAppointmentNotFound(req.AppointmentID)
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 3. Владелец проверяется сразу после загрузки
		if !appointment.IsOwnedBy(req.CustomerID) {
			uc.logger.Warn("UpdateAppointment: customer=%d is not owner of appointment id=%d",
				req.CustomerID, req.AppointmentID)
			return ErrForbidden
		}

		updated := *appointment

		// 4. Новое время начала
		if req.Date != nil {
			if !uc.hours.IsOpenAt(*req.Date) {
				uc.logger.Warn("UpdateAppointment: store is closed at %s", req.Date.In(uc.hours.Location()))
				return ErrStoreClosed
			}
			if !isAligned(*req.Date, uc.hours.Location()) {
				uc.logger.Warn("UpdateAppointment: start %s is not aligned", *req.Date)
				return ErrNotAligned
			}
			updated.StartTime = *req.Date
		}

		// 5. Новый сотрудник
		if req.StaffID != nil {
			if _, err := uc.catalogRepo.GetStaffByID(txCtx, *req.StaffID); err != nil {
				if errors.Is(err, catalogRepo.ErrStaffNotFound) {
					uc.logger.Warn("UpdateAppointment: staff id=%d not found", *req.StaffID)
					return ErrStaffNotExists
				}
				uc.logger.Error("UpdateAppointment: failed to get staff id=%d: %v", *req.StaffID, err)
				return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
			}
			updated.StaffID = *req.StaffID
		}

		// 6. Новая услуга: длительность берётся из текущей версии услуги
		if req.ServiceName != nil {
			service, err := uc.catalogRepo.GetServiceByName(txCtx, *req.ServiceName)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrServiceNotFound) {
					uc.logger.Warn("UpdateAppointment: service %q not found", *req.ServiceName)
					return ErrServiceNotFound
				}
				uc.logger.Error("UpdateAppointment: failed to get service %q: %v", *req.ServiceName, err)
				return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
			}
			updated.ServiceID = service.ID
			updated.ServiceName = service.Name
			updated.DurationMinutes = service.DurationMinutes
		}

		// 7. Проверка пересечений для итогового сотрудника, исключая сам приём
		candidate := updated.Interval()
		from, to := domain.LookupRange(candidate.Start, candidate.End)
		existing, err := uc.appointmentRepo.GetByStaffWithFilter(txCtx, domain.AppointmentsFilter{
			StaffID:   updated.StaffID,
			From:      from,
			To:        to,
			ExcludeID: &updated.ID,
		})
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if domain.HasConflict(updated.StaffID, candidate, existing, &updated.ID) {
			uc.logger.Warn("UpdateAppointment: staff id=%d is busy at %s", updated.StaffID, updated.StartTime)
			return ErrStaffUnavailable
		}

		// 8. Сохраняем
		saved, err := uc.appointmentRepo.Update(txCtx, &updated)
		if err != nil {
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = saved
		return nil
	})

	if err != nil {
		if domain.KindOf(err) == domain.KindInternal && !errors.Is(err, ErrInternal) {
			uc.logger.Error("UpdateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		StaffID:         result.StaffID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		Date:            result.StartTime,
		DurationMinutes: result.DurationMinutes,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
