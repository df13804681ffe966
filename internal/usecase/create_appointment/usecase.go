package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
)

// UseCase use case для создания приёма
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	hours           *domain.OperatingHours
	timeProvider    TimeProvider
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
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания приёма.
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, staff=%d, service=%q, date=%s",
		req.CustomerID, req.StaffID, req.ServiceName, req.Date.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	start := req.Date

	// 2. Салон должен быть открыт в момент начала
	if !uc.hours.IsOpenAt(start) {
		uc.logger.Warn("CreateAppointment: store is closed at %s", start.In(uc.hours.Location()))
		return nil, ErrStoreClosed
	}

	// 3. Проверяем сотрудника
	if _, err := uc.catalogRepo.GetStaffByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotExists
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 4. Выравнивание по сетке 15 минут
	if !isAligned(start, uc.hours.Location()) {
		uc.logger.Warn("CreateAppointment: start %s is not aligned", start)
		return nil, ErrNotAligned
	}

	// 5. Нельзя записаться в прошлое
	if start.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateAppointment: start %s is in the past", start)
		return nil, ErrDateInPast
	}

	// 6. Получаем услугу по названию
	service, err := uc.catalogRepo.GetServiceByName(ctx, req.ServiceName)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service %q not found", req.ServiceName)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	candidate := domain.NewInterval(start, service.DurationMinutes)

	var result *domain.Appointment

	// 7. Проверка пересечений и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Приёмы сотрудника, которые могут пересекаться с кандидатом (с блокировкой FOR UPDATE)
		from, to := domain.LookupRange(candidate.Start, candidate.End)
		existing, err := uc.appointmentRepo.GetByStaffWithFilter(txCtx, domain.AppointmentsFilter{
			StaffID: req.StaffID,
			From:    from,
			To:      to,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Проверяем пересечение
		if domain.HasConflict(req.StaffID, candidate, existing, nil) {
			uc.logger.Warn("CreateAppointment: staff id=%d is busy at %s", req.StaffID, start)
			return ErrStaffUnavailable
		}

		// 7.3. Сохраняем приём с длительностью услуги на момент бронирования
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			CustomerID:      req.CustomerID,
			StaffID:         req.StaffID,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			StartTime:       start,
			DurationMinutes: service.DurationMinutes,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if domain.KindOf(err) == domain.KindInternal && !errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		StaffID:         result.StaffID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		Date:            result.StartTime,
		DurationMinutes: result.DurationMinutes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
