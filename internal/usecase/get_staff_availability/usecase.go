package get_staff_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
)

// UseCase use case для получения свободных слотов сотрудника на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	hours           *domain.OperatingHours
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	hours *domain.OperatingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		hours:           hours,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов.
// Прошедшие слоты не отфильтровываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	day := uc.hours.CivilDate(req.Date.Date())
	date := day.Format(domain.DateFormat)

	uc.logger.Info("GetStaffAvailability: staff=%d, service=%d, date=%s", req.StaffID, req.ServiceID, date)

	// 1. Выходной проверяется раньше существования сотрудника и услуги
	opening, closing, open := uc.hours.WindowFor(day)
	if !open {
		uc.logger.Warn("GetStaffAvailability: store is closed on %s (%s)", date, day.Weekday())
		return nil, domain.Unprocessable("The store is closed on %s.", day.Weekday())
	}

	// 2. Проверяем сотрудника
	if _, err := uc.catalogRepo.GetStaffByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetStaffAvailability: staff id=%d not found", req.StaffID)
			return nil, domain.NotFound("Staff member with ID %d not found.", req.StaffID)
		}
		uc.logger.Error("GetStaffAvailability: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Получаем услугу (длительность слота)
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetStaffAvailability: service id=%d not found", req.ServiceID)
			return nil, domain.NotFound("Service with ID %d not found.", req.ServiceID)
		}
		uc.logger.Error("GetStaffAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем приёмы сотрудника, которые могут пересекаться с этим днём
	nextDay := uc.hours.CivilDate(day.Year(), day.Month(), day.Day()+1)
	from, to := domain.LookupRange(day, nextDay)

	appointments, err := uc.appointmentRepo.GetByStaffWithFilter(ctx, domain.AppointmentsFilter{
		StaffID: req.StaffID,
		From:    from,
		To:      to,
	})
	if err != nil {
		uc.logger.Error("GetStaffAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты
	slots := generateSlots(opening, closing, service.DurationMinutes, req.StaffID, appointments, uc.hours.Location())

	uc.logger.Info("GetStaffAvailability: staff=%d, date=%s: %d free slots (%d appointments)",
		req.StaffID, date, len(slots), len(appointments))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}
