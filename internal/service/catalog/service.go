package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

// Service сервис справочника салона
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListStaff возвращает всех сотрудников
func (s *Service) ListStaff(ctx context.Context) ([]models.StaffResponse, error) {
	staff, err := s.catalogRepo.ListStaff(ctx)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStaff: found %d staff members", len(staff))
	return models.FromDomainStaff(staff), nil
}

// ListServices возвращает все услуги
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: found %d services", len(services))
	return models.FromDomainServices(services), nil
}
