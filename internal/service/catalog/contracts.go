package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CatalogRepository интерфейс справочника сотрудников и услуг (репозиторий или кэш)
type CatalogRepository interface {
	ListStaff(ctx context.Context) ([]*domain.StaffMember, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
