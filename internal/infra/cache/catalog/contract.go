package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Repository источник данных справочника, который кешируется
type Repository interface {
	ListStaff(ctx context.Context) ([]*domain.StaffMember, error)
	GetStaffByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetServiceByName(ctx context.Context, name string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
