package login

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/customers/models"
)

type CustomerService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
