package list_reviews

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

type ReviewService interface {
	List(ctx context.Context) ([]models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
