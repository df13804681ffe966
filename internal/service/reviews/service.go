package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/customer"
	reviewRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/review"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

// Service сервис отзывов
type Service struct {
	reviewRepo   ReviewRepository
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		reviewRepo:   reviewRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// List возвращает все отзывы с именами авторов
func (s *Service) List(ctx context.Context) ([]models.ReviewResponse, error) {
	list, err := s.reviewRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d reviews", len(list))
	return models.FromDomainReviews(list), nil
}

// GetByID возвращает отзыв по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("GetByID: review id=%d not found", id)
			return nil, errReviewNotFound(id)
		}
		s.logger.Error("GetByID: repository error for review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainReview(review)
	return &resp, nil
}

// Create создает отзыв от имени клиента из токена
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: review by customer=%d, rating=%d", req.CustomerID, req.Rating)

	comment := strings.TrimSpace(req.Comment)
	if err := validateReview(req.Rating, comment); err != nil {
		s.logger.Warn("Create: invalid review by customer=%d: %v", req.CustomerID, err)
		return nil, err
	}

	// Клиент мог быть удалён после выпуска токена
	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Create: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotExists
		}
		s.logger.Error("Create: repository error for customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		CustomerID: customer.ID,
		Rating:     req.Rating,
		Comment:    comment,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	review.CustomerName = customer.Name

	s.logger.Info("Create: successfully created review id=%d", review.ID)
	resp := models.FromDomainReview(review)
	return &resp, nil
}

// Delete удаляет отзыв. Удалить может только автор
func (s *Service) Delete(ctx context.Context, id, callerID int64) error {
	s.logger.Info("Delete: review id=%d by customer=%d", id, callerID)

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Delete: review id=%d not found", id)
			return errReviewNotFound(id)
		}
		s.logger.Error("Delete: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !review.IsOwnedBy(callerID) {
		s.logger.Warn("Delete: customer=%d is not author of review id=%d", callerID, id)
		return ErrDeleteForbidden
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			return errReviewNotFound(id)
		}
		s.logger.Error("Delete: repository error for review id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted review id=%d", id)
	return nil
}

func validateReview(rating int, comment string) error {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return ErrInvalidRating
	}
	if comment == "" {
		return ErrEmptyComment
	}
	if utf8.RuneCountInString(comment) > domain.MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}
