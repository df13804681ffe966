package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	CustomerID int64  `json:"-"` // Из токена
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewResponse отзыв с именем автора
type ReviewResponse struct {
	ID         int64           `json:"reviewId"`
	CustomerID int64           `json:"customerId"`
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment"`
	CreatedAt  time.Time       `json:"createdAt"`
	Customer   CustomerSummary `json:"customer"`
}

type CustomerSummary struct {
	ID   int64  `json:"customerId"`
	Name string `json:"name"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt.UTC(),
		Customer: CustomerSummary{
			ID:   r.CustomerID,
			Name: r.CustomerName,
		},
	}
}

func FromDomainReviews(list []*domain.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromDomainReview(r))
	}
	return result
}
