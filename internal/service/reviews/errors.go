package reviews

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidRating возвращается при оценке вне диапазона
	ErrInvalidRating = domain.Validation("rating",
		fmt.Sprintf("Rating must be between %d and %d.", domain.MinRating, domain.MaxRating))

	// ErrEmptyComment возвращается при пустом комментарии
	ErrEmptyComment = domain.Validation("comment", "Comment is required.")

	// ErrCommentTooLong возвращается при слишком длинном комментарии
	ErrCommentTooLong = domain.Validation("comment",
		fmt.Sprintf("Comment must be at most %d characters long.", domain.MaxCommentLength))

	// ErrCustomerNotExists возвращается, когда автор отзыва не найден
	ErrCustomerNotExists = domain.Validation("customerId", "Customer does not exist.")

	// ErrDeleteForbidden возвращается при попытке удалить чужой отзыв
	ErrDeleteForbidden = domain.Forbidden("You are not authorized to delete this review")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews.service: internal error")
)

func errReviewNotFound(id int64) error {
	return domain.NotFound("No review found with ID %d", id)
}
