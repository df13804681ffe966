package reviews

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/customer"
	reviewRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/review"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
)

type fakeReviews struct {
	byID    map[int64]*domain.Review
	nextID  int64
	listErr error
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{
		byID: map[int64]*domain.Review{
			1: {ID: 1, CustomerID: 7, Rating: 5, Comment: "Top", CustomerName: "Jan"},
		},
		nextID: 2,
	}
}

func (f *fakeReviews) List(ctx context.Context) ([]*domain.Review, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Review, 0, len(f.byID))
	for _, r := range f.byID {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReviews) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	return r, nil
}

func (f *fakeReviews) Create(ctx context.Context, r *domain.Review) (*domain.Review, error) {
	r.ID = f.nextID
	f.nextID++
	f.byID[r.ID] = r
	return r, nil
}

func (f *fakeReviews) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return reviewRepo.ErrReviewNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCustomers struct{}

func (fakeCustomers) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if id == 7 || id == 8 {
		return &domain.Customer{ID: id, Name: "Customer"}, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestList(t *testing.T) {
	svc := NewService(newFakeReviews(), fakeCustomers{}, nopLogger{})

	list, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Jan", list[0].Customer.Name)
}

func TestList_Internal(t *testing.T) {
	repo := newFakeReviews()
	repo.listErr = errors.New("connection refused")
	svc := NewService(repo, fakeCustomers{}, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeReviews(), fakeCustomers{}, nopLogger{})

	review, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	_, err = svc.GetByID(context.Background(), 42)
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, de.Kind)
	assert.Equal(t, "No review found with ID 42", de.Message)
}

func TestCreate(t *testing.T) {
	repo := newFakeReviews()
	svc := NewService(repo, fakeCustomers{}, nopLogger{})

	review, err := svc.Create(context.Background(), &models.CreateReviewRequest{
		CustomerID: 8,
		Rating:     4,
		Comment:    "  Vlot geholpen  ",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), review.ID)
	assert.Equal(t, "Vlot geholpen", review.Comment)
	assert.Equal(t, "Customer", review.Customer.Name)
	assert.Contains(t, repo.byID, int64(2))
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateReviewRequest
		wantErr error
	}{
		{name: "rating too low", req: models.CreateReviewRequest{CustomerID: 7, Rating: 0, Comment: "ok"}, wantErr: ErrInvalidRating},
		{name: "rating too high", req: models.CreateReviewRequest{CustomerID: 7, Rating: 6, Comment: "ok"}, wantErr: ErrInvalidRating},
		{name: "blank comment", req: models.CreateReviewRequest{CustomerID: 7, Rating: 3, Comment: "   "}, wantErr: ErrEmptyComment},
		{name: "long comment", req: models.CreateReviewRequest{CustomerID: 7, Rating: 3, Comment: strings.Repeat("x", domain.MaxCommentLength+1)}, wantErr: ErrCommentTooLong},
		{name: "unknown customer", req: models.CreateReviewRequest{CustomerID: 99, Rating: 3, Comment: "ok"}, wantErr: ErrCustomerNotExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeReviews(), fakeCustomers{}, nopLogger{})

			_, err := svc.Create(context.Background(), &tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeReviews()
	svc := NewService(repo, fakeCustomers{}, nopLogger{})
	ctx := context.Background()

	err := svc.Delete(ctx, 1, 8)
	assert.ErrorIs(t, err, ErrDeleteForbidden)
	assert.Contains(t, repo.byID, int64(1))

	require.NoError(t, svc.Delete(ctx, 1, 7))
	assert.NotContains(t, repo.byID, int64(1))

	err = svc.Delete(ctx, 1, 7)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
