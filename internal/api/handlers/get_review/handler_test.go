package get_review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/reviews/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct{}

func (fakeService) GetByID(ctx context.Context, id int64) (*models.ReviewResponse, error) {
	if id != 1 {
		return nil, domain.NotFound("No review found with ID %d", id)
	}
	return &models.ReviewResponse{ID: 1, CustomerID: 7, Rating: 4, Comment: "Goed"}, nil
}

func TestHandle(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/reviews/{reviewId}", NewHandler(fakeService{}, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comment":"Goed"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"No review found with ID 42"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"error":"VALIDATION_FAILED","details":{"params":{"reviewId":"Review ID must be a positive integer."}}}`,
		rec.Body.String())
}
