package delete_review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct{}

func (fakeService) Delete(ctx context.Context, id, callerID int64) error {
	if id == 2 {
		return domain.Forbidden("You are not authorized to delete this review")
	}
	return nil
}

func TestHandle(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/reviews/{reviewId}", NewHandler(fakeService{}, logger.NewNop()).Handle)

	do := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, path, nil)
		req = req.WithContext(middleware.WithCustomerID(req.Context(), 7))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, do("/api/reviews/1").Code)

	rec := do("/api/reviews/2")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"You are not authorized to delete this review"}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, do("/api/reviews/0").Code)
}
