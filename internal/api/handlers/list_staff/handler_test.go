package list_staff

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	staff []models.StaffResponse
	err   error
}

func (f fakeService) ListStaff(ctx context.Context) ([]models.StaffResponse, error) {
	return f.staff, f.err
}

func TestHandle(t *testing.T) {
	svc := fakeService{staff: []models.StaffResponse{
		{ID: 1, Name: "Thomas", Role: "Barber", Headshot: "thomas.jpg", Description: "Fades"},
	}}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/staff", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"staffId":1,"name":"Thomas","role":"Barber","headshot":"thomas.jpg","description":"Fades"}]`,
		rec.Body.String())
}

func TestHandle_Empty(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(fakeService{staff: []models.StaffResponse{}}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/staff", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Internal(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(fakeService{err: errors.New("db down")}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/staff", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
