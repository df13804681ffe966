package register

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/customers/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	err    error
	called bool
}

func (f *fakeService) Register(ctx context.Context, req *models.RegisterRequest) (*models.CustomerResponse, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return &models.CustomerResponse{ID: 1, Name: req.Name, Email: req.Email}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
		wantCalled bool
	}{
		{
			name:       "registered",
			body:       `{"name":"Jan","email":"jan@example.com","password":"secret123"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":1,"name":"Jan","email":"jan@example.com"}`,
			wantCalled: true,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing name",
			body:       `{"name":" ","email":"jan@example.com","password":"secret123"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"body":{"name":"Name is required."}}}`,
		},
		{
			name:       "invalid email",
			body:       `{"name":"Jan","email":"not-an-email","password":"secret123"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"body":{"email":"Email must be a valid email address."}}}`,
		},
		{
			name:       "short password",
			body:       `{"name":"Jan","email":"jan@example.com","password":"12345"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"body":{"password":"Password must be at least 6 characters long."}}}`,
		},
		{
			name:       "email taken",
			body:       `{"name":"Jan","email":"jan@example.com","password":"secret123"}`,
			serviceErr: domain.Conflict("A customer with this email already exists"),
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"A customer with this email already exists"}`,
			wantCalled: true,
		},
		{
			name:       "internal",
			body:       `{"name":"Jan","email":"jan@example.com","password":"secret123"}`,
			serviceErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.serviceErr}
			h := NewHandler(svc, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			assert.Equal(t, tt.wantCalled, svc.called)
		})
	}
}
