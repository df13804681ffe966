package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/customers/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct{}

func (fakeService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Password != "secret123" {
		return nil, domain.Unauthorized("Invalid email or password")
	}
	return &models.LoginResponse{Token: "token", ID: 1, Email: req.Email, Name: "Jan"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"email":"jan@example.com","password":"secret123"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"token":"token","id":1,"email":"jan@example.com","name":"Jan"}`,
		},
		{
			name:       "wrong password",
			body:       `{"email":"jan@example.com","password":"wrong"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Invalid email or password"}`,
		},
		{
			name:       "missing email",
			body:       `{"password":"secret123"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"body":{"email":"Email is required."}}}`,
		},
		{
			name:       "missing password",
			body:       `{"email":"jan@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"body":{"password":"Password is required."}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(fakeService{}, logger.NewNop()).
				Handle(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
