package get_staff_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	getStaffAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_staff_availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	last *getStaffAvailability.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *getStaffAvailability.Request) (*getStaffAvailability.Response, error) {
	f.last = req
	if req.Date.Weekday() == time.Sunday {
		return nil, domain.Unprocessable("The store is closed on %s.", time.Sunday)
	}
	if req.StaffID == 99 {
		return nil, domain.NotFound("Staff member with ID %d not found.", req.StaffID)
	}
	return &getStaffAvailability.Response{
		Date:  req.Date.Format(domain.DateFormat),
		Slots: []string{"09:00", "09:15"},
	}, nil
}

func newRouter(t *testing.T, uc *fakeUseCase) *mux.Router {
	t.Helper()
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/api/staff/{staffId}/availability", NewHandler(uc, loc, logger.NewNop()).Handle)
	return r
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "slots",
			url:        "/api/staff/1/availability?date=2025-06-02&serviceId=1",
			wantStatus: http.StatusOK,
			wantBody:   `["09:00","09:15"]`,
		},
		{
			name:       "closed day",
			url:        "/api/staff/1/availability?date=2025-06-01&serviceId=1",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"The store is closed on Sunday."}`,
		},
		{
			name:       "staff not found",
			url:        "/api/staff/99/availability?date=2025-06-02&serviceId=1",
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Staff member with ID 99 not found."}`,
		},
		{
			name:       "invalid staff id",
			url:        "/api/staff/abc/availability?date=2025-06-02&serviceId=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"params":{"staffId":"Staff ID must be a positive integer."}}}`,
		},
		{
			name:       "missing date",
			url:        "/api/staff/1/availability?serviceId=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"query":{"date":"Date parameter is required."}}}`,
		},
		{
			name:       "invalid date",
			url:        "/api/staff/1/availability?date=02-06-2025&serviceId=1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"query":{"date":"Date must be a valid ISO 8601 date (e.g., 2025-03-15)."}}}`,
		},
		{
			name:       "missing service id",
			url:        "/api/staff/1/availability?date=2025-06-02",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"query":{"serviceId":"Service ID is required."}}}`,
		},
		{
			name:       "negative service id",
			url:        "/api/staff/1/availability?date=2025-06-02&serviceId=-3",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"VALIDATION_FAILED","details":{"query":{"serviceId":"Service ID must be a positive integer."}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			newRouter(t, &fakeUseCase{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandle_PassesRequest(t *testing.T) {
	uc := &fakeUseCase{}
	rec := httptest.NewRecorder()

	newRouter(t, uc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/staff/3/availability?date=2025-06-02&serviceId=4", nil))

	require.NotNil(t, uc.last)
	assert.Equal(t, int64(3), uc.last.StaffID)
	assert.Equal(t, int64(4), uc.last.ServiceID)
	assert.Equal(t, "2025-06-02", uc.last.Date.Format(domain.DateFormat))
}
