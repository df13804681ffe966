package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
)

type fakeRepo struct {
	byID      map[int64]*domain.Appointment
	details   []*domain.AppointmentDetails
	listErr   error
	deleteErr error
	deleted   []int64
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeRepo) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.AppointmentDetails, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.details, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestListByCustomer(t *testing.T) {
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)

	repo := &fakeRepo{details: []*domain.AppointmentDetails{
		{
			Appointment: domain.Appointment{
				ID: 1, CustomerID: 7, StaffID: 2, ServiceID: 1,
				ServiceName: "Knipbeurt", DurationMinutes: 30,
				StartTime: time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
			},
			CustomerName: "Jan",
			StaffName:    "Thomas",
			StaffRole:    "Barber",
		},
	}}
	svc := NewService(repo, nopLogger{})

	list, err := svc.ListByCustomer(context.Background(), 7, 7)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "Knipbeurt", list[0].Service.Name)
	assert.Equal(t, "Thomas", list[0].Staff.Name)
	assert.Equal(t, "Jan", list[0].Customer.Name)
	assert.Equal(t, time.UTC, list[0].Date.Location())
	assert.Equal(t, 8, list[0].Date.Hour())
}

func TestListByCustomer_Empty(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	list, err := svc.ListByCustomer(context.Background(), 7, 7)

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListByCustomer_Forbidden(t *testing.T) {
	svc := NewService(&fakeRepo{listErr: errors.New("must not be called")}, nopLogger{})

	_, err := svc.ListByCustomer(context.Background(), 8, 7)

	assert.ErrorIs(t, err, ErrViewForbidden)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestListByCustomer_Internal(t *testing.T) {
	svc := NewService(&fakeRepo{listErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.ListByCustomer(context.Background(), 7, 7)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name      string
		id        int64
		caller    int64
		deleteErr error
		wantKind  domain.ErrorKind
		wantMsg   string
		wantErr   error
	}{
		{name: "owner deletes", id: 1, caller: 7},
		{name: "not found", id: 99, caller: 7, wantKind: domain.KindNotFound, wantMsg: "No appointment found with ID 99"},
		{name: "not owner", id: 1, caller: 8, wantErr: ErrDeleteForbidden},
		{name: "deleted concurrently", id: 1, caller: 7, deleteErr: appointmentRepo.ErrAppointmentNotFound,
			wantKind: domain.KindNotFound, wantMsg: "No appointment found with ID 1"},
		{name: "repository error", id: 1, caller: 7, deleteErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{
				byID:      map[int64]*domain.Appointment{1: {ID: 1, CustomerID: 7}},
				deleteErr: tt.deleteErr,
			}
			svc := NewService(repo, nopLogger{})

			err := svc.Delete(context.Background(), tt.id, tt.caller)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.deleted)
			case tt.wantMsg != "":
				de, ok := domain.AsError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantKind, de.Kind)
				assert.Equal(t, tt.wantMsg, de.Message)
			default:
				require.NoError(t, err)
				assert.Equal(t, []int64{1}, repo.deleted)
			}
		})
	}
}
