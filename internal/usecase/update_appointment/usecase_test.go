package update_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/catalog"
)

type fakeAppointments struct {
	byID       map[int64]*domain.Appointment
	updated    *domain.Appointment
	getErr     error
	lastFilter domain.AppointmentsFilter
}

func (f *fakeAppointments) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointments) GetByStaffWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	result := make([]*domain.Appointment, 0)
	for _, a := range f.byID {
		if a.StaffID != filter.StaffID || a.StartTime.Before(filter.From) || !a.StartTime.Before(filter.To) {
			continue
		}
		if filter.ExcludeID != nil && a.ID == *filter.ExcludeID {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAppointments) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	f.updated = a
	f.byID[a.ID] = a
	return a, nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetStaffByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	if id == 1 || id == 2 {
		return &domain.StaffMember{ID: id}, nil
	}
	return nil, catalogRepo.ErrStaffNotFound
}

func (fakeCatalog) GetServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	switch name {
	case "Knipbeurt":
		return &domain.Service{ID: 1, Name: name, DurationMinutes: 30}, nil
	case "Kapsel & Baard Combinatie":
		return &domain.Service{ID: 4, Name: name, DurationMinutes: 50}, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type passTx struct{}

func (passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointments
	loc          *time.Location
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)

	f := &fixture{loc: loc}
	f.appointments = &fakeAppointments{byID: map[int64]*domain.Appointment{
		// Услуга Knipbeurt, длительность зафиксирована на момент бронирования (40 минут)
		10: {ID: 10, CustomerID: 7, StaffID: 1, ServiceID: 1, ServiceName: "Knipbeurt", StartTime: f.at(10, 0), DurationMinutes: 40},
		11: {ID: 11, CustomerID: 8, StaffID: 1, ServiceID: 1, ServiceName: "Knipbeurt", StartTime: f.at(12, 0), DurationMinutes: 30},
	}}
	f.uc = NewUseCase(f.appointments, fakeCatalog{}, passTx{}, domain.DefaultOperatingHours(loc), nopLogger{})
	return f
}

func (f *fixture) at(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, f.loc)
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrString(s string) *string     { return &s }
func ptrInt64(v int64) *int64        { return &v }

func TestExecute_NothingToUpdate(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 10, CustomerID: 7})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 99, CustomerID: 7, StaffID: ptrInt64(2)})
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, de.Kind)
	assert.Equal(t, "No appointment found with ID 99", de.Message)
}

func TestExecute_ForbiddenBeforeOtherChecks(t *testing.T) {
	f := newFixture(t)

	// Чужой приём: даже конфликтующее время не раскрывается
	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 11,
		CustomerID:    7,
		Date:          ptrTime(f.at(10, 7)),
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, f.appointments.updated)
}

func TestExecute_Reschedule(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 10,
		CustomerID:    7,
		Date:          ptrTime(f.at(14, 15)),
	})

	require.NoError(t, err)
	assert.Equal(t, f.at(14, 15), resp.Date)
	assert.Equal(t, 40, resp.DurationMinutes, "frozen duration is kept when service is unchanged")
	require.NotNil(t, f.appointments.lastFilter.ExcludeID)
	assert.Equal(t, int64(10), *f.appointments.lastFilter.ExcludeID)
}

func TestExecute_RescheduleOverlappingItselfIsAllowed(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 10,
		CustomerID:    7,
		Date:          ptrTime(f.at(10, 15)),
	})
	require.NoError(t, err)
}

func TestExecute_Conflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 10,
		CustomerID:    7,
		Date:          ptrTime(f.at(11, 30)),
	})
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindConflict, de.Kind)
	assert.Equal(t, "This staff member is not available during the selected time.", de.Message)
}

func TestExecute_ChangeServiceExtendsIntoConflict(t *testing.T) {
	f := newFixture(t)

	// 11:15 + 40 мин = 11:55 свободно, но 11:15 + 50 мин пересекает приём в 12:00
	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 10,
		CustomerID:    7,
		Date:          ptrTime(f.at(11, 15)),
		ServiceName:   ptrString("Kapsel & Baard Combinatie"),
	})
	assert.ErrorIs(t, err, ErrStaffUnavailable)
}

func TestExecute_ChangeStaffAvoidsConflict(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 10,
		CustomerID:    7,
		Date:          ptrTime(f.at(12, 0)),
		StaffID:       ptrInt64(2),
		ServiceName:   ptrString("Knipbeurt"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.StaffID)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 10, CustomerID: 7, Date: ptrTime(f.at(18, 0))})
	assert.ErrorIs(t, err, ErrStoreClosed)

	_, err = f.uc.Execute(context.Background(), &Request{AppointmentID: 10, CustomerID: 7, Date: ptrTime(f.at(10, 7))})
	assert.ErrorIs(t, err, ErrNotAligned)

	_, err = f.uc.Execute(context.Background(), &Request{AppointmentID: 10, CustomerID: 7, StaffID: ptrInt64(99)})
	assert.ErrorIs(t, err, ErrStaffNotExists)

	_, err = f.uc.Execute(context.Background(), &Request{AppointmentID: 10, CustomerID: 7, ServiceName: ptrString("Permanent")})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDateAllowedOnUpdate(t *testing.T) {
	f := newFixture(t)
	past := time.Date(2020, 6, 1, 10, 0, 0, 0, f.loc) // понедельник

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 10, CustomerID: 7, Date: &past})
	require.NoError(t, err)
	assert.Equal(t, past, resp.Date)
}

func TestExecute_Internal(t *testing.T) {
	f := newFixture(t)
	f.appointments.getErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 10, CustomerID: 7, StaffID: ptrInt64(2)})
	assert.ErrorIs(t, err, ErrInternal)
}
