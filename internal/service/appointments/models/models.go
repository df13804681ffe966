package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentResponse приём клиента с данными сотрудника и услуги
type AppointmentResponse struct {
	ID              int64     `json:"appointmentId"`
	CustomerID      int64     `json:"customerId"`
	StaffID         int64     `json:"staffId"`
	ServiceID       int64     `json:"serviceId"`
	Date            time.Time `json:"date"` // UTC
	DurationMinutes int       `json:"durationMinutes"`

	Customer CustomerSummary `json:"customer"`
	Staff    StaffSummary    `json:"staff"`
	Service  ServiceSummary  `json:"service"`
}

type CustomerSummary struct {
	Name string `json:"name"`
}

type StaffSummary struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Headshot string `json:"headshot"`
}

type ServiceSummary struct {
	Name string `json:"name"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.AppointmentDetails) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		StaffID:         a.StaffID,
		ServiceID:       a.ServiceID,
		Date:            a.StartTime.UTC(),
		DurationMinutes: a.DurationMinutes,
		Customer:        CustomerSummary{Name: a.CustomerName},
		Staff: StaffSummary{
			Name:     a.StaffName,
			Role:     a.StaffRole,
			Headshot: a.StaffHeadshot,
		},
		Service: ServiceSummary{Name: a.ServiceName},
	}
}

// FromDomainAppointments конвертирует список, пустой список остаётся пустым массивом
func FromDomainAppointments(list []*domain.AppointmentDetails) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, FromDomainAppointment(a))
	}
	return result
}
