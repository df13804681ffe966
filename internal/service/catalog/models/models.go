package models

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// StaffResponse сотрудник салона
type StaffResponse struct {
	ID          int64  `json:"staffId"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Headshot    string `json:"headshot"`
	Description string `json:"description"`
}

// ServiceResponse услуга салона
type ServiceResponse struct {
	ID              int64   `json:"serviceId"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
}

func FromDomainStaff(list []*domain.StaffMember) []StaffResponse {
	result := make([]StaffResponse, 0, len(list))
	for _, s := range list {
		result = append(result, StaffResponse{
			ID:          s.ID,
			Name:        s.Name,
			Role:        s.Role,
			Headshot:    s.Headshot,
			Description: s.Description,
		})
	}
	return result
}

func FromDomainServices(list []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		result = append(result, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return result
}
