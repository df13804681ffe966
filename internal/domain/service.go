package domain

// Service услуга салона. Name уникален
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}
