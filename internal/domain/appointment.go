package domain

import "time"

// Appointment represents a customer's appointment with a staff member
type Appointment struct {
	ID         int64
	CustomerID int64
	StaffID    int64
	ServiceID  int64
	StartTime  time.Time

	// Denormalized data, зафиксированные на момент бронирования
	ServiceName     string
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime возвращает время окончания приёма.
// Не хранится в БД, всегда вычисляется из StartTime и длительности услуги на момент бронирования
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Interval возвращает полуоткрытый интервал [StartTime, EndTime)
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartTime, End: a.EndTime()}
}

// IsOwnedBy returns true if the appointment belongs to the customer
func (a *Appointment) IsOwnedBy(customerID int64) bool {
	return a.CustomerID == customerID
}

// AppointmentDetails приём с данными сотрудника и клиента для истории клиента
type AppointmentDetails struct {
	Appointment

	CustomerName  string
	StaffName     string
	StaffRole     string
	StaffHeadshot string
}

// AppointmentsFilter фильтр для выборки приёмов сотрудника
type AppointmentsFilter struct {
	StaffID   int64     // Обязательный параметр
	From      time.Time // Начало периода (включительно), сравнивается со start_time
	To        time.Time // Конец периода (не включительно)
	ExcludeID *int64    // Исключить приём (при переносе самого себя)
}
