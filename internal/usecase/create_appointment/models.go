package create_appointment

import "time"

// Request модель запроса на создание приёма
type Request struct {
	CustomerID  int64     // ID клиента из токена
	ServiceName string    // Название услуги
	Date        time.Time // Время начала приёма
	StaffID     int64     // ID сотрудника
}

// Response модель ответа с созданным приёмом
type Response struct {
	ID              int64
	CustomerID      int64
	StaffID         int64
	ServiceID       int64
	ServiceName     string
	Date            time.Time
	DurationMinutes int
	CreatedAt       time.Time
}
