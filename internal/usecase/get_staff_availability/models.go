package get_staff_availability

import "time"

// Request модель запроса свободных слотов сотрудника
type Request struct {
	StaffID   int64     // ID сотрудника
	ServiceID int64     // ID услуги, определяет длительность слота
	Date      time.Time // Календарная дата, время суток игнорируется
}

// Response модель ответа со свободными слотами
type Response struct {
	Date  string   // Дата в формате YYYY-MM-DD
	Slots []string // Время начала слотов в формате HH:MM в таймзоне салона, по возрастанию
}
