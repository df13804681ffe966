package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return domain.Validation("customerId", "customerId must be a positive integer.")
	}
	if req.StaffID <= 0 {
		return domain.Validation("staffId", "staffId must be a positive integer.")
	}
	if req.ServiceName == "" {
		return domain.Validation("service", "service is required.")
	}
	if req.Date.IsZero() {
		return domain.Validation("date", "date is required.")
	}
	return nil
}

// isAligned проверяет, что минута начала кратна шагу сетки, а секунд нет
func isAligned(start time.Time, location *time.Location) bool {
	local := start.In(location)
	return local.Minute()%domain.SlotIntervalMinutes == 0 && local.Second() == 0 && local.Nanosecond() == 0
}
