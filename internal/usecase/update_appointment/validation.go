package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// hasChanges проверяет, что передано хотя бы одно изменяемое поле
func hasChanges(req *Request) bool {
	return req.Date != nil || req.ServiceName != nil || req.StaffID != nil
}

// isAligned проверяет, что минута начала кратна шагу сетки, а секунд нет
func isAligned(start time.Time, location *time.Location) bool {
	local := start.In(location)
	return local.Minute()%domain.SlotIntervalMinutes == 0 && local.Second() == 0 && local.Nanosecond() == 0
}
