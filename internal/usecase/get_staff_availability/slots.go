package get_staff_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// generateSlots генерирует свободные слоты сотрудника на день.
// Кандидаты идут от открытия с шагом domain.SlotIntervalMinutes, пока начало раньше закрытия.
// Конец кандидата (начало + длительность услуги) может выходить за закрытие:
// рабочие часы проверяются только для времени начала, как и при бронировании
func generateSlots(
	opening, closing time.Time,
	durationMinutes int,
	staffID int64,
	existing []*domain.Appointment,
	location *time.Location,
) []string {
	step := time.Duration(domain.SlotIntervalMinutes) * time.Minute

	slots := make([]string, 0)
	for candidate := opening; candidate.Before(closing); candidate = candidate.Add(step) {
		interval := domain.NewInterval(candidate, durationMinutes)
		if domain.HasConflict(staffID, interval, existing, nil) {
			continue
		}
		slots = append(slots, candidate.In(location).Format(domain.TimeFormat))
	}

	return slots
}
