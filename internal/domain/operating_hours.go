package domain

import (
	"fmt"
	"time"
)

// DayHours часы работы в конкретный день недели
// Интервал полуоткрытый: [OpeningHour, ClosingHour)
type DayHours struct {
	Open        bool
	OpeningHour int
	ClosingHour int
}

// OpenDay возвращает рабочий день с указанными часами
func OpenDay(openingHour, closingHour int) DayHours {
	return DayHours{Open: true, OpeningHour: openingHour, ClosingHour: closingHour}
}

// ClosedDay возвращает выходной день
func ClosedDay() DayHours {
	return DayHours{}
}

// OperatingHours недельное расписание работы салона в одной канонической таймзоне.
// Создаётся один раз при старте и дальше не изменяется
type OperatingHours struct {
	location *time.Location
	week     [7]DayHours
}

// NewOperatingHours создает расписание. Дни, не указанные в week, считаются выходными
func NewOperatingHours(location *time.Location, week map[time.Weekday]DayHours) (*OperatingHours, error) {
	if location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalidSchedule)
	}

	h := &OperatingHours{location: location}
	for day, hours := range week {
		if day < time.Sunday || day > time.Saturday {
			return nil, fmt.Errorf("%w: unknown weekday %d", ErrInvalidSchedule, day)
		}
		if hours.Open {
			if hours.OpeningHour < 0 || hours.ClosingHour > 24 || hours.OpeningHour >= hours.ClosingHour {
				return nil, fmt.Errorf("%w: %s hours %d-%d", ErrInvalidSchedule, day, hours.OpeningHour, hours.ClosingHour)
			}
		}
		h.week[day] = hours
	}

	return h, nil
}

// DefaultOperatingHours расписание по умолчанию: пн-пт 9-17, сб 9-13, вс выходной
func DefaultOperatingHours(location *time.Location) *OperatingHours {
	h, _ := NewOperatingHours(location, map[time.Weekday]DayHours{
		time.Monday:    OpenDay(DefaultOpeningHour, DefaultClosingHour),
		time.Tuesday:   OpenDay(DefaultOpeningHour, DefaultClosingHour),
		time.Wednesday: OpenDay(DefaultOpeningHour, DefaultClosingHour),
		time.Thursday:  OpenDay(DefaultOpeningHour, DefaultClosingHour),
		time.Friday:    OpenDay(DefaultOpeningHour, DefaultClosingHour),
		time.Saturday:  OpenDay(DefaultOpeningHour, DefaultSaturdayClosingHour),
		time.Sunday:    ClosedDay(),
	})
	return h
}

// Location возвращает каноническую таймзону расписания
func (h *OperatingHours) Location() *time.Location {
	return h.location
}

// HoursFor возвращает часы работы на день, в который попадает момент t (в канонической таймзоне)
func (h *OperatingHours) HoursFor(t time.Time) DayHours {
	return h.week[t.In(h.location).Weekday()]
}

// IsOpenAt проверяет, что салон открыт в момент t.
// Перед извлечением дня недели и часа время обязательно переводится в каноническую таймзону.
// Ровно в closingHour:00 салон уже закрыт
func (h *OperatingHours) IsOpenAt(t time.Time) bool {
	local := t.In(h.location)
	hours := h.week[local.Weekday()]
	if !hours.Open {
		return false
	}

	// Часы целые, поэтому сравнения по часу достаточно: 16:59 < 17, а 17:00 уже нет
	return local.Hour() >= hours.OpeningHour && local.Hour() < hours.ClosingHour
}

// ClosedDays возвращает выходные дни недели
func (h *OperatingHours) ClosedDays() []time.Weekday {
	closed := make([]time.Weekday, 0, 1)
	for day := time.Sunday; day <= time.Saturday; day++ {
		if !h.week[day].Open {
			closed = append(closed, day)
		}
	}
	return closed
}

// CivilDate возвращает полночь календарной даты в канонической таймзоне
func (h *OperatingHours) CivilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, h.location)
}

// StartOfDay возвращает полночь того локального дня, в который попадает момент t
func (h *OperatingHours) StartOfDay(t time.Time) time.Time {
	return h.CivilDate(t.In(h.location).Date())
}

// WindowFor возвращает моменты открытия и закрытия в локальный день, в который попадает t.
// ok = false, если день выходной
func (h *OperatingHours) WindowFor(t time.Time) (opening, closing time.Time, ok bool) {
	local := t.In(h.location)
	hours := h.week[local.Weekday()]
	if !hours.Open {
		return time.Time{}, time.Time{}, false
	}

	y, m, d := local.Date()
	opening = time.Date(y, m, d, hours.OpeningHour, 0, 0, 0, h.location)
	closing = time.Date(y, m, d, hours.ClosingHour, 0, 0, 0, h.location)
	return opening, closing, true
}
