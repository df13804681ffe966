package domain

import "time"

// Interval полуоткрытый интервал времени [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал заданной длительности в минутах
func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Касание границами (e1 == s2) пересечением не считается
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// HasConflict проверяет, пересекается ли candidate хотя бы с одним приёмом сотрудника staffID.
// Приёмы других сотрудников и приём с ID == excludeID пропускаются
func HasConflict(staffID int64, candidate Interval, existing []*Appointment, excludeID *int64) bool {
	for _, a := range existing {
		if a == nil || a.StaffID != staffID {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if candidate.Overlaps(a.Interval()) {
			return true
		}
	}
	return false
}

// LookupRange возвращает окно выборки приёмов по start_time, достаточное для проверки
// пересечений с интервалом [start, end)
func LookupRange(start, end time.Time) (from, to time.Time) {
	return start.Add(-MaxAppointmentDuration), end
}
