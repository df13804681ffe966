package domain

import "time"

// Расписание по умолчанию
const (
	DefaultTimezone            = "Europe/Brussels"
	DefaultOpeningHour         = 9
	DefaultClosingHour         = 17
	DefaultSaturdayClosingHour = 13
)

// Business validation constants
const (
	SlotIntervalMinutes = 15 // Шаг сетки слотов и выравнивания приёмов
	MinRating           = 1
	MaxRating           = 5
	MaxCommentLength    = 1000
	MinPasswordLength   = 6
	MaxNameLength       = 255
)

// MaxAppointmentDuration верхняя граница длительности одного приёма.
// Используется для расширения окна выборки приёмов назад: приём, начавшийся накануне,
// может пересекаться с проверяемым интервалом
const MaxAppointmentDuration = 24 * time.Hour

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
