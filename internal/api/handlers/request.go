package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ErrInvalidDateTime возвращается, когда строка не является датой-временем ISO 8601
var ErrInvalidDateTime = errors.New("invalid ISO 8601 date-time")

// Форматы без смещения интерпретируются в таймзоне салона
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParsePositiveID разбирает положительный целочисленный идентификатор
func ParsePositiveID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseDateTime разбирает момент времени в формате ISO 8601.
// Строка со смещением или Z разбирается как есть, без смещения - в location
func ParseDateTime(raw string, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, raw)
}

// ParseDate разбирает календарную дату YYYY-MM-DD.
// Полная дата-время тоже принимается, тогда берётся дата в таймзоне салона
func ParseDate(raw string, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.Parse(domain.DateFormat, raw); err == nil {
		return d, nil
	}
	t, err := ParseDateTime(raw, location)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.In(location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// ServiceAllowlist список услуг, допустимых в запросах на бронирование.
// Пустой список разрешает любое название
type ServiceAllowlist struct {
	names   map[string]struct{}
	ordered []string
}

// NewServiceAllowlist создает список допустимых услуг
func NewServiceAllowlist(names []string) *ServiceAllowlist {
	a := &ServiceAllowlist{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if _, ok := a.names[name]; ok {
			continue
		}
		a.names[name] = struct{}{}
		a.ordered = append(a.ordered, name)
	}
	return a
}

// Allows проверяет название услуги
func (a *ServiceAllowlist) Allows(name string) bool {
	if a == nil || len(a.names) == 0 {
		return true
	}
	_, ok := a.names[name]
	return ok
}

// Message сообщение об ошибке валидации для поля service
func (a *ServiceAllowlist) Message() string {
	return fmt.Sprintf("Service must be one of [%s].", strings.Join(a.ordered, ", "))
}
