package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSchedule возвращается при некорректной конфигурации расписания
var ErrInvalidSchedule = errors.New("domain: invalid operating hours")

// ErrorKind категория бизнес-ошибки. Определяет HTTP статус на границе API
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindForbidden
	KindUnprocessable
	KindUnauthorized
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindUnprocessable:
		return "unprocessable"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error бизнес-ошибка с категорией и сообщением для клиента.
// Field заполняется только для KindValidation
type Error struct {
	Kind    ErrorKind
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is сравнивает ошибки по категории и сообщению, чтобы работал errors.Is с сентинелами
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message && e.Field == t.Field
}

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func NotFound(format string, v ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, v...)}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Unprocessable(format string, v ...interface{}) *Error {
	return &Error{Kind: KindUnprocessable, Message: fmt.Sprintf(format, v...)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// AsError извлекает бизнес-ошибку из цепочки
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf возвращает категорию ошибки. Всё, что не является *Error, считается внутренней ошибкой
func KindOf(err error) ErrorKind {
	if de, ok := AsError(err); ok {
		return de.Kind
	}
	return KindInternal
}
