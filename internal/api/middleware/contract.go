package middleware

import "github.com/m04kA/SMC-SalonBooking/pkg/jwtauth"

// TokenParser проверяет токен доступа
type TokenParser interface {
	Parse(token string) (*jwtauth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
