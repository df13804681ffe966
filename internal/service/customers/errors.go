package customers

import (
	"errors"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrEmailTaken возвращается при регистрации с уже занятым email
	ErrEmailTaken = domain.Conflict("A customer with this email already exists")

	// ErrInvalidCredentials возвращается при неверном email или пароле.
	// Одно сообщение для обоих случаев
	ErrInvalidCredentials = domain.Unauthorized("Invalid email or password")

	// ErrPasswordTooLong возвращается, когда пароль не помещается в bcrypt
	ErrPasswordTooLong = domain.Validation("password", "Password must be at most 72 bytes long.")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers.service: internal error")
)
