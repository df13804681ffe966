package get_staff_availability

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("get_staff_availability: internal error")
