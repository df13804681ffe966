package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	msgInternalError    = "internal server error"
	codeValidation      = "VALIDATION_FAILED"
	maxRequestBodyBytes = 1 << 20
)

// Места, в которых найдена ошибка валидации
const (
	LocationBody   = "body"
	LocationQuery  = "query"
	LocationParams = "params"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse тело ответа с ошибкой валидации.
// details: место (body, query, params) -> поле -> сообщение
type ValidationErrorResponse struct {
	Error   string                       `json:"error"`
	Details map[string]map[string]string `json:"details"`
}

// DecodeJSON декодирует тело запроса. Неизвестные поля игнорируются, данные после объекта запрещены
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondNoContent отправляет 204
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError отправляет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondValidation отправляет 400 с детализацией по полю
func RespondValidation(w http.ResponseWriter, location, field, message string) {
	RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Error: codeValidation,
		Details: map[string]map[string]string{
			location: {field: message},
		},
	})
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// StatusFor возвращает HTTP статус для категории бизнес-ошибки
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindUnprocessable:
		return http.StatusUnprocessableEntity
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError отправляет ответ для ошибки use case или сервиса.
// Всё, что не является domain.Error, отдаётся как 500 без подробностей.
// Возвращает статус, чтобы хендлер мог выбрать уровень логирования
func RespondDomainError(w http.ResponseWriter, err error) int {
	de, ok := domain.AsError(err)
	if !ok {
		RespondInternalError(w)
		return http.StatusInternalServerError
	}

	status := StatusFor(de.Kind)
	switch de.Kind {
	case domain.KindValidation:
		field := de.Field
		if field == "" {
			field = LocationBody
		}
		RespondValidation(w, LocationBody, field, de.Message)
	case domain.KindInternal:
		RespondInternalError(w)
	default:
		RespondError(w, status, de.Message)
	}
	return status
}

// DescribeError формирует строку для лога хендлера
func DescribeError(err error) string {
	if de, ok := domain.AsError(err); ok {
		return fmt.Sprintf("%s (%s)", de.Message, de.Kind)
	}
	return err.Error()
}
