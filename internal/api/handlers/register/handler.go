package register

import (
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "Request body must be a JSON object."
	msgNameRequired       = "Name is required."
	msgNameTooLong        = "Name is too long."
	msgInvalidEmail       = "Email must be a valid email address."
	msgPasswordTooShort   = "Password must be at least 6 characters long."
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondValidation(w, handlers.LocationBody, "body", msgInvalidRequestBody)
		return
	}

	if field, msg, ok := validate(&req); !ok {
		h.logger.Warn("POST /auth/register - Validation failed: %s: %s", field, msg)
		handlers.RespondValidation(w, handlers.LocationBody, field, msg)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("POST /auth/register - Failed to register customer: %v", err)
		} else {
			h.logger.Warn("POST /auth/register - Rejected: %s", handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("POST /auth/register - Customer registered: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

func validate(req *models.RegisterRequest) (field, msg string, ok bool) {
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return "name", msgNameRequired, false
	case utf8.RuneCountInString(name) > domain.MaxNameLength:
		return "name", msgNameTooLong, false
	}

	if _, err := mail.ParseAddress(req.Email); err != nil || strings.Contains(req.Email, "<") {
		return "email", msgInvalidEmail, false
	}

	if utf8.RuneCountInString(req.Password) < domain.MinPasswordLength {
		return "password", msgPasswordTooShort, false
	}

	return "", "", true
}
