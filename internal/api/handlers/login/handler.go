package login

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "Request body must be a JSON object."
	msgEmailRequired      = "Email is required."
	msgPasswordRequired   = "Password is required."
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

// Handle POST /api/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondValidation(w, handlers.LocationBody, "body", msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		handlers.RespondValidation(w, handlers.LocationBody, "email", msgEmailRequired)
		return
	}
	if req.Password == "" {
		handlers.RespondValidation(w, handlers.LocationBody, "password", msgPasswordRequired)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status == http.StatusInternalServerError {
			h.logger.Error("POST /auth/login - Failed to log in: %v", err)
		} else {
			h.logger.Warn("POST /auth/login - Rejected: %s", handlers.DescribeError(err))
		}
		return
	}

	h.logger.Info("POST /auth/login - Customer logged in: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
