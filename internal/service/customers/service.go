package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/customer"
	"github.com/m04kA/SMC-SalonBooking/internal/service/customers/models"
)

// Service сервис регистрации и аутентификации клиентов
type Service struct {
	customerRepo CustomerRepository
	tokens       TokenIssuer
	bcryptCost   int
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов.
// bcryptCost вне допустимого диапазона заменяется на bcrypt.DefaultCost
func NewService(customerRepo CustomerRepository, tokens TokenIssuer, bcryptCost int, logger Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		customerRepo: customerRepo,
		tokens:       tokens,
		bcryptCost:   bcryptCost,
		logger:       logger,
	}
}

// Register регистрирует нового клиента
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.CustomerResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Register: email=%s", email)

	// 1. Email должен быть свободен
	_, err := s.customerRepo.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Warn("Register: email=%s already taken", email)
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	// 2. Хэшируем пароль
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	// 3. Сохраняем. Уникальный индекс ловит параллельную регистрацию
	customer, err := s.customerRepo.Create(ctx, &domain.Customer{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, customerRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s taken concurrently", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered customer id=%d", customer.ID)
	return &models.CustomerResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}, nil
}

// Login проверяет email и пароль и выпускает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Login: email=%s", email)

	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for customer id=%d", customer.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(customer.ID, customer.Email, customer.Name)
	if err != nil {
		s.logger.Error("Login: failed to issue token for customer id=%d: %v", customer.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: customer id=%d logged in", customer.ID)
	return &models.LoginResponse{
		Token: token,
		ID:    customer.ID,
		Email: customer.Email,
		Name:  customer.Name,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
