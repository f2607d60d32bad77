package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/adyen/storefront-e2e/internal/models"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	UpdateNewsletter(ctx context.Context, email string, subscribed bool) error
}

// CustomerService handles account business logic
type CustomerService interface {
	Register(ctx context.Context, r models.Registration) (*models.Customer, error)
	Authenticate(ctx context.Context, email, password string) (*models.Customer, error)
	RequestPasswordRecovery(ctx context.Context, email string) error
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	SubscribeNewsletter(ctx context.Context, email string) error
}

// CustomerServiceImpl implements CustomerService
type CustomerServiceImpl struct {
	repo     CustomerRepository
	hashCost int
	log      *zap.Logger
}

// NewCustomerService creates a customer service. A zero hashCost uses
// bcrypt.DefaultCost.
func NewCustomerService(repo CustomerRepository, hashCost int, log *zap.Logger) CustomerService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerServiceImpl{
		repo:     repo,
		hashCost: hashCost,
		log:      log,
	}
}

// Register validates r and stores the new customer. Validation failures are
// returned as models.FieldErrors; a taken address as models.ErrEmailExists.
func (s *CustomerServiceImpl) Register(ctx context.Context, r models.Registration) (*models.Customer, error) {
	customer, err := models.NewCustomer(r, s.hashCost)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, models.ErrEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.log.Info("customer registered", zap.String("id", customer.ID), zap.String("email", customer.Email))
	return customer, nil
}

// Authenticate returns the customer whose credentials match.
func (s *CustomerServiceImpl) Authenticate(ctx context.Context, email, password string) (*models.Customer, error) {
	email = strings.TrimSpace(email)
	if errs := checkEmail(email, models.MsgEnterEmail); errs != nil {
		return nil, errs
	}

	customer, err := s.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := customer.CheckPassword(password); err != nil {
		return nil, err
	}
	return customer, nil
}

// RequestPasswordRecovery records a recovery request for a registered email.
func (s *CustomerServiceImpl) RequestPasswordRecovery(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if errs := checkEmail(email, models.MsgEmailRequired); errs != nil {
		return errs
	}

	customer, err := s.repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		return err
	}

	s.log.Info("password recovery requested", zap.String("id", customer.ID))
	return nil
}

// GetCustomer retrieves a customer by id
func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

// SubscribeNewsletter accepts any well-formed address and flags the matching
// customer, if there is one.
func (s *CustomerServiceImpl) SubscribeNewsletter(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if errs := checkEmail(email, models.MsgEnterEmail); errs != nil {
		return errs
	}

	err := s.repo.UpdateNewsletter(ctx, email, true)
	if err != nil && !errors.Is(err, models.ErrCustomerNotFound) {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	return nil
}

func checkEmail(email, requiredMsg string) models.FieldErrors {
	switch {
	case email == "":
		return models.FieldErrors{"Email": requiredMsg}
	case !models.ValidEmail(email):
		return models.FieldErrors{"Email": models.MsgWrongEmail}
	}
	return nil
}
