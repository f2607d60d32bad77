package repository

import (
	"context"
	"sync"
	"time"

	"github.com/adyen/storefront-e2e/internal/models"
)

// MemoryCustomerRepository keeps customers in process memory. It is the
// default store of the stub storefront.
type MemoryCustomerRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.Customer
	byID    map[string]*models.Customer
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		byEmail: make(map[string]*models.Customer),
		byID:    make(map[string]*models.Customer),
	}
}

func (r *MemoryCustomerRepository) CreateCustomer(_ context.Context, customer *models.Customer) error {
	key := models.NormalizeEmail(customer.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[key]; ok {
		return models.ErrEmailExists
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}
	stored := *customer
	r.byEmail[key] = &stored
	r.byID[customer.ID] = &stored
	return nil
}

func (r *MemoryCustomerRepository) GetCustomerByEmail(_ context.Context, email string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil, models.ErrCustomerNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *MemoryCustomerRepository) GetCustomerByID(_ context.Context, id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, models.ErrCustomerNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *MemoryCustomerRepository) UpdateNewsletter(_ context.Context, email string, subscribed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return models.ErrCustomerNotFound
	}
	c.Newsletter = subscribed
	return nil
}
