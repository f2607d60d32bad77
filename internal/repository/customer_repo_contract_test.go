package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-e2e/internal/models"
)

type customerStore interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	UpdateNewsletter(ctx context.Context, email string, subscribed bool) error
}

func newTestCustomer(email string) *models.Customer {
	return &models.Customer{
		ID:           uuid.New().String(),
		Email:        email,
		FirstName:    "John",
		LastName:     "Doe",
		Gender:       models.GenderMale,
		Company:      "Test Company",
		PasswordHash: []byte("hash"),
	}
}

func runCustomerStoreContract(t *testing.T, newStore func(t *testing.T) customerStore) {
	ctx := context.Background()

	t.Run("create and get by email", func(t *testing.T) {
		store := newStore(t)
		customer := newTestCustomer("john@example.com")

		require.NoError(t, store.CreateCustomer(ctx, customer))

		got, err := store.GetCustomerByEmail(ctx, "john@example.com")
		require.NoError(t, err)
		assert.Equal(t, customer.ID, got.ID)
		assert.Equal(t, "John", got.FirstName)
		assert.Equal(t, models.GenderMale, got.Gender)
		assert.Equal(t, "Test Company", got.Company)
		assert.Equal(t, []byte("hash"), got.PasswordHash)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("email lookup ignores case", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.CreateCustomer(ctx, newTestCustomer("Mixed.Case@Example.com")))

		got, err := store.GetCustomerByEmail(ctx, "mixed.case@example.COM")
		require.NoError(t, err)
		assert.Equal(t, "Mixed.Case@Example.com", got.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.CreateCustomer(ctx, newTestCustomer("dup@example.com")))

		err := store.CreateCustomer(ctx, newTestCustomer("DUP@example.com"))

		assert.ErrorIs(t, err, models.ErrEmailExists)
	})

	t.Run("get by id", func(t *testing.T) {
		store := newStore(t)
		customer := newTestCustomer("byid@example.com")
		require.NoError(t, store.CreateCustomer(ctx, customer))

		got, err := store.GetCustomerByID(ctx, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, "byid@example.com", got.Email)
	})

	t.Run("not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.GetCustomerByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, models.ErrCustomerNotFound)

		_, err = store.GetCustomerByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, models.ErrCustomerNotFound)

		err = store.UpdateNewsletter(ctx, "nobody@example.com", true)
		assert.ErrorIs(t, err, models.ErrCustomerNotFound)
	})

	t.Run("update newsletter", func(t *testing.T) {
		store := newStore(t)
		customer := newTestCustomer("news@example.com")
		require.NoError(t, store.CreateCustomer(ctx, customer))

		require.NoError(t, store.UpdateNewsletter(ctx, "NEWS@example.com", true))

		byEmail, err := store.GetCustomerByEmail(ctx, "news@example.com")
		require.NoError(t, err)
		assert.True(t, byEmail.Newsletter)

		byID, err := store.GetCustomerByID(ctx, customer.ID)
		require.NoError(t, err)
		assert.True(t, byID.Newsletter)
	})
}
