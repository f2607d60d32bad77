package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/adyen/storefront-e2e/internal/models"
)

// PostgresCustomerRepository stores customers in the customers table.
type PostgresCustomerRepository struct {
	db *sqlx.DB
}

// NewPostgresCustomerRepository creates a customer repository with a specific database connection
func NewPostgresCustomerRepository(db *sqlx.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db: db,
	}
}

type customerRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	EmailKey     string    `db:"email_key"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Gender       string    `db:"gender"`
	Company      string    `db:"company"`
	Newsletter   bool      `db:"newsletter"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r customerRow) toModel() *models.Customer {
	return &models.Customer{
		ID:           r.ID,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Gender:       models.Gender(r.Gender),
		Company:      r.Company,
		Newsletter:   r.Newsletter,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

const customerColumns = `id, email, email_key, first_name, last_name, gender, company, newsletter, password_hash, created_at`

// CreateCustomer inserts customer, returning models.ErrEmailExists when the
// address is already registered in any letter case.
func (r *PostgresCustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}
	row := customerRow{
		ID:           customer.ID,
		Email:        customer.Email,
		EmailKey:     models.NormalizeEmail(customer.Email),
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		Gender:       string(customer.Gender),
		Company:      customer.Company,
		Newsletter:   customer.Newsletter,
		PasswordHash: customer.PasswordHash,
		CreatedAt:    customer.CreatedAt,
	}

	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES (:id, :email, :email_key, :first_name, :last_name, :gender, :company, :newsletter, :password_hash, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		if isUniqueViolation(err) {
			return models.ErrEmailExists
		}
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetCustomerByEmail looks a customer up case-insensitively.
func (r *PostgresCustomerRepository) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.get(ctx, `SELECT `+customerColumns+` FROM customers WHERE email_key = $1`, models.NormalizeEmail(email))
}

// GetCustomerByID retrieves a customer by its id
func (r *PostgresCustomerRepository) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.get(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

func (r *PostgresCustomerRepository) get(ctx context.Context, query string, arg any) (*models.Customer, error) {
	var row customerRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return row.toModel(), nil
}

// UpdateNewsletter sets the newsletter flag of the customer with email.
func (r *PostgresCustomerRepository) UpdateNewsletter(ctx context.Context, email string, subscribed bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE customers SET newsletter = $1 WHERE email_key = $2`,
		subscribed, models.NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("failed to update newsletter: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrCustomerNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
