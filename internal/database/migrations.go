package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema creates the tables the stub storefront persists to. It is
// idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS customers (
	id UUID PRIMARY KEY,
	email VARCHAR(255) NOT NULL,
	email_key VARCHAR(255) UNIQUE NOT NULL,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	gender VARCHAR(1) NOT NULL DEFAULT '',
	company VARCHAR(255) NOT NULL DEFAULT '',
	newsletter BOOLEAN NOT NULL DEFAULT FALSE,
	password_hash BYTEA NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_customers_created_at ON customers(created_at);
`

// RunMigrations creates the necessary database tables
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create customers table: %w", err)
	}

	return nil
}
