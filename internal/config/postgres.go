package config

import (
	"fmt"
	"strings"
)

// PostgresConfig holds the connection settings for the stub storefront's
// customer store.
type PostgresConfig struct {
	User     string
	Password string
	Database string
	Host     string
	Port     string
	SSLMode  string
	// Schema, when set, is applied as the connection search_path.
	Schema string
}

// LoadPostgresConfig reads PostgresConfig via getenv. Credentials, database
// and host are required; port and sslmode have defaults.
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	cfg := &PostgresConfig{
		User:     getenv("POSTGRES_USER"),
		Password: getenv("POSTGRES_PASSWORD"),
		Database: getenv("POSTGRES_DB"),
		Host:     getenv("POSTGRES_HOSTNAME"),
		Port:     stringOr(getenv("POSTGRES_PORT"), "5432"),
		SSLMode:  stringOr(getenv("POSTGRES_SSLMODE"), "disable"),
		Schema:   getenv("POSTGRES_SCHEMA"),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"POSTGRES_USER", cfg.User},
		{"POSTGRES_PASSWORD", cfg.Password},
		{"POSTGRES_DB", cfg.Database},
		{"POSTGRES_HOSTNAME", cfg.Host},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s required", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// ConnectionString returns a lib/pq keyword/value connection string.
func (c *PostgresConfig) ConnectionString() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
	if c.Schema != "" {
		dsn += " search_path=" + c.Schema
	}
	return dsn
}
