package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadRuntime_Defaults(t *testing.T) {
	// GIVEN an empty environment
	getenv := envFrom(nil)

	// WHEN
	cfg := LoadRuntime(getenv)

	// THEN every field has its default
	assert.Equal(t, "https://demo.nopcommerce.com", cfg.BaseURL)
	assert.Equal(t, TestUser{
		Email:      "test@example.com",
		Password:   "Test123!",
		FirstName:  "Test",
		LastName:   "User",
		Gender:     "Male",
		Newsletter: true,
		Company:    "Test Company",
	}, cfg.TestUser)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 60000, cfg.Browser.Timeout)
	assert.Equal(t, time.Minute, cfg.Browser.ActionTimeout())
}

func TestLoadRuntime_Overrides(t *testing.T) {
	getenv := envFrom(map[string]string{
		"BASE_URL":           "http://localhost:8080",
		"TEST_USER_EMAIL":    "qa@example.com",
		"TEST_USER_PASSWORD": "Secret1!",
		"TEST_FIRST_NAME":    "Quinn",
		"TEST_LAST_NAME":     "Archer",
		"TEST_GENDER":        "Female",
		"TEST_COMPANY":       "QA Ltd",
		"TIMEOUT":            "15000",
	})

	cfg := LoadRuntime(getenv)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "qa@example.com", cfg.TestUser.Email)
	assert.Equal(t, "Secret1!", cfg.TestUser.Password)
	assert.Equal(t, "Quinn", cfg.TestUser.FirstName)
	assert.Equal(t, "Archer", cfg.TestUser.LastName)
	assert.Equal(t, "Female", cfg.TestUser.Gender)
	assert.Equal(t, "QA Ltd", cfg.TestUser.Company)
	assert.Equal(t, 15000, cfg.Browser.Timeout)
}

func TestLoadRuntime_BooleanFlags(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "unset keeps default", value: "", want: true},
		{name: "exact false flips", value: "false", want: false},
		{name: "uppercase FALSE is ignored", value: "FALSE", want: true},
		{name: "zero is ignored", value: "0", want: true},
		{name: "no is ignored", value: "no", want: true},
		{name: "true keeps default", value: "true", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadRuntime(envFrom(map[string]string{
				"HEADLESS":        tt.value,
				"TEST_NEWSLETTER": tt.value,
			}))

			assert.Equal(t, tt.want, cfg.Browser.Headless)
			assert.Equal(t, tt.want, cfg.TestUser.Newsletter)
		})
	}
}

func TestLoadRuntime_TimeoutFallsBackOnBadInput(t *testing.T) {
	for _, value := range []string{"abc", "-5", "0", "12.5", " "} {
		t.Run(value, func(t *testing.T) {
			cfg := LoadRuntime(envFrom(map[string]string{"TIMEOUT": value}))
			assert.Equal(t, DefaultActionTimeout, cfg.Browser.Timeout)
		})
	}
}

func TestLoadRuntime_Deterministic(t *testing.T) {
	getenv := envFrom(map[string]string{"BASE_URL": "http://stub", "HEADLESS": "false"})

	first := LoadRuntime(getenv)
	second := LoadRuntime(getenv)

	require.Equal(t, first, second)
}

func TestRuntimeConfig_URL(t *testing.T) {
	cfg := RuntimeConfig{BaseURL: "https://demo.nopcommerce.com/"}

	tests := []struct {
		path string
		want string
	}{
		{path: "/login", want: "https://demo.nopcommerce.com/login"},
		{path: "register", want: "https://demo.nopcommerce.com/register"},
		{path: "", want: "https://demo.nopcommerce.com"},
		{path: "http://elsewhere/x", want: "http://elsewhere/x"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.URL(tt.path))
		})
	}
}
