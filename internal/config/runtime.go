package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultBaseURL       = "https://demo.nopcommerce.com"
	DefaultUserEmail     = "test@example.com"
	DefaultUserPassword  = "Test123!"
	DefaultFirstName     = "Test"
	DefaultLastName      = "User"
	DefaultGender        = "Male"
	DefaultCompany       = "Test Company"
	DefaultActionTimeout = 60000
)

// TestUser is the account the page objects fall back to when a scenario does
// not bring its own user.
type TestUser struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Gender     string
	Newsletter bool
	Company    string
}

// BrowserConfig holds browser settings shared by every page.
type BrowserConfig struct {
	Headless bool
	// Timeout is the action and navigation timeout in milliseconds.
	Timeout int
}

// ActionTimeout returns Timeout as a duration.
func (b BrowserConfig) ActionTimeout() time.Duration {
	return time.Duration(b.Timeout) * time.Millisecond
}

// RuntimeConfig holds the settings a page object needs to talk to the
// storefront under test.
type RuntimeConfig struct {
	BaseURL  string
	TestUser TestUser
	Browser  BrowserConfig
}

// LoadRuntime builds a RuntimeConfig from getenv, falling back to defaults
// field by field. It never fails.
func LoadRuntime(getenv func(string) string) RuntimeConfig {
	return RuntimeConfig{
		BaseURL: stringOr(getenv("BASE_URL"), DefaultBaseURL),
		TestUser: TestUser{
			Email:      stringOr(getenv("TEST_USER_EMAIL"), DefaultUserEmail),
			Password:   stringOr(getenv("TEST_USER_PASSWORD"), DefaultUserPassword),
			FirstName:  stringOr(getenv("TEST_FIRST_NAME"), DefaultFirstName),
			LastName:   stringOr(getenv("TEST_LAST_NAME"), DefaultLastName),
			Gender:     stringOr(getenv("TEST_GENDER"), DefaultGender),
			Newsletter: getenv("TEST_NEWSLETTER") != "false",
			Company:    stringOr(getenv("TEST_COMPANY"), DefaultCompany),
		},
		Browser: BrowserConfig{
			Headless: getenv("HEADLESS") != "false",
			Timeout:  positiveIntOr(getenv("TIMEOUT"), DefaultActionTimeout),
		},
	}
}

// Load is LoadRuntime over the process environment.
func Load() RuntimeConfig {
	return LoadRuntime(os.Getenv)
}

// URL resolves path against BaseURL. Absolute URLs are returned unchanged.
func (c RuntimeConfig) URL(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	base := strings.TrimRight(c.BaseURL, "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func positiveIntOr(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
