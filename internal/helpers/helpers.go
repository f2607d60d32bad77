// Package helpers holds assertions and flows shared by scenarios. Each
// helper asks only for the page capability it uses, so any page object (or
// a fake) that has it can be passed in.
package helpers

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-e2e/internal/pages"
	"github.com/adyen/storefront-e2e/internal/testdata"
)

// LoginVerifier can tell whether the current session is signed in.
type LoginVerifier interface {
	IsLoginSuccessful() bool
}

// RegistrationVerifier can tell whether a submitted registration succeeded.
type RegistrationVerifier interface {
	IsRegistrationSuccessful() bool
}

// ValidationReporter reports form validation output.
type ValidationReporter interface {
	HasValidationErrors() bool
}

// ErrorReporter returns the error text shown on the page, or "".
type ErrorReporter interface {
	GetErrorMessage() string
}

// LoginFlow opens the login form and submits it.
type LoginFlow interface {
	Goto() error
	Login(email, password string, rememberMe bool) error
}

// RegistrationFlow opens the registration form and submits it.
type RegistrationFlow interface {
	Goto() error
	RegisterUser(data pages.RegistrationData) error
}

var (
	ErrLoginFailed        = errors.New("login was not successful")
	ErrRegistrationFailed = errors.New("registration was not successful")
	ErrNoValidationErrors = errors.New("expected validation errors but none were found")
)

func AssertLoginSuccess(p LoginVerifier) error {
	if !p.IsLoginSuccessful() {
		return ErrLoginFailed
	}
	return nil
}

func AssertRegistrationSuccess(p RegistrationVerifier) error {
	if !p.IsRegistrationSuccessful() {
		return ErrRegistrationFailed
	}
	return nil
}

func AssertValidationErrors(p ValidationReporter) error {
	if !p.HasValidationErrors() {
		return ErrNoValidationErrors
	}
	return nil
}

// AssertErrorMessage checks that the page error contains want.
func AssertErrorMessage(p ErrorReporter, want string) error {
	got := p.GetErrorMessage()
	if !strings.Contains(got, want) {
		return fmt.Errorf("expected error message to contain %q but got %q", want, got)
	}
	return nil
}

// PerformLoginFlow opens the login page and logs in.
func PerformLoginFlow(p LoginFlow, email, password string, rememberMe bool) error {
	if err := p.Goto(); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}
	return p.Login(email, password, rememberMe)
}

// PerformRegistrationFlow opens the registration page and registers user.
func PerformRegistrationFlow(p RegistrationFlow, user testdata.UserData) error {
	if err := p.Goto(); err != nil {
		return fmt.Errorf("opening registration page: %w", err)
	}
	return p.RegisterUser(testdata.ToRegistrationData(user))
}

// Must stops t when err is not nil.
func Must(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}
