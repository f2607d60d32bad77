//go:build e2e

package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-e2e/internal/locators"
)

// Feature: Password Recovery
//
//	As a customer who forgot a password
//	I want to request recovery instructions
//	So that I can regain access
func TestForgotPassword_RegisteredEmail(t *testing.T) {
	f := newFixtures(t)
	user := f.RegisteredUser()

	require.NoError(t, f.ForgotPassword.Goto())
	require.NoError(t, f.ForgotPassword.RequestPasswordRecovery(user.Email))

	assert.True(t, f.ForgotPassword.IsRecoveryRequestSuccessful())
	assert.Contains(t, f.ForgotPassword.GetSuccessMessage(), locators.MsgRecoveryEmailSent)
}

func TestForgotPassword_RepeatedRequests(t *testing.T) {
	f := newFixtures(t)
	user := f.RegisteredUser()

	for i := 0; i < 2; i++ {
		require.NoError(t, f.ForgotPassword.Goto())
		require.NoError(t, f.ForgotPassword.RequestPasswordRecovery(user.Email))
		assert.True(t, f.ForgotPassword.IsRecoveryRequestSuccessful(), "request %d", i+1)
	}
}

func TestForgotPassword_EmptyEmail(t *testing.T) {
	f := newFixtures(t)
	require.NoError(t, f.ForgotPassword.Goto())

	require.NoError(t, f.ForgotPassword.ClickElement(f.ForgotPassword.RecoverButton))

	assert.True(t, f.ForgotPassword.HasValidationErrors())
}

func TestForgotPassword_MalformedEmail(t *testing.T) {
	for _, email := range []string{"invalid-email", "test@@example.com"} {
		t.Run(email, func(t *testing.T) {
			f := newFixtures(t)
			require.NoError(t, f.ForgotPassword.Goto())

			require.NoError(t, f.ForgotPassword.RequestPasswordRecovery(email))

			assert.True(t, f.ForgotPassword.HasValidationErrors())
		})
	}
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	for _, email := range []string{
		"nonexistent@example.com",
		"test+special@example.com",
		strings.Repeat("a", 50) + "@example.com",
	} {
		t.Run(email, func(t *testing.T) {
			f := newFixtures(t)
			require.NoError(t, f.ForgotPassword.Goto())

			require.NoError(t, f.ForgotPassword.RequestPasswordRecovery(email))

			assert.Contains(t, f.ForgotPassword.GetErrorMessage(), locators.MsgRecoveryEmailMissing)
		})
	}
}

func TestForgotPassword_ClearEmail(t *testing.T) {
	f := newFixtures(t)
	require.NoError(t, f.ForgotPassword.Goto())

	require.NoError(t, f.ForgotPassword.FillInput(f.ForgotPassword.EmailInput, "test@example.com"))
	assertValue(t, f.ForgotPassword.EmailValue, "test@example.com")

	require.NoError(t, f.ForgotPassword.ClearEmail())
	empty, err := f.ForgotPassword.IsEmailInputEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestForgotPassword_KeepsEmailAfterFailure(t *testing.T) {
	f := newFixtures(t)
	require.NoError(t, f.ForgotPassword.Goto())

	require.NoError(t, f.ForgotPassword.RequestPasswordRecovery("test@example.com"))

	assertValue(t, f.ForgotPassword.EmailValue, "test@example.com")
}
