package helpers

import (
	"strings"

	"github.com/adyen/storefront-e2e/internal/testdata"
)

// LoginCase is one negative login attempt.
type LoginCase struct {
	Description string
	Email       string
	Password    string
}

// ValidationTestCases are login submissions the form rejects before the
// server is asked.
func ValidationTestCases() []LoginCase {
	return []LoginCase{
		{Description: "empty email", Email: "", Password: "password"},
		{Description: "empty password", Email: "test@example.com", Password: ""},
		{Description: "invalid email format", Email: "invalid-email", Password: "password"},
	}
}

// InvalidLoginTestCases are well-formed submissions the server rejects,
// built around the account of user.
func InvalidLoginTestCases(user testdata.UserData) []LoginCase {
	return []LoginCase{
		{Description: "special characters in password", Email: user.Email, Password: "Test@123#"},
		{Description: "very long password", Email: user.Email, Password: strings.Repeat("a", 100)},
		{Description: "very long email", Email: strings.Repeat("a", 50) + "@example.com", Password: "password"},
	}
}
