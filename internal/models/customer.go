package models

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Gender values as posted by the registration form.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
)

// Password length bounds enforced at registration.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 64
)

// Field validation copy, as the storefront renders it.
const (
	MsgFirstNameRequired  = "First name is required."
	MsgLastNameRequired   = "Last name is required."
	MsgEmailRequired      = "Email is required."
	MsgEmailInvalid       = "Please enter a valid email address."
	MsgWrongEmail         = "Wrong email"
	MsgPasswordRequired   = "Password is required."
	MsgPasswordRules      = "Password must meet the following rules: must have at least 6 characters and not greater than 64 characters"
	MsgPasswordMismatch   = "The password and confirmation password do not match."
	MsgEnterEmail         = "Please enter your email"
	MsgEmailAlreadyExists = "The specified email already exists"
)

// Customer is a registered storefront account.
type Customer struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Gender       Gender
	Company      string
	Newsletter   bool
	PasswordHash []byte
	CreatedAt    time.Time
}

// Domain errors
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrWrongPassword    = errors.New("the credentials provided are incorrect")
	ErrInvalidInput     = errors.New("invalid input")
)

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e FieldErrors) Unwrap() error {
	return ErrInvalidInput
}

// Registration is the posted registration form.
type Registration struct {
	Gender          Gender
	FirstName       string
	LastName        string
	Email           string
	Company         string
	Newsletter      bool
	Password        string
	ConfirmPassword string
}

// ValidEmail reports whether s is a single bare address such as a@b.co.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at:], ".")
}

// Validate returns the field errors of r, or nil.
func (r Registration) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(r.FirstName) == "" {
		errs["FirstName"] = MsgFirstNameRequired
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["LastName"] = MsgLastNameRequired
	}
	switch {
	case strings.TrimSpace(r.Email) == "":
		errs["Email"] = MsgEmailRequired
	case !ValidEmail(strings.TrimSpace(r.Email)):
		errs["Email"] = MsgEmailInvalid
	}
	switch n := len([]rune(r.Password)); {
	case n == 0:
		errs["Password"] = MsgPasswordRequired
	case n < MinPasswordLength || n > MaxPasswordLength:
		errs["Password"] = MsgPasswordRules
	}
	switch {
	case r.ConfirmPassword == "":
		errs["ConfirmPassword"] = MsgPasswordRequired
	case r.ConfirmPassword != r.Password:
		errs["ConfirmPassword"] = MsgPasswordMismatch
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// NewCustomer validates r and returns the customer it describes, hashing the
// password with the given bcrypt cost.
func NewCustomer(r Registration, cost int) (*Customer, error) {
	if errs := r.Validate(); errs != nil {
		return nil, errs
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return &Customer{
		ID:           uuid.New().String(),
		Email:        strings.TrimSpace(r.Email),
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		Gender:       r.Gender,
		Company:      strings.TrimSpace(r.Company),
		Newsletter:   r.Newsletter,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}, nil
}

// CheckPassword returns ErrWrongPassword unless password matches.
func (c *Customer) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// FullName returns "First Last".
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// NormalizeEmail is the lookup key for an email; addresses match case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
