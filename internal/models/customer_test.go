package models

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func validRegistration() Registration {
	return Registration{
		Gender:          GenderFemale,
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Newsletter:      true,
		Password:        "Test123!",
		ConfirmPassword: "Test123!",
	}
}

func TestRegistration_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Registration)
		want   FieldErrors
	}{
		{
			name:   "valid registration",
			modify: func(r *Registration) {},
			want:   nil,
		},
		{
			name: "all required fields empty",
			modify: func(r *Registration) {
				*r = Registration{}
			},
			want: FieldErrors{
				"FirstName":       MsgFirstNameRequired,
				"LastName":        MsgLastNameRequired,
				"Email":           MsgEmailRequired,
				"Password":        MsgPasswordRequired,
				"ConfirmPassword": MsgPasswordRequired,
			},
		},
		{
			name:   "invalid email",
			modify: func(r *Registration) { r.Email = "invalid-email" },
			want:   FieldErrors{"Email": MsgEmailInvalid},
		},
		{
			name: "password too short",
			modify: func(r *Registration) {
				r.Password = "123"
				r.ConfirmPassword = "123"
			},
			want: FieldErrors{"Password": MsgPasswordRules},
		},
		{
			name: "password too long",
			modify: func(r *Registration) {
				r.Password = strings.Repeat("a", 65)
				r.ConfirmPassword = r.Password
			},
			want: FieldErrors{"Password": MsgPasswordRules},
		},
		{
			name:   "confirmation mismatch",
			modify: func(r *Registration) { r.ConfirmPassword = "Different123!" },
			want:   FieldErrors{"ConfirmPassword": MsgPasswordMismatch},
		},
		{
			name: "accented names are accepted",
			modify: func(r *Registration) {
				r.FirstName = "José"
				r.LastName = "García-López"
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRegistration()
			tt.modify(&r)

			got := r.Validate()

			if len(got) != len(tt.want) {
				t.Fatalf("Validate() = %v, want %v", got, tt.want)
			}
			for field, msg := range tt.want {
				if got[field] != msg {
					t.Errorf("Validate()[%s] = %q, want %q", field, got[field], msg)
				}
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"test@example.com", true},
		{"test+special@example.com", true},
		{"invalid-email", false},
		{"test@@example.com", false},
		{"@example.com", false},
		{"test@example", false},
		{"Jane <jane@example.com>", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := ValidEmail(tt.email); got != tt.want {
				t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestNewCustomer(t *testing.T) {
	r := validRegistration()
	r.Email = "  jane@example.com "
	r.Company = "Acme"

	customer, err := NewCustomer(r, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewCustomer() unexpected error = %v", err)
	}

	if customer.ID == "" {
		t.Error("Customer ID should not be empty")
	}
	if customer.Email != "jane@example.com" {
		t.Errorf("Expected trimmed email, got %q", customer.Email)
	}
	if customer.FullName() != "Jane Doe" {
		t.Errorf("Expected full name Jane Doe, got %q", customer.FullName())
	}
	if string(customer.PasswordHash) == r.Password {
		t.Error("Password should be stored hashed")
	}
	if err := customer.CheckPassword("Test123!"); err != nil {
		t.Errorf("CheckPassword() with the right password = %v", err)
	}
	if err := customer.CheckPassword("wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("CheckPassword() with a wrong password = %v, want %v", err, ErrWrongPassword)
	}
}

func TestNewCustomer_InvalidInput(t *testing.T) {
	customer, err := NewCustomer(Registration{}, bcrypt.MinCost)

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("NewCustomer() error = %v, want %v", err, ErrInvalidInput)
	}
	var fields FieldErrors
	if !errors.As(err, &fields) || fields["Email"] != MsgEmailRequired {
		t.Errorf("Expected field errors to be returned, got %v", err)
	}
	if customer != nil {
		t.Error("Expected customer to be nil when error occurs")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail(" Jane@Example.COM "); got != "jane@example.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}
