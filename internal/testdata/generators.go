package testdata

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adyen/storefront-e2e/internal/pages"
)

const generatedPassword = "Test123!"

// GenerateUniqueEmail returns an address that no other call in this run
// returns: prefix, the current unix millis and a random suffix.
func GenerateUniqueEmail(prefix string) string {
	if prefix == "" {
		prefix = "test"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return fmt.Sprintf("%s%d%s@example.com", prefix, time.Now().UnixMilli(), suffix)
}

// GenerateRandomUser returns a fresh user with a unique email and a random gender.
func GenerateRandomUser() UserData {
	ts := time.Now().UnixMilli()
	return UserData{
		FirstName:  fmt.Sprintf("Test%d", ts),
		LastName:   fmt.Sprintf("User%d", ts),
		Email:      GenerateUniqueEmail("test"),
		Password:   generatedPassword,
		Gender:     RandomGender(),
		Newsletter: boolPtr(true),
		Company:    fmt.Sprintf("Company%d", ts),
	}
}

func pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

func RandomSearchTerm() string     { return pick(searchTerms) }
func RandomCategory() string       { return pick(categories) }
func RandomManufacturer() string   { return pick(manufacturers) }
func RandomPriceRange() PriceRange { return pick(priceRanges) }
func RandomGender() string         { return pick(genderOptions) }

// ToRegistrationData maps u onto the registration form, confirming the password.
func ToRegistrationData(u UserData) pages.RegistrationData {
	data := pages.RegistrationData{
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Password:        u.Password,
		ConfirmPassword: u.Password,
		Gender:          u.Gender,
		Company:         u.Company,
	}
	if u.Newsletter != nil {
		data.Newsletter = boolPtr(*u.Newsletter)
	}
	return data
}
