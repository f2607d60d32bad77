package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/locators"
)

// RegistrationData is what the registration form is filled from. Empty
// strings and a nil Newsletter leave the matching field untouched.
type RegistrationData struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Gender          string
	Newsletter      *bool
	Company         string
}

// RegistrationOutcome classifies what happened after submitting the form.
type RegistrationOutcome int

const (
	// RegistrationFailed means the browser never reached the result page.
	RegistrationFailed RegistrationOutcome = iota
	// RegisteredWithMessage means the result page showed a success message.
	RegisteredWithMessage
	// RegisteredByRedirectOnly means the result page was reached but no
	// success message could be found on it.
	RegisteredByRedirectOnly
)

func (o RegistrationOutcome) String() string {
	switch o {
	case RegistrationFailed:
		return "failed"
	case RegisteredWithMessage:
		return "registered"
	case RegisteredByRedirectOnly:
		return "registered (redirect only)"
	default:
		return fmt.Sprintf("RegistrationOutcome(%d)", int(o))
	}
}

const (
	registerResultPath = "/registerresult"
	registerResultWait = 10 * time.Second
	resultCheckTimeout = 2 * time.Second
)

// registrationSuccessSelectors are tried in order on the result page.
var registrationSuccessSelectors = []string{
	".result",
	".message-success",
	".success-message",
	".registration-success",
	`[class*="success"]`,
}

// RegisterPage is the customer registration form at /register.
type RegisterPage struct {
	*BasePage

	FirstNameInput       playwright.Locator
	LastNameInput        playwright.Locator
	EmailInput           playwright.Locator
	PasswordInput        playwright.Locator
	ConfirmPasswordInput playwright.Locator
	GenderMaleRadio      playwright.Locator
	GenderFemaleRadio    playwright.Locator
	NewsletterCheckbox   playwright.Locator
	CompanyInput         playwright.Locator
	RegisterButton       playwright.Locator

	ErrorMessage          playwright.Locator
	ValidationErrors      playwright.Locator
	FieldValidationErrors playwright.Locator
	SuccessMessage        playwright.Locator
}

func NewRegisterPage(page playwright.Page, deps Dependencies) *RegisterPage {
	return &RegisterPage{
		BasePage:              NewBasePage(page, deps),
		FirstNameInput:        page.Locator(locators.FirstNameInput),
		LastNameInput:         page.Locator(locators.LastNameInput),
		EmailInput:            page.Locator(locators.EmailInput),
		PasswordInput:         page.Locator(locators.PasswordInput),
		ConfirmPasswordInput:  page.Locator(locators.ConfirmPasswordInput),
		GenderMaleRadio:       page.Locator(locators.GenderMaleRadio),
		GenderFemaleRadio:     page.Locator(locators.GenderFemaleRadio),
		NewsletterCheckbox:    page.Locator(locators.NewsletterCheckbox),
		CompanyInput:          page.Locator(locators.CompanyInput),
		RegisterButton:        page.Locator("#register-button"),
		ErrorMessage:          page.Locator(".message-error"),
		ValidationErrors:      page.Locator(locators.ValidationErrors),
		FieldValidationErrors: page.Locator(locators.FieldValidationErrors),
		SuccessMessage:        page.Locator(".result"),
	}
}

func (r *RegisterPage) Goto() error {
	return r.BasePage.Goto("/register")
}

// FillPersonalInformation fills the personal section in form order.
func (r *RegisterPage) FillPersonalInformation(data RegistrationData) error {
	if data.Gender != "" {
		if err := r.SelectGender(data.Gender); err != nil {
			return err
		}
	}
	fields := []struct {
		name  string
		loc   playwright.Locator
		value string
	}{
		{"first name", r.FirstNameInput, data.FirstName},
		{"last name", r.LastNameInput, data.LastName},
		{"email", r.EmailInput, data.Email},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if err := r.FillInput(f.loc, f.value); err != nil {
			return fmt.Errorf("entering %s: %w", f.name, err)
		}
	}

	if data.Newsletter != nil {
		var err error
		if *data.Newsletter {
			err = r.CheckCheckbox(r.NewsletterCheckbox)
		} else {
			err = r.UncheckCheckbox(r.NewsletterCheckbox)
		}
		if err != nil {
			return fmt.Errorf("setting newsletter: %w", err)
		}
	}

	if data.Password != "" {
		if err := r.FillInput(r.PasswordInput, data.Password); err != nil {
			return fmt.Errorf("entering password: %w", err)
		}
	}
	if data.ConfirmPassword != "" {
		if err := r.FillInput(r.ConfirmPasswordInput, data.ConfirmPassword); err != nil {
			return fmt.Errorf("entering password confirmation: %w", err)
		}
	}
	return nil
}

func (r *RegisterPage) FillCompanyInformation(data RegistrationData) error {
	if data.Company == "" {
		return nil
	}
	if err := r.FillInput(r.CompanyInput, data.Company); err != nil {
		return fmt.Errorf("entering company: %w", err)
	}
	return nil
}

// RegisterUser fills the whole form and submits it.
func (r *RegisterPage) RegisterUser(data RegistrationData) error {
	if err := r.FillPersonalInformation(data); err != nil {
		return err
	}
	if err := r.FillCompanyInformation(data); err != nil {
		return err
	}
	return r.Submit()
}

// RegisterWithTestData registers the configured test user with the
// newsletter checked.
func (r *RegisterPage) RegisterWithTestData() error {
	u := r.cfg.TestUser
	subscribe := true
	return r.RegisterUser(RegistrationData{
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Password:        u.Password,
		ConfirmPassword: u.Password,
		Gender:          u.Gender,
		Newsletter:      &subscribe,
		Company:         u.Company,
	})
}

// RegisterMinimal submits only the required fields.
func (r *RegisterPage) RegisterMinimal(firstName, lastName, email, password string) error {
	return r.RegisterUser(RegistrationData{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
}

func (r *RegisterPage) Submit() error {
	return r.ClickAndWaitForLoad(r.RegisterButton)
}

// SelectGender clicks the radio for "male" or "female", ignoring case.
func (r *RegisterPage) SelectGender(gender string) error {
	switch strings.ToLower(gender) {
	case "male":
		return r.ClickElement(r.GenderMaleRadio)
	case "female":
		return r.ClickElement(r.GenderFemaleRadio)
	default:
		return fmt.Errorf("unknown gender %q", gender)
	}
}

// SelectedGender returns "Male", "Female" or "" when neither is checked.
func (r *RegisterPage) SelectedGender() string {
	switch {
	case r.IsChecked(r.GenderMaleRadio):
		return "Male"
	case r.IsChecked(r.GenderFemaleRadio):
		return "Female"
	}
	return ""
}

func (r *RegisterPage) IsNewsletterChecked() bool {
	return r.IsChecked(r.NewsletterCheckbox)
}

// ClearForm empties the text inputs. Gender and newsletter keep their state.
func (r *RegisterPage) ClearForm() error {
	for _, loc := range []playwright.Locator{
		r.FirstNameInput, r.LastNameInput, r.EmailInput,
		r.PasswordInput, r.ConfirmPasswordInput, r.CompanyInput,
	} {
		if err := loc.Clear(); err != nil {
			return fmt.Errorf("clearing registration form: %w", err)
		}
	}
	return nil
}

// RegistrationOutcome waits for the result page and classifies what it shows.
func (r *RegisterPage) RegistrationOutcome() RegistrationOutcome {
	if err := r.WaitForURL(registerResultPath, registerResultWait); err != nil {
		r.log.Debug("registration result page not reached", zap.Error(err))
		return RegistrationFailed
	}
	if !strings.Contains(r.CurrentURL(), registerResultPath) {
		return RegistrationFailed
	}
	for _, sel := range registrationSuccessSelectors {
		if r.IsVisibleWithin(r.Locator(sel).First(), resultCheckTimeout) {
			return RegisteredWithMessage
		}
	}
	r.log.Warn("registration result page has no success message", zap.String("url", r.CurrentURL()))
	return RegisteredByRedirectOnly
}

// IsRegistrationSuccessful treats reaching the result page as success, with
// or without a message.
func (r *RegisterPage) IsRegistrationSuccessful() bool {
	return r.RegistrationOutcome() != RegistrationFailed
}

// GetErrorMessage returns the error banner text, falling back to the
// validation summary, or "".
func (r *RegisterPage) GetErrorMessage() string {
	if msg := r.visibleText(r.ErrorMessage); msg != "" {
		return msg
	}
	return r.visibleText(r.ValidationErrors)
}

func (r *RegisterPage) GetFieldValidationErrors() []string {
	return r.allTexts(r.FieldValidationErrors)
}

// GetSuccessMessage returns the result page message, or "".
func (r *RegisterPage) GetSuccessMessage() string {
	return r.visibleText(r.SuccessMessage)
}

func (r *RegisterPage) FirstNameValue() (string, error) { return r.FirstNameInput.InputValue() }
func (r *RegisterPage) LastNameValue() (string, error)  { return r.LastNameInput.InputValue() }
func (r *RegisterPage) EmailValue() (string, error)     { return r.EmailInput.InputValue() }
func (r *RegisterPage) PasswordValue() (string, error)  { return r.PasswordInput.InputValue() }
func (r *RegisterPage) CompanyValue() (string, error)   { return r.CompanyInput.InputValue() }
