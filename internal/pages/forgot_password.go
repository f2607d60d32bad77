package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/adyen/storefront-e2e/internal/locators"
)

// ForgotPasswordPage is the password recovery form at /passwordrecovery.
type ForgotPasswordPage struct {
	*BasePage

	EmailInput       playwright.Locator
	RecoverButton    playwright.Locator
	SuccessMessage   playwright.Locator
	ErrorMessage     playwright.Locator
	ValidationErrors playwright.Locator
}

func NewForgotPasswordPage(page playwright.Page, deps Dependencies) *ForgotPasswordPage {
	return &ForgotPasswordPage{
		BasePage:         NewBasePage(page, deps),
		EmailInput:       page.Locator(locators.EmailInput),
		RecoverButton:    page.Locator(".password-recovery-button"),
		SuccessMessage:   page.Locator(".success"),
		ErrorMessage:     page.Locator(".error"),
		ValidationErrors: page.Locator(locators.FieldValidationErrors),
	}
}

func (f *ForgotPasswordPage) Goto() error {
	return f.BasePage.Goto("/passwordrecovery")
}

// RequestPasswordRecovery submits email for recovery.
func (f *ForgotPasswordPage) RequestPasswordRecovery(email string) error {
	if err := f.FillInput(f.EmailInput, email); err != nil {
		return fmt.Errorf("entering recovery email: %w", err)
	}
	return f.Submit()
}

func (f *ForgotPasswordPage) RequestPasswordRecoveryForTestUser() error {
	return f.RequestPasswordRecovery(f.cfg.TestUser.Email)
}

func (f *ForgotPasswordPage) Submit() error {
	return f.ClickAndWaitForLoad(f.RecoverButton)
}

// GoBackToLogin uses browser history, so it lands wherever the user came from.
func (f *ForgotPasswordPage) GoBackToLogin() error {
	return f.GoBack()
}

func (f *ForgotPasswordPage) GetSuccessMessage() string {
	return f.visibleText(f.SuccessMessage)
}

// GetErrorMessage returns the error text, falling back to the first field
// validation message, or "".
func (f *ForgotPasswordPage) GetErrorMessage() string {
	if msg := f.visibleText(f.ErrorMessage); msg != "" {
		return msg
	}
	return f.visibleText(f.ValidationErrors)
}

func (f *ForgotPasswordPage) IsRecoveryRequestSuccessful() bool {
	return f.IsVisible(f.SuccessMessage.First())
}

func (f *ForgotPasswordPage) HasValidationErrors() bool {
	return f.IsVisible(f.ValidationErrors.First())
}

func (f *ForgotPasswordPage) ClearEmail() error {
	if err := f.EmailInput.Clear(); err != nil {
		return fmt.Errorf("clearing recovery email: %w", err)
	}
	return nil
}

func (f *ForgotPasswordPage) EmailValue() (string, error) {
	return f.EmailInput.InputValue()
}

func (f *ForgotPasswordPage) IsEmailInputEmpty() (bool, error) {
	v, err := f.EmailValue()
	if err != nil {
		return false, err
	}
	return v == "", nil
}
