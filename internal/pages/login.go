package pages

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/locators"
)

// LoginPage is the customer sign-in form at /login.
type LoginPage struct {
	*BasePage

	EmailInput         playwright.Locator
	PasswordInput      playwright.Locator
	RememberMeCheckbox playwright.Locator
	LoginButton        playwright.Locator
	ForgotPasswordLink playwright.Locator
	RegisterButton     playwright.Locator
	MyAccountLink      playwright.Locator
}

func NewLoginPage(page playwright.Page, deps Dependencies) *LoginPage {
	return &LoginPage{
		BasePage:           NewBasePage(page, deps),
		EmailInput:         page.Locator(locators.EmailInput),
		PasswordInput:      page.Locator(locators.PasswordInput),
		RememberMeCheckbox: page.Locator(locators.RememberMeCheckbox),
		LoginButton:        page.Locator(locators.LoginButton),
		ForgotPasswordLink: page.Locator(locators.ForgotPasswordLink),
		RegisterButton:     page.Locator(locators.RegisterButton),
		MyAccountLink:      page.Locator(locators.MyAccountLink).First(),
	}
}

func (l *LoginPage) Goto() error {
	return l.BasePage.Goto("/login")
}

// Login fills the form and submits it. It does not wait for the result.
func (l *LoginPage) Login(email, password string, rememberMe bool) error {
	if err := l.FillInput(l.EmailInput, email); err != nil {
		return fmt.Errorf("entering email: %w", err)
	}
	if err := l.FillInput(l.PasswordInput, password); err != nil {
		return fmt.Errorf("entering password: %w", err)
	}
	if rememberMe {
		if err := l.CheckCheckbox(l.RememberMeCheckbox); err != nil {
			return err
		}
	}
	return l.ClickAndWaitForLoad(l.LoginButton)
}

// LoginWithTestUser logs in with the configured test account.
func (l *LoginPage) LoginWithTestUser() error {
	u := l.cfg.TestUser
	return l.Login(u.Email, u.Password, false)
}

func (l *LoginPage) ClickForgotPassword() error {
	return l.ClickElement(l.ForgotPasswordLink)
}

func (l *LoginPage) ClickRegister() error {
	return l.ClickElement(l.RegisterButton)
}

// IsLoginSuccessful navigates home and reports whether the "My account" link
// is shown, which only happens for a signed-in customer.
func (l *LoginPage) IsLoginSuccessful() bool {
	if _, err := l.page.Goto(l.cfg.URL("/"), playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   millis(10 * time.Second),
	}); err != nil {
		l.log.Warn("navigating home to verify login", zap.Error(err))
		return false
	}
	return l.IsVisible(l.MyAccountLink)
}

// MyAccountVisible checks the "My account" link on the current page.
func (l *LoginPage) MyAccountVisible() bool {
	return l.IsVisible(l.MyAccountLink)
}

// ClearForm empties both inputs.
func (l *LoginPage) ClearForm() error {
	if err := l.EmailInput.Clear(); err != nil {
		return fmt.Errorf("clearing email: %w", err)
	}
	if err := l.PasswordInput.Clear(); err != nil {
		return fmt.Errorf("clearing password: %w", err)
	}
	return nil
}

func (l *LoginPage) IsRememberMeChecked() bool {
	return l.IsChecked(l.RememberMeCheckbox)
}

func (l *LoginPage) EmailValue() (string, error) {
	return l.EmailInput.InputValue()
}

func (l *LoginPage) PasswordValue() (string, error) {
	return l.PasswordInput.InputValue()
}
