// Package pages contains the page objects for the storefront under test.
//
// Every page object embeds BasePage, which wraps the playwright primitives
// with the waits, retries and checks the storefront needs. Operations that a
// scenario depends on return an error; checks (IsVisible, Exists and the
// message getters) report absence as false or an empty string instead.
package pages

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/browser"
	"github.com/adyen/storefront-e2e/internal/config"
	"github.com/adyen/storefront-e2e/internal/locators"
)

// Timeouts used by navigation and visibility checks. Actions use the configured
// RuntimeConfig timeout instead.
const (
	NavigationTimeout      = 30 * time.Second
	NavigationRetryTimeout = 15 * time.Second
	DOMReadyTimeout        = 15 * time.Second
	NetworkIdleTimeout     = 10 * time.Second
	DOMReadyFallback       = 5 * time.Second
	CheckTimeout           = 5 * time.Second
	scrollSettle           = 500 * time.Millisecond
)

// Dependencies is what every page object is built from. One value is
// created per test process and shared by all page objects.
type Dependencies struct {
	Config config.RuntimeConfig
	Logger *zap.Logger
	// Pacer may be nil.
	Pacer *browser.Pacer
	// ScreenshotDir is where TakeScreenshot writes. Defaults to "screenshots".
	ScreenshotDir string
	// PriceSliderMax is the price at the right edge of the listing slider.
	// Defaults to DefaultPriceSliderMax.
	PriceSliderMax float64
}

// BasePage wraps one live playwright page. It does not own the page.
type BasePage struct {
	page          playwright.Page
	cfg           config.RuntimeConfig
	log           *zap.Logger
	pacer         *browser.Pacer
	screenshotDir string
}

// NewBasePage binds deps to page.
func NewBasePage(page playwright.Page, deps Dependencies) *BasePage {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	dir := deps.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	return &BasePage{
		page:          page,
		cfg:           deps.Config,
		log:           log,
		pacer:         deps.Pacer,
		screenshotDir: dir,
	}
}

func millis(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}

// Page returns the underlying playwright page.
func (b *BasePage) Page() playwright.Page {
	return b.page
}

// Config returns the runtime configuration the page was built with.
func (b *BasePage) Config() config.RuntimeConfig {
	return b.cfg
}

// Locator resolves selector lazily against the page.
func (b *BasePage) Locator(selector string) playwright.Locator {
	return b.page.Locator(selector)
}

func (b *BasePage) actionTimeout(timeout []time.Duration) time.Duration {
	if len(timeout) > 0 && timeout[0] > 0 {
		return timeout[0]
	}
	return b.cfg.Browser.ActionTimeout()
}

// Goto navigates to path relative to the base URL and waits for the page to
// load. A failed attempt is retried once with a shorter timeout.
func (b *BasePage) Goto(path string) error {
	return b.GotoContext(context.Background(), path)
}

// GotoContext is Goto with ctx bounding the wait for the navigation pacer.
func (b *BasePage) GotoContext(ctx context.Context, path string) error {
	url := b.cfg.URL(path)
	if err := b.pacer.Wait(ctx); err != nil {
		return fmt.Errorf("waiting to navigate to %s: %w", url, err)
	}

	if err := b.navigate(url, NavigationTimeout); err != nil {
		b.log.Warn("navigation timed out, retrying", zap.String("url", url), zap.Error(err))
		if err := b.navigate(url, NavigationRetryTimeout); err != nil {
			return fmt.Errorf("navigating to %s: %w", url, err)
		}
	}
	return nil
}

func (b *BasePage) navigate(url string, timeout time.Duration) error {
	if _, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   millis(timeout),
	}); err != nil {
		return err
	}
	return b.WaitForPageLoad()
}

// WaitForPageLoad waits for DOM ready and then for network quiescence. If the
// network never settles, DOM ready is accepted as loaded.
func (b *BasePage) WaitForPageLoad() error {
	err := b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateDomcontentloaded,
		Timeout: millis(DOMReadyTimeout),
	})
	if err == nil {
		err = b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
			State:   playwright.LoadStateNetworkidle,
			Timeout: millis(NetworkIdleTimeout),
		})
	}
	if err != nil {
		b.log.Warn("page load timeout, continuing with DOM content loaded", zap.String("url", b.page.URL()), zap.Error(err))
		if err := b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
			State:   playwright.LoadStateDomcontentloaded,
			Timeout: millis(DOMReadyFallback),
		}); err != nil {
			return fmt.Errorf("waiting for page load: %w", err)
		}
	}
	return nil
}

// WaitForNetworkIdle waits for network quiescence with the action timeout.
func (b *BasePage) WaitForNetworkIdle() error {
	return b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: millis(b.cfg.Browser.ActionTimeout()),
	})
}

// WaitForElement waits for loc to become visible.
func (b *BasePage) WaitForElement(loc playwright.Locator, timeout ...time.Duration) error {
	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(b.actionTimeout(timeout)),
	}); err != nil {
		return fmt.Errorf("waiting for element: %w", err)
	}
	return nil
}

// WaitForElementAndScroll waits for loc, scrolls it into view and lets the
// layout settle.
func (b *BasePage) WaitForElementAndScroll(loc playwright.Locator, timeout ...time.Duration) error {
	if err := b.WaitForElement(loc, timeout...); err != nil {
		return err
	}
	if err := loc.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scrolling element into view: %w", err)
	}
	b.page.WaitForTimeout(float64(scrollSettle.Milliseconds()))
	return nil
}

// WaitForElementHidden waits for loc to be hidden or detached.
func (b *BasePage) WaitForElementHidden(loc playwright.Locator, timeout ...time.Duration) error {
	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: millis(b.actionTimeout(timeout)),
	}); err != nil {
		return fmt.Errorf("waiting for element to hide: %w", err)
	}
	return nil
}

// ClickElement waits for loc, scrolls to it and clicks.
func (b *BasePage) ClickElement(loc playwright.Locator, timeout ...time.Duration) error {
	if err := b.WaitForElementAndScroll(loc, timeout...); err != nil {
		return err
	}
	if err := loc.Click(); err != nil {
		return fmt.Errorf("clicking element: %w", err)
	}
	return nil
}

// FillInput clears loc and types text into it.
func (b *BasePage) FillInput(loc playwright.Locator, text string, timeout ...time.Duration) error {
	if err := b.WaitForElementAndScroll(loc, timeout...); err != nil {
		return err
	}
	if err := loc.Clear(); err != nil {
		return fmt.Errorf("clearing input: %w", err)
	}
	if err := loc.Fill(text); err != nil {
		return fmt.Errorf("filling input: %w", err)
	}
	return nil
}

// SelectOption selects the option whose value is value, or else the option
// labelled value.
func (b *BasePage) SelectOption(loc playwright.Locator, value string, timeout ...time.Duration) error {
	if err := b.WaitForElement(loc, timeout...); err != nil {
		return err
	}
	opts := playwright.SelectOptionValues{Labels: &[]string{value}}
	if n, err := loc.Locator(fmt.Sprintf("option[value=%q]", value)).Count(); err == nil && n > 0 {
		opts = playwright.SelectOptionValues{Values: &[]string{value}}
	}
	if _, err := loc.SelectOption(opts, playwright.LocatorSelectOptionOptions{
		Timeout: millis(b.actionTimeout(timeout)),
	}); err != nil {
		return fmt.Errorf("selecting option %q: %w", value, err)
	}
	return nil
}

// ClickAndWaitForLoad clicks loc and waits for the page it leads to.
func (b *BasePage) ClickAndWaitForLoad(loc playwright.Locator, timeout ...time.Duration) error {
	if err := b.ClickElement(loc, timeout...); err != nil {
		return err
	}
	return b.WaitForPageLoad()
}

// SelectAndWaitForLoad selects value in loc and waits for the listing to
// reload.
func (b *BasePage) SelectAndWaitForLoad(loc playwright.Locator, value string, timeout ...time.Duration) error {
	if err := b.SelectOption(loc, value, timeout...); err != nil {
		return err
	}
	return b.WaitForPageLoad()
}

// CheckCheckbox waits for loc and checks it.
func (b *BasePage) CheckCheckbox(loc playwright.Locator, timeout ...time.Duration) error {
	if err := b.WaitForElement(loc, timeout...); err != nil {
		return err
	}
	if err := loc.Check(); err != nil {
		return fmt.Errorf("checking checkbox: %w", err)
	}
	return nil
}

// UncheckCheckbox waits for loc and unchecks it.
func (b *BasePage) UncheckCheckbox(loc playwright.Locator, timeout ...time.Duration) error {
	if err := b.WaitForElement(loc, timeout...); err != nil {
		return err
	}
	if err := loc.Uncheck(); err != nil {
		return fmt.Errorf("unchecking checkbox: %w", err)
	}
	return nil
}

// GetText waits for loc and returns its text content.
func (b *BasePage) GetText(loc playwright.Locator, timeout ...time.Duration) (string, error) {
	if err := b.WaitForElement(loc, timeout...); err != nil {
		return "", err
	}
	text, err := loc.TextContent()
	if err != nil {
		return "", fmt.Errorf("reading element text: %w", err)
	}
	return text, nil
}

// IsVisible reports whether loc becomes visible within CheckTimeout.
func (b *BasePage) IsVisible(loc playwright.Locator) bool {
	return b.IsVisibleWithin(loc, CheckTimeout)
}

// IsVisibleWithin reports whether loc becomes visible within timeout.
func (b *BasePage) IsVisibleWithin(loc playwright.Locator, timeout time.Duration) bool {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(timeout),
	}) == nil
}

// Exists reports whether loc is attached to the DOM within CheckTimeout,
// visible or not.
func (b *BasePage) Exists(loc playwright.Locator) bool {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: millis(CheckTimeout),
	}) == nil
}

// IsChecked reports the checked state of loc; errors read as unchecked.
func (b *BasePage) IsChecked(loc playwright.Locator) bool {
	checked, err := loc.IsChecked()
	if err != nil {
		b.log.Debug("reading checked state", zap.Error(err))
		return false
	}
	return checked
}

// TakeScreenshot writes a full-page screenshot named name-<unix ms>.png and
// returns its path.
func (b *BasePage) TakeScreenshot(name string) (string, error) {
	if err := os.MkdirAll(b.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot dir: %w", err)
	}
	path := filepath.Join(b.screenshotDir, fmt.Sprintf("%s-%d.png", browser.ArtifactName(name), time.Now().UnixMilli()))
	if _, err := b.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("taking screenshot %s: %w", name, err)
	}
	return path, nil
}

// WaitForURL waits until the current URL contains fragment.
func (b *BasePage) WaitForURL(fragment string, timeout ...time.Duration) error {
	if err := b.page.WaitForURL("**"+fragment+"**", playwright.PageWaitForURLOptions{
		Timeout: millis(b.actionTimeout(timeout)),
	}); err != nil {
		return fmt.Errorf("waiting for url containing %q: %w", fragment, err)
	}
	return nil
}

// CurrentURL returns the page's current URL.
func (b *BasePage) CurrentURL() string {
	return b.page.URL()
}

// Refresh reloads the page and waits for it to load.
func (b *BasePage) Refresh() error {
	if _, err := b.page.Reload(); err != nil {
		return fmt.Errorf("reloading %s: %w", b.page.URL(), err)
	}
	return b.WaitForPageLoad()
}

// GoBack navigates back in history and waits for the page to load.
func (b *BasePage) GoBack() error {
	if _, err := b.page.GoBack(); err != nil {
		return fmt.Errorf("going back from %s: %w", b.page.URL(), err)
	}
	return b.WaitForPageLoad()
}

// visibleText returns the trimmed text of the first match of loc, or "" if it
// does not become visible within CheckTimeout.
func (b *BasePage) visibleText(loc playwright.Locator) string {
	first := loc.First()
	if !b.IsVisible(first) {
		return ""
	}
	text, err := first.TextContent()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// allTexts returns the trimmed, non-empty text of every match of loc.
func (b *BasePage) allTexts(loc playwright.Locator) []string {
	texts, err := loc.AllTextContents()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// count returns the number of matches of loc, 0 on error.
func (b *BasePage) count(loc playwright.Locator) int {
	n, err := loc.Count()
	if err != nil {
		return 0
	}
	return n
}

// GetSuccessMessage returns the storefront success notification text, or "".
func (b *BasePage) GetSuccessMessage() string {
	return b.visibleText(b.Locator(locators.SuccessMessage))
}

// GetErrorMessage returns the storefront error notification text, or "".
func (b *BasePage) GetErrorMessage() string {
	return b.visibleText(b.Locator(locators.ErrorMessage))
}

// GetValidationErrors returns the validation summary entries.
func (b *BasePage) GetValidationErrors() []string {
	return b.allTexts(b.Locator(locators.ValidationErrors))
}

// GetFieldValidationErrors returns the per-field validation messages.
func (b *BasePage) GetFieldValidationErrors() []string {
	return b.allTexts(b.Locator(locators.FieldValidationErrors))
}

func (b *BasePage) IsSuccessMessageVisible() bool {
	return b.IsVisible(b.Locator(locators.SuccessMessage).First())
}

func (b *BasePage) IsErrorMessageVisible() bool {
	return b.IsVisible(b.Locator(locators.ErrorMessage).First())
}

// HasValidationErrors reports whether a validation summary or any field
// validation message is visible.
func (b *BasePage) HasValidationErrors() bool {
	return b.IsVisible(b.Locator(locators.ValidationErrors).First()) ||
		b.IsVisible(b.Locator(locators.FieldValidationErrors).First())
}
