package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/adyen/storefront-e2e/internal/locators"
)

// HomePage is the storefront landing page: header, top menu and footer.
type HomePage struct {
	*BasePage

	HeaderLogo     playwright.Locator
	SearchBox      playwright.Locator
	SearchButton   playwright.Locator
	CartButton     playwright.Locator
	WishlistButton playwright.Locator
	AccountButton  playwright.Locator
	LoginLink      playwright.Locator
	RegisterLink   playwright.Locator

	menu map[string]playwright.Locator

	Footer                    playwright.Locator
	NewsletterEmail           playwright.Locator
	NewsletterSubscribeButton playwright.Locator
	NewsletterResult          playwright.Locator
}

// menuPaths maps top menu labels to their category paths.
var menuPaths = map[string]string{
	"Computers":         "/computers",
	"Electronics":       "/electronics",
	"Apparel":           "/apparel",
	"Digital downloads": "/digital-downloads",
	"Books":             "/books",
	"Jewelry":           "/jewelry",
	"Gift Cards":        "/gift-cards",
}

func NewHomePage(page playwright.Page, deps Dependencies) *HomePage {
	h := &HomePage{
		BasePage:                  NewBasePage(page, deps),
		HeaderLogo:                page.Locator(".header-logo"),
		SearchBox:                 page.Locator(locators.SearchBoxInput),
		SearchButton:              page.Locator(locators.SearchBoxButton),
		CartButton:                page.Locator(".cart-qty"),
		WishlistButton:            page.Locator(".wishlist-qty"),
		AccountButton:             page.Locator(".account"),
		LoginLink:                 page.Locator(locators.LoginLink),
		RegisterLink:              page.Locator(locators.RegisterLink),
		Footer:                    page.Locator(".footer"),
		NewsletterEmail:           page.Locator("#newsletter-email"),
		NewsletterSubscribeButton: page.Locator("#newsletter-subscribe-button"),
		NewsletterResult:          page.Locator("#newsletter-result-block"),
		menu:                      make(map[string]playwright.Locator, len(menuPaths)),
	}
	for name, path := range menuPaths {
		h.menu[name] = page.Locator(fmt.Sprintf(`a[href="%s"]`, path)).First()
	}
	return h
}

func (h *HomePage) Goto() error {
	return h.BasePage.Goto("/")
}

// SearchProduct searches from the header search box.
func (h *HomePage) SearchProduct(term string) error {
	if err := h.FillInput(h.SearchBox, term); err != nil {
		return err
	}
	return h.ClickAndWaitForLoad(h.SearchButton)
}

func (h *HomePage) GoToLogin() error {
	return h.ClickElement(h.LoginLink)
}

func (h *HomePage) GoToRegister() error {
	return h.ClickElement(h.RegisterLink)
}

// GoToCategory follows the top menu entry called name.
func (h *HomePage) GoToCategory(name string) error {
	link, ok := h.menu[name]
	if !ok {
		return fmt.Errorf("no top menu entry %q", name)
	}
	return h.ClickElement(link)
}

func (h *HomePage) GoToComputers() error        { return h.GoToCategory("Computers") }
func (h *HomePage) GoToElectronics() error      { return h.GoToCategory("Electronics") }
func (h *HomePage) GoToApparel() error          { return h.GoToCategory("Apparel") }
func (h *HomePage) GoToDigitalDownloads() error { return h.GoToCategory("Digital downloads") }
func (h *HomePage) GoToBooks() error            { return h.GoToCategory("Books") }
func (h *HomePage) GoToJewelry() error          { return h.GoToCategory("Jewelry") }
func (h *HomePage) GoToGiftCards() error        { return h.GoToCategory("Gift Cards") }

func (h *HomePage) SubscribeToNewsletter(email string) error {
	if err := h.FillInput(h.NewsletterEmail, email); err != nil {
		return err
	}
	return h.ClickElement(h.NewsletterSubscribeButton)
}

// NewsletterResultText waits for the subscription response and returns it.
func (h *HomePage) NewsletterResultText() (string, error) {
	return h.GetText(h.NewsletterResult)
}

// CartQuantity returns the header cart counter text, e.g. "(2)".
func (h *HomePage) CartQuantity() (string, error) {
	return h.GetText(h.CartButton)
}

// WishlistQuantity returns the header wishlist counter text.
func (h *HomePage) WishlistQuantity() (string, error) {
	return h.GetText(h.WishlistButton)
}

func (h *HomePage) IsUserLoggedIn() bool {
	return h.IsVisible(h.AccountButton)
}

func (h *HomePage) AccountButtonText() (string, error) {
	return h.GetText(h.AccountButton)
}
