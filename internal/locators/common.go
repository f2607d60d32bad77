// Package locators holds the selectors and expected copy shared by the
// storefront page objects.
package locators

// Form fields.
const (
	EmailInput           = "#Email"
	PasswordInput        = "#Password"
	ConfirmPasswordInput = "#ConfirmPassword"
	FirstNameInput       = "#FirstName"
	LastNameInput        = "#LastName"
	CompanyInput         = "#Company"
)

// Buttons.
const (
	LoginButton    = `button.login-button:has-text("Log in")`
	RegisterButton = "button.register-button"
)

// Checkboxes and radios.
const (
	RememberMeCheckbox = "#RememberMe"
	NewsletterCheckbox = "#Newsletter"
	GenderMaleRadio    = "#gender-male"
	GenderFemaleRadio  = "#gender-female"
)

const ForgotPasswordLink = `a[href="/passwordrecovery"]`

// Notifications and validation output.
const (
	SuccessMessage        = ".bar-notification.success, .notification.success, .message-success, .alert-success"
	ErrorMessage          = ".message-error, .bar-notification.error, .notification.error, .alert-error"
	ValidationErrors      = ".validation-summary-errors"
	FieldValidationErrors = ".field-validation-error"
)

// Product detail actions.
const (
	AddToCartButton     = "#add-to-cart-button"
	AddToWishlistButton = "#add-to-wishlist-button"
	AddToCompareButton  = "#add-to-compare-list-button"
)

// Header search and advanced search toggles.
const (
	SearchBoxInput               = "#small-searchterms"
	SearchBoxButton              = ".search-box-button"
	AdvancedSearchCheckbox       = "#advs"
	SearchInDescriptionsCheckbox = "#sid"
)

// Product listing.
const (
	ProductItems    = ".item-box"
	ProductGrid     = ".product-grid"
	ProductItemGrid = ".product-grid .item-grid"
	ProductItemBox  = ".product-grid .item-grid .item-box"
)

// Category and manufacturer navigation.
const (
	CategoryNavigationBlock     = ".block-category-navigation"
	ManufacturerNavigationBlock = ".block-manufacturer-navigation"
	CategoryGrid                = ".category-grid"
	CategoryItemGrid            = ".category-grid .item-grid"
	CategoryItemBox             = ".category-grid .item-grid .item-box"
)

// Listing selectors bar.
const (
	ProductSelectors  = ".product-selectors"
	ProductViewMode   = ".product-viewmode"
	ProductSorting    = ".product-sorting"
	ProductPageSize   = ".product-page-size"
	ProductsContainer = ".products-container"
)

// Sorting, paging and filtering controls.
const (
	ProductsOrderBy  = "#products-orderby"
	ProductsPageSize = "#products-pagesize"
	GridViewButton   = ".viewmode-icon.grid"
	ListViewButton   = ".viewmode-icon.list"
	PriceRangeSlider = "#price-range-slider"
)

const (
	ProductManufacturerGroup = ".product-manufacturer-group"
	ManufacturerFilter1      = "#attribute-manufacturer-1"
)

// Header counters. The storefront theme has renamed these classes before, so
// several spellings are matched.
const (
	CartCount     = `.cart-qty, .cart-count, .shopping-cart-count, [class*="cart-count"], [class*="cart-qty"]`
	WishlistCount = `.wishlist-qty, .wishlist-count, .wishlist-items-count, [class*="wishlist-count"], [class*="wishlist-qty"]`
)

// Account links.
const (
	MyAccountLink = `a[href="/customer/info"]`
	LoginLink     = `a[href="/login"]`
	RegisterLink  = `a[href="/register"]`
)

// NoResults marks an empty product listing or search.
const NoResults = ".no-result"
