package pages

import (
	"fmt"
	"strconv"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/adyen/storefront-e2e/internal/locators"
)

// Sort option values of the search results "Sort by" select.
const (
	SortPosition  = "0"
	SortNameAsc   = "5"
	SortNameDesc  = "6"
	SortPriceAsc  = "10"
	SortPriceDesc = "11"
	SortCreatedOn = "15"
)

// SearchFilters narrows an advanced search. Zero values leave a filter off.
type SearchFilters struct {
	Category              string
	Manufacturer          string
	SearchInSubcategories bool
	SearchInDescriptions  bool
}

const (
	listActionWait  = 10 * time.Second
	listActionCheck = 5 * time.Second
)

// SearchPage is the product search page at /search.
type SearchPage struct {
	*BasePage

	SearchInput                   playwright.Locator
	SearchButton                  playwright.Locator
	SearchBoxInput                playwright.Locator
	SearchBoxButton               playwright.Locator
	CategorySelect                playwright.Locator
	ManufacturerSelect            playwright.Locator
	SearchInSubcategoriesCheckbox playwright.Locator
	AdvancedSearchCheckbox        playwright.Locator
	SearchInDescriptionsCheckbox  playwright.Locator

	SortBySelect   playwright.Locator
	PageSizeSelect playwright.Locator
	ViewModeGrid   playwright.Locator
	ViewModeList   playwright.Locator

	SearchResults        playwright.Locator
	ProductItems         playwright.Locator
	ProductTitleLinks    playwright.Locator
	ProductPriceLabels   playwright.Locator
	AddToCartButtons     playwright.Locator
	AddToWishlistButtons playwright.Locator
	AddToCompareButtons  playwright.Locator

	Pagination         playwright.Locator
	NextPageButton     playwright.Locator
	PreviousPageButton playwright.Locator
	PageNumbers        playwright.Locator

	NoResultsMessage playwright.Locator
	SuccessMessage   playwright.Locator
	WarningMessage   playwright.Locator
	CartCounter      playwright.Locator
	WishlistCounter  playwright.Locator
}

func NewSearchPage(page playwright.Page, deps Dependencies) *SearchPage {
	return &SearchPage{
		BasePage:                      NewBasePage(page, deps),
		SearchInput:                   page.Locator("#q"),
		SearchButton:                  page.Locator(".search-button"),
		SearchBoxInput:                page.Locator(locators.SearchBoxInput),
		SearchBoxButton:               page.Locator(locators.SearchBoxButton),
		CategorySelect:                page.Locator("#cid"),
		ManufacturerSelect:            page.Locator("#mid"),
		SearchInSubcategoriesCheckbox: page.Locator("#isc"),
		AdvancedSearchCheckbox:        page.Locator(locators.AdvancedSearchCheckbox),
		SearchInDescriptionsCheckbox:  page.Locator(locators.SearchInDescriptionsCheckbox),
		SortBySelect:                  page.Locator(locators.ProductsOrderBy),
		PageSizeSelect:                page.Locator(locators.ProductsPageSize),
		ViewModeGrid:                  page.Locator(locators.GridViewButton),
		ViewModeList:                  page.Locator(locators.ListViewButton),
		SearchResults:                 page.Locator(".search-results"),
		ProductItems:                  page.Locator(".search-results .item-box"),
		ProductTitleLinks:             page.Locator(".search-results .product-title a"),
		ProductPriceLabels:            page.Locator(".search-results .actual-price"),
		AddToCartButtons:              page.Locator(".search-results .product-box-add-to-cart-button"),
		AddToWishlistButtons:          page.Locator(".search-results .add-to-wishlist-button"),
		AddToCompareButtons:           page.Locator(".search-results .add-to-compare-list-button"),
		Pagination:                    page.Locator(".pager"),
		NextPageButton:                page.Locator(".next-page"),
		PreviousPageButton:            page.Locator(".previous-page"),
		PageNumbers:                   page.Locator(".pager .individual-page"),
		NoResultsMessage:              page.Locator(locators.NoResults),
		SuccessMessage:                page.Locator(locators.SuccessMessage).First(),
		WarningMessage:                page.Locator(".warning"),
		CartCounter:                   page.Locator(locators.CartCount).First(),
		WishlistCounter:               page.Locator(locators.WishlistCount).First(),
	}
}

func (s *SearchPage) Goto() error {
	return s.BasePage.Goto("/search")
}

// Search runs a basic search from the search page form.
func (s *SearchPage) Search(term string) error {
	if err := s.FillInput(s.SearchInput, term); err != nil {
		return fmt.Errorf("entering search term: %w", err)
	}
	return s.ClickAndWaitForLoad(s.SearchButton)
}

// SearchFromHeader runs a search from the header box present on every page.
func (s *SearchPage) SearchFromHeader(term string) error {
	if err := s.FillInput(s.SearchBoxInput, term); err != nil {
		return fmt.Errorf("entering header search term: %w", err)
	}
	return s.ClickAndWaitForLoad(s.SearchBoxButton)
}

// AdvancedSearch enables advanced search, applies filters and submits.
func (s *SearchPage) AdvancedSearch(term string, filters SearchFilters) error {
	if err := s.FillInput(s.SearchInput, term); err != nil {
		return fmt.Errorf("entering search term: %w", err)
	}
	if err := s.EnableAdvancedSearch(); err != nil {
		return err
	}
	if filters.Category != "" {
		if err := s.SelectOption(s.CategorySelect, filters.Category); err != nil {
			return fmt.Errorf("choosing category: %w", err)
		}
	}
	if filters.Manufacturer != "" {
		if err := s.SelectOption(s.ManufacturerSelect, filters.Manufacturer); err != nil {
			return fmt.Errorf("choosing manufacturer: %w", err)
		}
	}
	if filters.SearchInSubcategories {
		if err := s.CheckCheckbox(s.SearchInSubcategoriesCheckbox); err != nil {
			return err
		}
	}
	if filters.SearchInDescriptions {
		if err := s.CheckCheckbox(s.SearchInDescriptionsCheckbox); err != nil {
			return err
		}
	}
	return s.ClickAndWaitForLoad(s.SearchButton)
}

// SortBy selects a sort option by value, e.g. SortPriceAsc.
func (s *SearchPage) SortBy(option string) error {
	return s.SelectAndWaitForLoad(s.SortBySelect, option)
}

func (s *SearchPage) SortByPriceAscending() error  { return s.SortBy(SortPriceAsc) }
func (s *SearchPage) SortByPriceDescending() error { return s.SortBy(SortPriceDesc) }
func (s *SearchPage) SortByNameAscending() error   { return s.SortBy(SortNameAsc) }
func (s *SearchPage) SortByNameDescending() error  { return s.SortBy(SortNameDesc) }

func (s *SearchPage) ChangePageSize(size string) error {
	return s.SelectAndWaitForLoad(s.PageSizeSelect, size)
}

func (s *SearchPage) SwitchToGridView() error {
	return s.ClickAndWaitForLoad(s.ViewModeGrid)
}

func (s *SearchPage) SwitchToListView() error {
	return s.ClickAndWaitForLoad(s.ViewModeList)
}

// SearchResultsCount returns the number of result tiles currently rendered.
func (s *SearchPage) SearchResultsCount() int {
	return s.count(s.ProductItems)
}

func (s *SearchPage) ProductTitles() []string {
	return s.allTexts(s.ProductTitleLinks)
}

// ProductPriceTexts returns the price labels as shown, e.g. "$1,200.00".
func (s *SearchPage) ProductPriceTexts() []string {
	return s.allTexts(s.ProductPriceLabels)
}

// ProductPrices returns the numeric value of every parsable price label.
func (s *SearchPage) ProductPrices() []float64 {
	return ParsePrices(s.ProductPriceTexts())
}

// ProductTitleHref returns the link target of the i-th result title.
func (s *SearchPage) ProductTitleHref(i int) (string, error) {
	link := s.ProductTitleLinks.Nth(i)
	if err := s.WaitForElement(link); err != nil {
		return "", err
	}
	href, err := link.GetAttribute("href")
	if err != nil {
		return "", fmt.Errorf("reading product link: %w", err)
	}
	return href, nil
}

// ClickProduct clicks the i-th result tile.
func (s *SearchPage) ClickProduct(i int) error {
	return s.ClickElement(s.ProductItems.Nth(i))
}

// ClickProductTitle follows the i-th result title link.
func (s *SearchPage) ClickProductTitle(i int) error {
	return s.ClickElement(s.ProductTitleLinks.Nth(i))
}

func (s *SearchPage) ClickProductByTitle(title string) error {
	return s.ClickElement(s.ProductTitleLinks.Filter(playwright.LocatorFilterOptions{
		HasText: title,
	}).First())
}

func (s *SearchPage) AddToCart(i int) error {
	if err := s.AddToCartButtons.Nth(i).Click(); err != nil {
		return fmt.Errorf("adding result %d to cart: %w", i, err)
	}
	return nil
}

func (s *SearchPage) AddToWishlist(i int) error {
	return s.clickListAction(s.AddToWishlistButtons.Nth(i), "wishlist", i)
}

func (s *SearchPage) AddToCompare(i int) error {
	return s.clickListAction(s.AddToCompareButtons.Nth(i), "comparison", i)
}

// clickListAction clicks a result tile button that renders late: it waits
// and scrolls, then checks visibility again before clicking.
func (s *SearchPage) clickListAction(btn playwright.Locator, target string, i int) error {
	if err := s.WaitForElementAndScroll(btn, listActionWait); err != nil {
		return fmt.Errorf("adding result %d to %s: %w", i, target, err)
	}
	if err := s.WaitForElement(btn, listActionCheck); err != nil {
		return fmt.Errorf("adding result %d to %s: %w", i, target, err)
	}
	if err := btn.Click(); err != nil {
		return fmt.Errorf("adding result %d to %s: %w", i, target, err)
	}
	return nil
}

func (s *SearchPage) HasNoResults() bool {
	return s.IsVisible(s.NoResultsMessage)
}

func (s *SearchPage) NoResultsMessageText() string {
	return s.visibleText(s.NoResultsMessage)
}

func (s *SearchPage) GetSuccessMessage() string {
	return s.visibleText(s.SuccessMessage)
}

func (s *SearchPage) IsSuccessMessageVisible() bool {
	return s.IsVisible(s.SuccessMessage)
}

// GetErrorMessage returns the search warning, such as the minimum length
// notice, or "".
func (s *SearchPage) GetErrorMessage() string {
	return s.visibleText(s.WarningMessage)
}

func (s *SearchPage) IsErrorMessageVisible() bool {
	return s.IsVisible(s.WarningMessage.First())
}

// CartCount returns the header cart counter, 0 if it cannot be read.
func (s *SearchPage) CartCount() int {
	return FirstInt(s.visibleText(s.CartCounter))
}

func (s *SearchPage) HasCartCountIncreasedBy(by, initial int) bool {
	return s.CartCount() == initial+by
}

// WishlistCount returns the header wishlist counter, 0 if it cannot be read.
func (s *SearchPage) WishlistCount() int {
	return FirstInt(s.visibleText(s.WishlistCounter))
}

func (s *SearchPage) HasWishlistCountIncreasedBy(by, initial int) bool {
	return s.WishlistCount() == initial+by
}

func (s *SearchPage) GoToNextPage() error {
	return s.ClickAndWaitForLoad(s.NextPageButton)
}

func (s *SearchPage) GoToPreviousPage() error {
	return s.ClickAndWaitForLoad(s.PreviousPageButton)
}

func (s *SearchPage) GoToPage(n int) error {
	return s.ClickAndWaitForLoad(s.PageNumbers.Filter(playwright.LocatorFilterOptions{
		HasText: strconv.Itoa(n),
	}).First())
}

func (s *SearchPage) HasPagination() bool {
	return s.IsVisible(s.Pagination)
}

// ClearSearchForm empties the term and unchecks every search toggle.
func (s *SearchPage) ClearSearchForm() error {
	if err := s.SearchInput.Clear(); err != nil {
		return fmt.Errorf("clearing search term: %w", err)
	}
	for _, box := range []playwright.Locator{
		s.SearchInSubcategoriesCheckbox,
		s.AdvancedSearchCheckbox,
		s.SearchInDescriptionsCheckbox,
	} {
		if !s.IsChecked(box) {
			continue
		}
		if err := s.UncheckCheckbox(box); err != nil {
			return err
		}
	}
	return nil
}

func (s *SearchPage) EnableAdvancedSearch() error {
	return s.CheckCheckbox(s.AdvancedSearchCheckbox)
}

func (s *SearchPage) DisableAdvancedSearch() error {
	return s.UncheckCheckbox(s.AdvancedSearchCheckbox)
}

func (s *SearchPage) IsAdvancedSearchEnabled() bool {
	return s.IsChecked(s.AdvancedSearchCheckbox)
}

func (s *SearchPage) EnableSearchInDescriptions() error {
	return s.CheckCheckbox(s.SearchInDescriptionsCheckbox)
}

func (s *SearchPage) DisableSearchInDescriptions() error {
	return s.UncheckCheckbox(s.SearchInDescriptionsCheckbox)
}

func (s *SearchPage) IsSearchInDescriptionsEnabled() bool {
	return s.IsChecked(s.SearchInDescriptionsCheckbox)
}
