package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/locators"
)

// ErrSliderNotFound is returned when the price slider has no layout box.
var ErrSliderNotFound = errors.New("price range slider not found or not visible")

const (
	listingControlWait = 5 * time.Second
	sliderSettle       = 100 * time.Millisecond
)

// SliderPlacement records where a requested price was clicked on the slider.
// OutOfRange is set when the price lies outside [0, max] of the slider, in
// which case the click landed off the widget.
type SliderPlacement struct {
	Price      float64
	Offset     float64
	OutOfRange bool
}

// ProductPage is a category, subcategory or manufacturer listing.
type ProductPage struct {
	*BasePage

	sliderMax float64

	CategoryNavigationBlock     playwright.Locator
	ManufacturerNavigationBlock playwright.Locator

	CategoryGrid     playwright.Locator
	CategoryItemGrid playwright.Locator
	CategoryItemBox  playwright.Locator

	ProductSelectors playwright.Locator
	ProductViewMode  playwright.Locator
	ProductSorting   playwright.Locator
	ProductPageSize  playwright.Locator

	NoResultsMessage   playwright.Locator
	ProductsContainer  playwright.Locator
	ProductGrid        playwright.Locator
	ProductItemGrid    playwright.Locator
	ProductItemBox     playwright.Locator
	ProductPriceLabels playwright.Locator

	PriceRangeSlider         playwright.Locator
	ProductManufacturerGroup playwright.Locator
	ManufacturerFilter       playwright.Locator

	OrderBySelect  playwright.Locator
	PageSizeSelect playwright.Locator
	GridViewButton playwright.Locator
	ListViewButton playwright.Locator
}

func NewProductPage(page playwright.Page, deps Dependencies) *ProductPage {
	sliderMax := deps.PriceSliderMax
	if sliderMax <= 0 {
		sliderMax = DefaultPriceSliderMax
	}
	return &ProductPage{
		BasePage:                    NewBasePage(page, deps),
		sliderMax:                   sliderMax,
		CategoryNavigationBlock:     page.Locator(locators.CategoryNavigationBlock),
		ManufacturerNavigationBlock: page.Locator(locators.ManufacturerNavigationBlock),
		CategoryGrid:                page.Locator(locators.CategoryGrid),
		CategoryItemGrid:            page.Locator(locators.CategoryItemGrid),
		CategoryItemBox:             page.Locator(locators.CategoryItemBox),
		ProductSelectors:            page.Locator(locators.ProductSelectors),
		ProductViewMode:             page.Locator(locators.ProductViewMode),
		ProductSorting:              page.Locator(locators.ProductSorting),
		ProductPageSize:             page.Locator(locators.ProductPageSize),
		NoResultsMessage:            page.Locator(locators.NoResults),
		ProductsContainer:           page.Locator(locators.ProductsContainer),
		ProductGrid:                 page.Locator(locators.ProductGrid),
		ProductItemGrid:             page.Locator(locators.ProductItemGrid),
		ProductItemBox:              page.Locator(locators.ProductItemBox),
		ProductPriceLabels:          page.Locator(".product-grid .actual-price"),
		PriceRangeSlider:            page.Locator(locators.PriceRangeSlider),
		ProductManufacturerGroup:    page.Locator(locators.ProductManufacturerGroup),
		ManufacturerFilter:          page.Locator(locators.ManufacturerFilter1),
		OrderBySelect:               page.Locator(locators.ProductsOrderBy),
		PageSizeSelect:              page.Locator(locators.ProductsPageSize),
		GridViewButton:              page.Locator(locators.GridViewButton),
		ListViewButton:              page.Locator(locators.ListViewButton),
	}
}

// Goto opens the listing whose URL slug is name, e.g. "computers". The
// storefront slugs are case-insensitive.
func (p *ProductPage) Goto(name string) error {
	return p.BasePage.Goto("/" + name)
}

// SliderMax is the price the slider's right edge stands for.
func (p *ProductPage) SliderMax() float64 {
	return p.sliderMax
}

func hasText(text string) string {
	return fmt.Sprintf("a:has-text(%q)", text)
}

// NavigateToCategory follows a link in the category navigation block.
func (p *ProductPage) NavigateToCategory(name string) error {
	if err := p.ClickElement(p.CategoryNavigationBlock.Locator(hasText(name)).First()); err != nil {
		return fmt.Errorf("opening category %q: %w", name, err)
	}
	return nil
}

// NavigateToSubcategory opens category and then its subcategory.
func (p *ProductPage) NavigateToSubcategory(category, subcategory string) error {
	if err := p.NavigateToCategory(category); err != nil {
		return err
	}
	if err := p.ClickElement(p.CategoryNavigationBlock.Locator(hasText(subcategory)).First()); err != nil {
		return fmt.Errorf("opening subcategory %q: %w", subcategory, err)
	}
	return nil
}

// NavigateToManufacturer follows a link in the manufacturer navigation block.
func (p *ProductPage) NavigateToManufacturer(name string) error {
	if err := p.ClickElement(p.ManufacturerNavigationBlock.Locator(hasText(name)).First()); err != nil {
		return fmt.Errorf("opening manufacturer %q: %w", name, err)
	}
	return nil
}

func (p *ProductPage) IsCategoryNavigationVisible() bool {
	return p.IsVisible(p.CategoryNavigationBlock)
}

func (p *ProductPage) IsManufacturerNavigationVisible() bool {
	return p.IsVisible(p.ManufacturerNavigationBlock)
}

func (p *ProductPage) IsCategoryGridVisible() bool {
	return p.IsVisible(p.CategoryGrid)
}

func (p *ProductPage) IsCategoryItemGridVisible() bool {
	return p.IsVisible(p.CategoryItemGrid)
}

func (p *ProductPage) IsProductSelectorsVisible() bool {
	return p.IsVisible(p.ProductSelectors)
}

func (p *ProductPage) IsProductViewModeVisible() bool {
	return p.IsVisible(p.ProductViewMode)
}

func (p *ProductPage) IsProductSortingVisible() bool {
	return p.IsVisible(p.ProductSorting)
}

func (p *ProductPage) IsProductPageSizeVisible() bool {
	return p.IsVisible(p.ProductPageSize)
}

func (p *ProductPage) IsProductsContainerVisible() bool {
	return p.IsVisible(p.ProductsContainer)
}

func (p *ProductPage) IsProductGridVisible() bool {
	return p.IsVisible(p.ProductGrid)
}

func (p *ProductPage) IsProductItemGridVisible() bool {
	return p.IsVisible(p.ProductItemGrid)
}

func (p *ProductPage) IsPriceSliderVisible() bool {
	return p.IsVisible(p.PriceRangeSlider)
}

func (p *ProductPage) IsManufacturerGroupVisible() bool {
	return p.IsVisible(p.ProductManufacturerGroup)
}

func (p *ProductPage) IsSortByVisible() bool {
	return p.IsVisible(p.OrderBySelect)
}

func (p *ProductPage) IsPageSizeVisible() bool {
	return p.IsVisible(p.PageSizeSelect)
}

// IsViewModeVisible reports whether both view mode buttons are shown.
func (p *ProductPage) IsViewModeVisible() bool {
	return p.IsVisible(p.GridViewButton) && p.IsVisible(p.ListViewButton)
}

// CategoryProductCount counts the tiles of a top level category grid.
func (p *ProductPage) CategoryProductCount() int {
	return p.count(p.CategoryItemBox)
}

// ProductGridCount counts the product tiles of a listing.
func (p *ProductPage) ProductGridCount() int {
	return p.count(p.ProductItemBox)
}

// SetPriceRange clicks the slider at the positions for from and to, each of
// which may be empty. Both empty is a no-op. Prices are not validated
// against the slider range; the returned placements say where each click
// landed.
func (p *ProductPage) SetPriceRange(from, to string) ([]SliderPlacement, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	if err := p.WaitForElementAndScroll(p.PriceRangeSlider, listingControlWait); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSliderNotFound, err)
	}
	box, err := p.PriceRangeSlider.BoundingBox()
	if err != nil || box == nil {
		return nil, ErrSliderNotFound
	}
	y := box.Y + box.Height/2

	var placements []SliderPlacement
	for _, raw := range []string{from, to} {
		if raw == "" {
			continue
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return placements, fmt.Errorf("parsing slider price %q: %w", raw, err)
		}
		pl := SliderPlacement{
			Price:      price,
			Offset:     SliderOffset(price, p.sliderMax, box.Width),
			OutOfRange: price < 0 || price > p.sliderMax,
		}
		if pl.OutOfRange {
			p.log.Warn("slider price outside widget range",
				zap.Float64("price", price), zap.Float64("max", p.sliderMax))
		}
		if err := p.page.Mouse().Click(box.X+pl.Offset, y); err != nil {
			return placements, fmt.Errorf("clicking price slider at %.2f: %w", price, err)
		}
		p.page.WaitForTimeout(float64(sliderSettle.Milliseconds()))
		placements = append(placements, pl)
	}
	return placements, nil
}

// ResetPriceSlider clicks the slider's left edge. It is a no-op when the
// slider is not rendered.
func (p *ProductPage) ResetPriceSlider() error {
	box, err := p.PriceRangeSlider.BoundingBox()
	if err != nil || box == nil {
		return nil
	}
	if err := p.page.Mouse().Click(box.X, box.Y+box.Height/2); err != nil {
		return fmt.Errorf("resetting price slider: %w", err)
	}
	p.page.WaitForTimeout(float64(sliderSettle.Milliseconds()))
	return nil
}

// ApplyManufacturerFilter ticks the first manufacturer filter option.
func (p *ProductPage) ApplyManufacturerFilter() error {
	if err := p.WaitForElementAndScroll(p.ManufacturerFilter, listingControlWait); err != nil {
		return err
	}
	return p.ClickAndWaitForLoad(p.ManufacturerFilter)
}

func (p *ProductPage) IsManufacturerFilterApplied() bool {
	return p.IsChecked(p.ManufacturerFilter)
}

// SortBy selects a sort option by value or label, e.g. "Price: Low to High".
func (p *ProductPage) SortBy(option string) error {
	return p.SelectAndWaitForLoad(p.OrderBySelect, option)
}

func selectedText(sel playwright.Locator) string {
	text, err := sel.Locator("option:checked").First().TextContent()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// CurrentSortOption returns the label of the selected sort option.
func (p *ProductPage) CurrentSortOption() string {
	return selectedText(p.OrderBySelect)
}

func (p *ProductPage) SortOptions() []string {
	return p.allTexts(p.OrderBySelect.Locator("option"))
}

func (p *ProductPage) ProductPriceTexts() []string {
	return p.allTexts(p.ProductPriceLabels)
}

// ProductPrices returns the numeric value of every parsable price label.
func (p *ProductPage) ProductPrices() []float64 {
	return ParsePrices(p.ProductPriceTexts())
}

func (p *ProductPage) ChangePageSize(size string) error {
	return p.SelectAndWaitForLoad(p.PageSizeSelect, size)
}

// CurrentPageSize returns the label of the selected page size.
func (p *ProductPage) CurrentPageSize() string {
	return selectedText(p.PageSizeSelect)
}

func (p *ProductPage) PageSizeOptions() []string {
	return p.allTexts(p.PageSizeSelect.Locator("option"))
}

func (p *ProductPage) SwitchToGridView() error {
	return p.switchView(p.GridViewButton)
}

func (p *ProductPage) SwitchToListView() error {
	return p.switchView(p.ListViewButton)
}

func (p *ProductPage) switchView(btn playwright.Locator) error {
	if err := p.WaitForElementAndScroll(btn, listingControlWait); err != nil {
		return err
	}
	return p.ClickAndWaitForLoad(btn)
}

func (p *ProductPage) IsGridViewActive() bool {
	return p.isSelected(p.GridViewButton)
}

func (p *ProductPage) IsListViewActive() bool {
	return p.isSelected(p.ListViewButton)
}

func (p *ProductPage) isSelected(loc playwright.Locator) bool {
	class, err := loc.GetAttribute("class")
	if err != nil {
		return false
	}
	return strings.Contains(class, "selected")
}

func (p *ProductPage) HasNoResults() bool {
	return p.IsVisible(p.NoResultsMessage)
}

func (p *ProductPage) NoResultsMessageText() string {
	return p.visibleText(p.NoResultsMessage)
}
