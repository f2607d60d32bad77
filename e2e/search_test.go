//go:build e2e

package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/storefront-e2e/internal/fixtures"
	"github.com/adyen/storefront-e2e/internal/locators"
	"github.com/adyen/storefront-e2e/internal/pages"
)

func openSearch(t *testing.T) *fixtures.Fixtures {
	t.Helper()
	f := newFixtures(t)
	require.NoError(t, f.Search.Goto())
	return f
}

// Feature: Product Search
//
//	As a shopper
//	I want to search the catalog
//	So that I can find products quickly
func TestSearch_ReturnsResults(t *testing.T) {
	f := openSearch(t)

	require.NoError(t, f.Search.Search("computer"))

	assert.Greater(t, f.Search.SearchResultsCount(), 0)
	assert.NotEmpty(t, f.Search.ProductTitles())
}

func TestSearch_NoResults(t *testing.T) {
	tests := []struct {
		name string
		term string
	}{
		{"unknown product", "nonexistentproduct"},
		{"very long term", strings.Repeat("a", 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := openSearch(t)

			require.NoError(t, f.Search.Search(tt.term))

			assert.True(t, f.Search.HasNoResults())
			assert.Contains(t, f.Search.NoResultsMessageText(), locators.MsgNoProductsFound)
		})
	}
}

func TestSearch_TermTooShort(t *testing.T) {
	f := openSearch(t)

	require.NoError(t, f.Search.Search("ab"))

	assert.Contains(t, f.Search.GetErrorMessage(), locators.MsgSearchTermMinLength)
	assert.True(t, f.Search.IsErrorMessageVisible())
	assert.False(t, f.Search.IsSuccessMessageVisible())
	assert.Zero(t, f.Search.SearchResultsCount())
}

func TestSearch_SpecialCharacters(t *testing.T) {
	f := openSearch(t)

	require.NoError(t, f.Search.Search("Science & Faith"))

	assert.Greater(t, f.Search.SearchResultsCount(), 0)
}

func TestSearch_AdvancedFilters(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		filters pages.SearchFilters
	}{
		{"category", "card", pages.SearchFilters{Category: "Gift Cards"}},
		{"manufacturer in descriptions", "computer", pages.SearchFilters{Manufacturer: "HP", SearchInDescriptions: true}},
		{"subcategories", "computer", pages.SearchFilters{Category: "Computers", SearchInSubcategories: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := openSearch(t)

			require.NoError(t, f.Search.AdvancedSearch(tt.term, tt.filters))

			assert.True(t, f.Search.IsAdvancedSearchEnabled())
			assert.Greater(t, f.Search.SearchResultsCount(), 0)
		})
	}
}

func TestSearch_BooksWithinPriceRange(t *testing.T) {
	f := newFixtures(t)
	require.NoError(t, f.Product.Goto("books"))
	before := f.Product.ProductGridCount()
	require.Greater(t, before, 0)

	placements, err := f.Product.SetPriceRange("10", "50")
	require.NoError(t, err)

	require.Len(t, placements, 2)
	for _, pl := range placements {
		assert.False(t, pl.OutOfRange, "price %.0f", pl.Price)
	}
	assert.LessOrEqual(t, f.Product.ProductGridCount(), before)
}

func TestSearch_SortByPrice(t *testing.T) {
	tests := []struct {
		name    string
		sort    func(*pages.SearchPage) error
		ordered func([]float64) bool
	}{
		{"low to high", (*pages.SearchPage).SortByPriceAscending, pages.IsNonDecreasing},
		{"high to low", (*pages.SearchPage).SortByPriceDescending, pages.IsNonIncreasing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := openSearch(t)
			require.NoError(t, f.Search.Search("phone"))

			require.NoError(t, tt.sort(f.Search))

			prices := f.Search.ProductPrices()
			require.NotEmpty(t, prices)
			assert.True(t, tt.ordered(prices), "prices: %v", prices)
		})
	}
}

func TestSearch_SortByName(t *testing.T) {
	f := openSearch(t)
	require.NoError(t, f.Search.Search("computer"))

	require.NoError(t, f.Search.SortByNameAscending())

	titles := f.Search.ProductTitles()
	require.NotEmpty(t, titles)
	for i := 1; i < len(titles); i++ {
		assert.LessOrEqual(t, strings.ToLower(titles[i-1]), strings.ToLower(titles[i]))
	}
}

func TestSearch_PageSize(t *testing.T) {
	f := openSearch(t)
	require.NoError(t, f.Search.Search("computer"))

	require.NoError(t, f.Search.ChangePageSize("3"))

	assert.LessOrEqual(t, f.Search.SearchResultsCount(), 3)
}

func TestSearch_Pagination(t *testing.T) {
	f := openSearch(t)
	require.NoError(t, f.Search.Search("running"))
	require.NoError(t, f.Search.ChangePageSize("3"))
	if !f.Search.HasPagination() {
		t.Skip("fewer results than one page")
	}
	first := f.Search.ProductTitles()

	require.NoError(t, f.Search.GoToNextPage())
	assert.NotEqual(t, first, f.Search.ProductTitles())

	require.NoError(t, f.Search.GoToPreviousPage())
	assert.Equal(t, first, f.Search.ProductTitles())

	require.NoError(t, f.Search.GoToPage(2))
	assert.Contains(t, f.Search.CurrentURL(), "pagenumber=2")
}

func TestSearch_ViewModes(t *testing.T) {
	f := openSearch(t)
	require.NoError(t, f.Search.Search("computer"))
	count := f.Search.SearchResultsCount()

	require.NoError(t, f.Search.SwitchToListView())
	assert.Equal(t, count, f.Search.SearchResultsCount())

	require.NoError(t, f.Search.SwitchToGridView())
	assert.Equal(t, count, f.Search.SearchResultsCount())
}

func TestSearch_OpenProduct(t *testing.T) {
	f := openSearch(t)
	require.NoError(t, f.Search.Search("computer"))

	href, err := f.Search.ProductTitleHref(0)
	require.NoError(t, err)
	require.NoError(t, f.Search.ClickProduct(0))

	assert.Contains(t, f.Search.CurrentURL(), href)
}

func TestSearch_OpenProductByTitle(t *testing.T) {
	f := openSearch(t)
	require.NoError(t, f.Search.Search("book"))

	require.NoError(t, f.Search.ClickProductByTitle("The Book of Tea"))

	require.NoError(t, f.Search.WaitForURL("the-book-of-tea"))
}

func TestSearch_ListActions(t *testing.T) {
	t.Run("add to cart", func(t *testing.T) {
		f := openSearch(t)
		require.NoError(t, f.Search.Search("book"))
		initial := f.Search.CartCount()

		require.NoError(t, f.Search.AddToCart(0))

		assert.Contains(t, f.Search.GetSuccessMessage(), locators.MsgProductAddedToCart)
		assert.True(t, f.Search.HasCartCountIncreasedBy(1, initial))
	})

	t.Run("add to wishlist", func(t *testing.T) {
		f := openSearch(t)
		require.NoError(t, f.Search.Search("book"))
		initial := f.Search.WishlistCount()

		require.NoError(t, f.Search.AddToWishlist(0))

		assert.Contains(t, f.Search.GetSuccessMessage(), locators.MsgProductAddedToWishlist)
		assert.True(t, f.Search.HasWishlistCountIncreasedBy(1, initial))
	})

	t.Run("add to compare", func(t *testing.T) {
		f := openSearch(t)
		require.NoError(t, f.Search.Search("book"))

		require.NoError(t, f.Search.AddToCompare(0))

		assert.Contains(t, f.Search.GetSuccessMessage(), locators.MsgProductAddedToCompare)
	})
}

func TestSearch_HeaderBox(t *testing.T) {
	t.Run("finds products", func(t *testing.T) {
		f := newFixtures(t)
		require.NoError(t, f.Home.Goto())

		require.NoError(t, f.Search.SearchFromHeader("computer"))

		assert.Contains(t, f.Search.CurrentURL(), "/search")
		assert.Greater(t, f.Search.SearchResultsCount(), 0)
	})

	t.Run("empty term raises alert", func(t *testing.T) {
		f := newFixtures(t)
		require.NoError(t, f.Home.Goto())

		res, err := f.Search.ExpectDialog(true, func() error {
			return f.Search.ClickElement(f.Search.SearchBoxButton)
		})

		require.NoError(t, err)
		assert.Equal(t, "alert", res.Type)
		assert.Equal(t, locators.MsgEnterSearchKeyword, res.Message)
	})
}
