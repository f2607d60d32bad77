package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler_ServeHTTP(t *testing.T) {
	env := newTestEnv(t)
	handler := NewHomeHandler(env.view(t, "home.html"), env.layout, env.catalog)

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assertContains(t, rec.Body.String(),
		"Welcome to our store",
		`<a href="/computers">Computers</a>`,
		`<a href="/books">Books</a>`,
		"Build your own computer",
		`class="ico-login"`,
		`<span class="cart-qty">(0)</span>`,
	)
	assertNotContains(t, rec.Body.String(), `class="ico-account account"`)

	rec = serve(handler, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSearchHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		checkContent  []string
		rejectContent []string
		inOrder       []string
	}{
		{
			name:          "form only without a term",
			query:         "",
			checkContent:  []string{`id="q"`, `id="advs"`, `class="button-1 search-button"`},
			rejectContent: []string{`class="search-results"`},
		},
		{
			name:          "short term warns",
			query:         "q=ab",
			checkContent:  []string{`<div class="warning">` + MsgSearchTermTooShort + `</div>`},
			rejectContent: []string{`class="item-box"`},
		},
		{
			name:         "no match shows the no result message",
			query:        "q=nonexistentproduct",
			checkContent: []string{`<div class="no-result">No products were found that matched your criteria.</div>`},
		},
		{
			name:         "matches sorted by price",
			query:        "q=computer&orderby=10",
			checkContent: []string{`class="no-result" style="display: none"`, `<option value="10" selected>Price: Low to High</option>`},
			inOrder:      []string{"HP Pavilion Desktop Computer", "Build your own computer"},
		},
		{
			name:          "advanced search by manufacturer in descriptions",
			query:         "q=computer&advs=true&mid=1&sid=true",
			checkContent:  []string{"Apple MacBook Pro", `<option value="1" selected>Apple</option>`, `id="sid" name="sid" value="true" checked`},
			rejectContent: []string{"HP Pavilion Desktop Computer", `id="advanced-search-block" style="display: none"`},
		},
		{
			name:         "category options show their ancestry",
			query:        "q=computer&advs=true&cid=2",
			checkContent: []string{`<option value="2" selected>Computers &gt;&gt; Desktops</option>`},
		},
		{
			name:         "list view",
			query:        "q=computer&viewmode=list",
			checkContent: []string{`class="product-grid product-list"`, `class="viewmode-icon list selected"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			handler := NewSearchHandler(env.view(t, "search.html"), env.layout, env.catalog)

			rec := serve(handler, httptest.NewRequest(http.MethodGet, "/search?"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assertContains(t, body, tt.checkContent...)
			assertNotContains(t, body, tt.rejectContent...)
			assertInOrder(t, body, tt.inOrder...)
		})
	}
}

func TestCatalogHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		slug           string
		expectedStatus int
		checkContent   []string
		rejectContent  []string
	}{
		{
			name:           "category with subcategories",
			target:         "/computers",
			slug:           "computers",
			expectedStatus: http.StatusOK,
			checkContent: []string{
				`class="category-grid sub-category-grid"`,
				`<a href="/desktops" title="Show products in category Desktops">Desktops</a>`,
				`class="block block-category-navigation"`,
				`class="block block-manufacturer-navigation"`,
			},
			rejectContent: []string{`id="price-range-slider"`},
		},
		{
			name:           "leaf category lists products with filters",
			target:         "/desktops",
			slug:           "desktops",
			expectedStatus: http.StatusOK,
			checkContent: []string{
				`id="price-range-slider" data-max="1000"`,
				`id="attribute-manufacturer-2"`,
				`id="products-orderby"`,
				`id="products-pagesize"`,
				`data-price="85"`,
				"Build your own computer",
			},
			rejectContent: []string{`class="category-grid`},
		},
		{
			name:           "manufacturer filter from the query",
			target:         "/desktops?ms=2",
			slug:           "desktops",
			expectedStatus: http.StatusOK,
			checkContent:   []string{"HP Pavilion Desktop Computer", `data-manufacturer-id="2" checked`},
			rejectContent:  []string{"Build your own computer"},
		},
		{
			name:           "slugs ignore case",
			target:         "/NoteBooks",
			slug:           "NoteBooks",
			expectedStatus: http.StatusOK,
			checkContent:   []string{"<h1>Notebooks</h1>", "Apple MacBook Pro"},
		},
		{
			name:           "manufacturer page",
			target:         "/hp",
			slug:           "hp",
			expectedStatus: http.StatusOK,
			checkContent:   []string{"<h1>HP</h1>", "HP Pavilion Desktop Computer", "HP Spectre XT Pro UltraBook"},
			rejectContent:  []string{"Apple MacBook Pro"},
		},
		{
			name:           "product page",
			target:         "/hp-spectre",
			slug:           "hp-spectre",
			expectedStatus: http.StatusOK,
			checkContent: []string{
				"<h1>HP Spectre XT Pro UltraBook</h1>",
				"$1,350.00",
				`id="add-to-cart-button"`,
				`data-url="/addproducttocart/catalog/4"`,
				`id="add-to-wishlist-button"`,
				`id="add-to-compare-list-button"`,
			},
		},
		{
			name:           "unknown slug",
			target:         "/does-not-exist",
			slug:           "does-not-exist",
			expectedStatus: http.StatusNotFound,
			checkContent:   []string{"the page you requested could not be found"},
		},
		{
			name:           "method not allowed - POST",
			method:         http.MethodPost,
			target:         "/books",
			slug:           "books",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			notFound := NewNotFoundHandler(env.view(t, "not_found.html"), env.layout)
			handler := NewCatalogHandler(env.view(t, "catalog.html"), env.view(t, "product.html"), env.layout, env.catalog, notFound, 1000)

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := withURLParam(httptest.NewRequest(method, tt.target, nil), "slug", tt.slug)
			rec := serve(handler, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assertContains(t, rec.Body.String(), tt.checkContent...)
			assertNotContains(t, rec.Body.String(), tt.rejectContent...)
		})
	}
}

func TestCatalogHandler_NavExpandsActivePath(t *testing.T) {
	env := newTestEnv(t)
	handler := NewCatalogHandler(env.view(t, "catalog.html"), env.view(t, "product.html"), env.layout, env.catalog, http.NotFoundHandler(), 1000)

	nav := handler.nav(3)

	require.Len(t, nav.Categories, 2)
	computers := nav.Categories[0]
	assert.True(t, computers.Active)
	require.Len(t, computers.Children, 2)
	assert.Equal(t, "Notebooks", computers.Children[1].Name)
	assert.True(t, computers.Children[1].Active)
	assert.False(t, nav.Categories[1].Active)
	assert.Empty(t, nav.Categories[1].Children)
	assert.Len(t, nav.Manufacturers, 2)
}

func assertInOrder(t *testing.T, body string, want ...string) {
	t.Helper()
	last := -1
	for _, s := range want {
		i := strings.Index(body, s)
		if i <= last {
			t.Errorf("expected %q after position %d, found at %d", s, last, i)
			return
		}
		last = i
	}
}
