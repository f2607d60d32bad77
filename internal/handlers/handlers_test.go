package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/adyen/storefront-e2e/internal/models"
	"github.com/adyen/storefront-e2e/internal/repository"
	"github.com/adyen/storefront-e2e/internal/services"
	"github.com/adyen/storefront-e2e/internal/web"
)

const testPassword = "Test123!"

func testCatalog() models.Catalog {
	day := func(n int) time.Time { return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC) }
	return models.Catalog{
		Categories: []models.Category{
			{ID: 1, Name: "Computers", Slug: "computers"},
			{ID: 2, Name: "Desktops", Slug: "desktops", ParentID: 1},
			{ID: 3, Name: "Notebooks", Slug: "notebooks", ParentID: 1},
			{ID: 4, Name: "Books", Slug: "books"},
		},
		Manufacturers: []models.Manufacturer{
			{ID: 1, Name: "Apple", Slug: "apple"},
			{ID: 2, Name: "HP", Slug: "hp"},
		},
		Products: []models.Product{
			{ID: 1, Name: "Build your own computer", Slug: "build-your-own-computer", Price: 120000, CategoryID: 2, DisplayOrder: 1, CreatedOn: day(1)},
			{ID: 2, Name: "HP Pavilion Desktop Computer", Slug: "hp-pavilion", Price: 8500, CategoryID: 2, ManufacturerID: 2, DisplayOrder: 2, CreatedOn: day(2)},
			{ID: 3, Name: "Apple MacBook Pro", Slug: "apple-macbook-pro", Price: 180000, CategoryID: 3, ManufacturerID: 1, DisplayOrder: 3, CreatedOn: day(3),
				ShortDescription: "A portable computer"},
			{ID: 4, Name: "HP Spectre XT Pro UltraBook", Slug: "hp-spectre", Price: 135000, CategoryID: 3, ManufacturerID: 2, DisplayOrder: 4, CreatedOn: day(4)},
			{ID: 5, Name: "The Book of Tea", Slug: "the-book-of-tea", Price: 1800, CategoryID: 4, DisplayOrder: 5, CreatedOn: day(5)},
		},
	}
}

type testEnv struct {
	sessions  *Sessions
	customers services.CustomerService
	catalog   *services.CatalogService
	layout    *Layout
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zaptest.NewLogger(t)
	sessions := NewSessions()
	customers := services.NewCustomerService(repository.NewMemoryCustomerRepository(), bcrypt.MinCost, log)
	catalog := services.NewCatalogService(testCatalog())
	return &testEnv{
		sessions:  sessions,
		customers: customers,
		catalog:   catalog,
		layout:    NewLayout(sessions, customers, catalog, log),
	}
}

func (e *testEnv) view(t *testing.T, page string) *View {
	t.Helper()
	v, err := NewView(web.Templates(), page)
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", page, err)
	}
	return v
}

func (e *testEnv) register(t *testing.T, email string) *models.Customer {
	t.Helper()
	c, err := e.customers.Register(context.Background(), models.Registration{
		FirstName:       "John",
		LastName:        "Doe",
		Email:           email,
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	if err != nil {
		t.Fatalf("Failed to register %s: %v", email, err)
	}
	return c
}

// signIn returns the session cookie of a visitor signed in as customerID.
func (e *testEnv) signIn(customerID string) *http.Cookie {
	rec := httptest.NewRecorder()
	e.sessions.SignIn(rec, httptest.NewRequest(http.MethodGet, "/", nil), customerID, false)
	return sessionCookie(rec)
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	return nil
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.Handler, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func assertContains(t *testing.T, body string, want ...string) {
	t.Helper()
	for _, s := range want {
		if !strings.Contains(body, s) {
			t.Errorf("expected response to contain %q", s)
		}
	}
}

func assertNotContains(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, s := range unwanted {
		if strings.Contains(body, s) {
			t.Errorf("expected response not to contain %q", s)
		}
	}
}
