// Package storefront assembles the local stub of the nopCommerce demo store
// that the page objects are tested against.
package storefront

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/handlers"
	"github.com/adyen/storefront-e2e/internal/models"
	"github.com/adyen/storefront-e2e/internal/repository"
	"github.com/adyen/storefront-e2e/internal/services"
	"github.com/adyen/storefront-e2e/internal/web"
)

// DefaultPriceSliderMax is the right edge of the listing price slider.
const DefaultPriceSliderMax = 1000

// Options configures the stub. Zero values pick the in-memory customer
// store, bcrypt.DefaultCost, the demo catalog and DefaultPriceSliderMax.
type Options struct {
	Customers      services.CustomerRepository
	PasswordCost   int
	PriceSliderMax float64
	Catalog        *models.Catalog
	Logger         *zap.Logger
}

// NewHandler returns the stub storefront's router.
func NewHandler(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Customers == nil {
		opts.Customers = repository.NewMemoryCustomerRepository()
	}
	if opts.PriceSliderMax <= 0 {
		opts.PriceSliderMax = DefaultPriceSliderMax
	}
	catalog := DemoCatalog()
	if opts.Catalog != nil {
		catalog = *opts.Catalog
	}

	views := map[string]*handlers.View{}
	for _, page := range []string{
		"home.html", "login.html", "register.html", "register_result.html",
		"password_recovery.html", "customer_info.html", "search.html",
		"catalog.html", "product.html", "not_found.html",
	} {
		view, err := handlers.NewView(web.Templates(), page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		views[page] = view
	}

	sessions := handlers.NewSessions()
	customers := services.NewCustomerService(opts.Customers, opts.PasswordCost, log)
	catalogService := services.NewCatalogService(catalog)
	layout := handlers.NewLayout(sessions, customers, catalogService, log)
	notFound := handlers.NewNotFoundHandler(views["not_found.html"], layout)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(recoverer(log))
	r.Use(requestLogger(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.NotFound(notFound.ServeHTTP)

	r.Method(http.MethodGet, "/", handlers.NewHomeHandler(views["home.html"], layout, catalogService))

	login := handlers.NewLoginHandler(views["login.html"], layout, sessions, customers)
	r.Method(http.MethodGet, "/login", login)
	r.Method(http.MethodPost, "/login", login)
	r.Method(http.MethodGet, "/logout", handlers.NewLogoutHandler(sessions))

	register := handlers.NewRegisterHandler(views["register.html"], layout, sessions, customers)
	r.Method(http.MethodGet, "/register", register)
	r.Method(http.MethodPost, "/register", register)
	r.Method(http.MethodGet, "/registerresult/{type}", handlers.NewRegisterResultHandler(views["register_result.html"], layout))

	recovery := handlers.NewPasswordRecoveryHandler(views["password_recovery.html"], layout, customers)
	r.Method(http.MethodGet, "/passwordrecovery", recovery)
	r.Method(http.MethodPost, "/passwordrecovery", recovery)
	r.Method(http.MethodGet, "/customer/info", handlers.NewCustomerInfoHandler(views["customer_info.html"], layout))

	r.Method(http.MethodGet, "/search", handlers.NewSearchHandler(views["search.html"], layout, catalogService))

	r.Method(http.MethodPost, "/addproducttocart/catalog/{id}", handlers.NewProductActionHandler(sessions, catalogService, handlers.AddToCart, log))
	r.Method(http.MethodPost, "/addproducttowishlist/{id}", handlers.NewProductActionHandler(sessions, catalogService, handlers.AddToWishlist, log))
	r.Method(http.MethodPost, "/addproducttocomparelist/{id}", handlers.NewProductActionHandler(sessions, catalogService, handlers.AddToCompare, log))
	r.Method(http.MethodPost, "/subscribenewsletter", handlers.NewNewsletterHandler(customers, log))

	r.Method(http.MethodGet, "/{slug}", handlers.NewCatalogHandler(
		views["catalog.html"], views["product.html"], layout, catalogService, notFound, opts.PriceSliderMax,
	))

	return r, nil
}
