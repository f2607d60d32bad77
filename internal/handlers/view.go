package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/models"
	"github.com/adyen/storefront-e2e/internal/services"
	"github.com/adyen/storefront-e2e/internal/web"
)

// Notification kinds, used as the bar-notification modifier class.
const (
	NotifySuccess = "success"
	NotifyError   = "error"
)

// Notification is the bar shown above the page content.
type Notification struct {
	Type string
	Text string
}

// PageData is what every page template receives.
type PageData struct {
	Title         string
	Customer      *models.Customer
	CartCount     int
	WishlistCount int
	Menu          []models.Category
	Notification  *Notification
	Content       any
}

// View is a page template parsed together with the storefront layout.
type View struct {
	template *template.Template
}

// NewView parses page from fsys along with the shared layout and listing
// partials.
func NewView(fsys fs.FS, page string) (*View, error) {
	tmpl, err := web.Parse(fsys, page)
	if err != nil {
		return nil, err
	}
	return &View{template: tmpl}, nil
}

// Render executes the view into a buffer and only then writes the status and
// body, so a template error can still become a 500.
func (v *View) Render(w http.ResponseWriter, status int, data PageData) error {
	var buf bytes.Buffer
	if err := v.template.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

// Layout builds the parts of PageData shared by every page: the visitor's
// header counters, the signed in customer and the top menu.
type Layout struct {
	sessions  *Sessions
	customers services.CustomerService
	catalog   *services.CatalogService
	log       *zap.Logger
}

func NewLayout(sessions *Sessions, customers services.CustomerService, catalog *services.CatalogService, log *zap.Logger) *Layout {
	if log == nil {
		log = zap.NewNop()
	}
	return &Layout{
		sessions:  sessions,
		customers: customers,
		catalog:   catalog,
		log:       log,
	}
}

// Page returns the page data for the current visitor, starting a session if
// there is none.
func (l *Layout) Page(w http.ResponseWriter, r *http.Request, title string, content any) PageData {
	visitor := l.sessions.Get(w, r)
	data := PageData{
		Title:         title,
		CartCount:     len(visitor.Cart),
		WishlistCount: len(visitor.Wishlist),
		Menu:          l.catalog.TopCategories(),
		Content:       content,
	}
	if visitor.CustomerID == "" {
		return data
	}

	customer, err := l.customers.GetCustomer(r.Context(), visitor.CustomerID)
	switch {
	case err == nil:
		data.Customer = customer
	case errors.Is(err, models.ErrCustomerNotFound):
		l.sessions.SignOut(w, r)
	default:
		l.log.Warn("loading signed in customer", zap.String("customer_id", visitor.CustomerID), zap.Error(err))
	}
	return data
}

// render writes data with view, answering 500 when the template fails.
func render(w http.ResponseWriter, log *zap.Logger, view *View, status int, data PageData) {
	if err := view.Render(w, status, data); err != nil {
		log.Error("rendering page", zap.String("title", data.Title), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// NotFoundHandler renders the storefront 404 page.
type NotFoundHandler struct {
	view   *View
	layout *Layout
}

func NewNotFoundHandler(view *View, layout *Layout) *NotFoundHandler {
	return &NotFoundHandler{view: view, layout: layout}
}

func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render(w, h.layout.log, h.view, http.StatusNotFound, h.layout.Page(w, r, "Page not found", nil))
}
