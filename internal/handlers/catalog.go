package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/adyen/storefront-e2e/internal/models"
	"github.com/adyen/storefront-e2e/internal/services"
)

// MsgSearchTermTooShort is the warning shown for a short search term.
const MsgSearchTermTooShort = "Search term minimum length is 3 characters"

const featuredCount = 4

// HomeContent is the home page body.
type HomeContent struct {
	Categories []models.Category
	Featured   []models.Product
}

// HomeHandler serves the landing page.
type HomeHandler struct {
	view    *View
	layout  *Layout
	catalog *services.CatalogService
}

func NewHomeHandler(view *View, layout *Layout, catalog *services.CatalogService) *HomeHandler {
	return &HomeHandler{view: view, layout: layout, catalog: catalog}
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	content := HomeContent{
		Categories: h.catalog.TopCategories(),
		Featured:   h.catalog.Featured(featuredCount),
	}
	render(w, h.layout.log, h.view, http.StatusOK, h.layout.Page(w, r, "Home page", content))
}

// SearchContent is the search form state and, once a term was submitted,
// its results.
type SearchContent struct {
	Term                 string
	Advanced             bool
	IncludeSubcategories bool
	SearchInDescriptions bool
	Categories           []Option
	Manufacturers        []Option

	Searched bool
	Warning  string
	Listing  *Listing
}

// SearchHandler serves /search. The form submits with GET, so the results
// page is bookmarkable and the listing controls can rewrite the query.
type SearchHandler struct {
	view    *View
	layout  *Layout
	catalog *services.CatalogService
}

func NewSearchHandler(view *View, layout *Layout, catalog *services.CatalogService) *SearchHandler {
	return &SearchHandler{view: view, layout: layout, catalog: catalog}
}

func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	v := r.URL.Query()
	listing, mode := parseListingQuery(v)
	q := services.SearchQuery{
		Term:                 v.Get("q"),
		Advanced:             boolParam(v, "advs"),
		CategoryID:           intParam(v, "cid"),
		IncludeSubcategories: boolParam(v, "isc"),
		ManufacturerID:       intParam(v, "mid"),
		SearchInDescriptions: boolParam(v, "sid"),
		ListingQuery:         listing,
	}
	content := SearchContent{
		Term:                 q.Term,
		Advanced:             q.Advanced,
		IncludeSubcategories: q.IncludeSubcategories,
		SearchInDescriptions: q.SearchInDescriptions,
		Categories:           h.categoryOptions(q.CategoryID),
		Manufacturers:        h.manufacturerOptions(q.ManufacturerID),
		Searched:             v.Has("q"),
	}

	if content.Searched {
		page, err := h.catalog.Search(q)
		switch {
		case errors.Is(err, services.ErrSearchTermTooShort):
			content.Warning = MsgSearchTermTooShort
		case err != nil:
			h.layout.log.Error("searching catalog", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		default:
			content.Listing = newListing(r, page, listing, mode)
		}
	}

	render(w, h.layout.log, h.view, http.StatusOK, h.layout.Page(w, r, "Search", content))
}

// categoryOptions labels each category with its ancestry, e.g.
// "Computers >> Desktops".
func (h *SearchHandler) categoryOptions(selected int) []Option {
	opts := []Option{{Value: "0", Label: "All", Selected: selected == 0}}
	for _, c := range h.catalog.Categories() {
		label := c.Name
		for p, ok := h.catalog.Category(c.ParentID); ok; p, ok = h.catalog.Category(p.ParentID) {
			label = p.Name + " >> " + label
		}
		opts = append(opts, Option{Value: strconv.Itoa(c.ID), Label: label, Selected: c.ID == selected})
	}
	return opts
}

func (h *SearchHandler) manufacturerOptions(selected int) []Option {
	opts := []Option{{Value: "0", Label: "All", Selected: selected == 0}}
	for _, m := range h.catalog.Manufacturers() {
		opts = append(opts, Option{Value: strconv.Itoa(m.ID), Label: m.Name, Selected: m.ID == selected})
	}
	return opts
}

// NavItem is a category link in the side navigation. Children are only
// filled in along the active path.
type NavItem struct {
	Name     string
	Slug     string
	Active   bool
	Children []NavItem
}

// Nav is the catalog side column.
type Nav struct {
	Categories    []NavItem
	Manufacturers []models.Manufacturer
}

// CatalogContent is a category or manufacturer page. A category with
// subcategories shows them instead of a listing.
type CatalogContent struct {
	Title         string
	Nav           Nav
	Subcategories []models.Category
	Listing       *Listing
}

// ProductContent is a product details page.
type ProductContent struct {
	Nav     Nav
	Product models.Product
}

// CatalogHandler resolves /{slug} to a category, a manufacturer or a
// product, in that order. Slugs match case-insensitively.
type CatalogHandler struct {
	listView    *View
	productView *View
	layout      *Layout
	catalog     *services.CatalogService
	notFound    http.Handler
	sliderMax   float64
}

func NewCatalogHandler(listView, productView *View, layout *Layout, catalog *services.CatalogService, notFound http.Handler, sliderMax float64) *CatalogHandler {
	return &CatalogHandler{
		listView:    listView,
		productView: productView,
		layout:      layout,
		catalog:     catalog,
		notFound:    notFound,
		sliderMax:   sliderMax,
	}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.ToLower(chi.URLParam(r, "slug"))
	if c, ok := h.catalog.CategoryBySlug(slug); ok {
		h.category(w, r, c)
		return
	}
	if m, ok := h.catalog.ManufacturerBySlug(slug); ok {
		h.manufacturer(w, r, m)
		return
	}
	if p, ok := h.catalog.ProductBySlug(slug); ok {
		content := ProductContent{Nav: h.nav(p.CategoryID), Product: p}
		render(w, h.layout.log, h.productView, http.StatusOK, h.layout.Page(w, r, p.Name, content))
		return
	}
	h.notFound.ServeHTTP(w, r)
}

func (h *CatalogHandler) category(w http.ResponseWriter, r *http.Request, c models.Category) {
	content := CatalogContent{
		Title:         c.Name,
		Nav:           h.nav(c.ID),
		Subcategories: h.catalog.Subcategories(c.ID),
	}
	if len(content.Subcategories) == 0 {
		q, mode := parseListingQuery(r.URL.Query())
		content.Listing = newListing(r, h.catalog.CategoryProducts(c.ID, q), q, mode)
		content.Listing.SliderMax = h.sliderMax
		content.Listing.Manufacturers = manufacturerFilters(h.catalog.CategoryManufacturers(c.ID), q.ManufacturerIDs)
	}
	render(w, h.layout.log, h.listView, http.StatusOK, h.layout.Page(w, r, c.Name, content))
}

func (h *CatalogHandler) manufacturer(w http.ResponseWriter, r *http.Request, m models.Manufacturer) {
	q, mode := parseListingQuery(r.URL.Query())
	listing := newListing(r, h.catalog.ManufacturerProducts(m.ID, q), q, mode)
	listing.SliderMax = h.sliderMax

	content := CatalogContent{Title: m.Name, Nav: h.nav(0), Listing: listing}
	render(w, h.layout.log, h.listView, http.StatusOK, h.layout.Page(w, r, m.Name, content))
}

// nav builds the side navigation with the path to active expanded.
func (h *CatalogHandler) nav(active int) Nav {
	path := map[int]bool{}
	for c, ok := h.catalog.Category(active); ok; c, ok = h.catalog.Category(c.ParentID) {
		path[c.ID] = true
	}
	return Nav{
		Categories:    h.navItems(0, path),
		Manufacturers: h.catalog.Manufacturers(),
	}
}

func (h *CatalogHandler) navItems(parent int, path map[int]bool) []NavItem {
	var items []NavItem
	for _, c := range h.catalog.Subcategories(parent) {
		item := NavItem{Name: c.Name, Slug: c.Slug, Active: path[c.ID]}
		if item.Active {
			item.Children = h.navItems(c.ID, path)
		}
		items = append(items, item)
	}
	return items
}

func manufacturerFilters(ms []models.Manufacturer, checked []int) []ManufacturerFilter {
	filters := make([]ManufacturerFilter, len(ms))
	for i, m := range ms {
		filters[i] = ManufacturerFilter{ID: m.ID, Name: m.Name, Checked: slices.Contains(checked, m.ID)}
	}
	return filters
}
