package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/adyen/storefront-e2e/internal/services"
)

// View modes of a product listing.
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// Option is one entry of a rendered select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// ManufacturerFilter is one checkbox of the listing manufacturer filter.
type ManufacturerFilter struct {
	ID      int
	Name    string
	Checked bool
}

// Listing is a page of products plus the state of the controls around it.
// Its URL helpers keep every other query parameter of the current request.
type Listing struct {
	Page          services.ProductPage
	OrderBy       services.SortOrder
	ViewMode      string
	SliderMax     float64
	Manufacturers []ManufacturerFilter

	url url.URL
}

func newListing(r *http.Request, page services.ProductPage, q services.ListingQuery, viewMode string) *Listing {
	return &Listing{
		Page:     page,
		OrderBy:  q.OrderBy,
		ViewMode: viewMode,
		url:      *r.URL,
	}
}

func (l *Listing) SortOptions() []Option {
	opts := make([]Option, len(services.SortOptions))
	for i, o := range services.SortOptions {
		opts[i] = Option{
			Value:    strconv.Itoa(int(o.Value)),
			Label:    o.Label,
			Selected: o.Value == l.OrderBy,
		}
	}
	return opts
}

func (l *Listing) PageSizeOptions() []Option {
	opts := make([]Option, len(services.PageSizes))
	for i, n := range services.PageSizes {
		opts[i] = Option{
			Value:    strconv.Itoa(n),
			Label:    strconv.Itoa(n),
			Selected: n == l.Page.PageSize,
		}
	}
	return opts
}

// ViewURL switches the view mode and goes back to the first page.
func (l *Listing) ViewURL(mode string) string {
	return l.with(map[string]string{"viewmode": mode, "pagenumber": ""})
}

func (l *Listing) PageURL(n int) string {
	return l.with(map[string]string{"pagenumber": strconv.Itoa(n)})
}

func (l *Listing) PrevURL() string {
	return l.PageURL(l.Page.PageNumber - 1)
}

func (l *Listing) NextURL() string {
	return l.PageURL(l.Page.PageNumber + 1)
}

// with returns the request URI with params applied; an empty value removes
// the parameter.
func (l *Listing) with(params map[string]string) string {
	q := l.url.Query()
	for k, v := range params {
		if v == "" {
			q.Del(k)
			continue
		}
		q.Set(k, v)
	}
	u := l.url
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

// parseListingQuery reads the listing controls from query parameters.
// Malformed values fall back to the defaults.
func parseListingQuery(v url.Values) (services.ListingQuery, string) {
	q := services.ListingQuery{
		OrderBy:    services.SortOrder(intParam(v, "orderby")),
		PageSize:   intParam(v, "pagesize"),
		PageNumber: intParam(v, "pagenumber"),
	}
	for _, raw := range strings.Split(v.Get("ms"), ",") {
		if id, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && id > 0 {
			q.ManufacturerIDs = append(q.ManufacturerIDs, id)
		}
	}
	q.PriceMin, q.PriceMax = priceRange(v.Get("price"))

	mode := ViewGrid
	if v.Get("viewmode") == ViewList {
		mode = ViewList
	}
	return q, mode
}

// priceRange parses "from-to" in whole dollars into cent bounds. Either side
// may be empty.
func priceRange(raw string) (*int64, *int64) {
	from, to, ok := strings.Cut(raw, "-")
	if !ok {
		return nil, nil
	}
	bound := func(s string) *int64 {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || n < 0 {
			return nil
		}
		cents := n * 100
		return &cents
	}
	return bound(from), bound(to)
}

func intParam(v url.Values, key string) int {
	n, err := strconv.Atoi(v.Get(key))
	if err != nil {
		return 0
	}
	return n
}

func boolParam(v url.Values, key string) bool {
	b, _ := strconv.ParseBool(v.Get(key))
	return b
}
