package services

import (
	"errors"
	"slices"
	"strings"

	"github.com/adyen/storefront-e2e/internal/models"
)

// SortOrder values match the storefront's "orderby" select.
type SortOrder int

const (
	SortPosition  SortOrder = 0
	SortNameAsc   SortOrder = 5
	SortNameDesc  SortOrder = 6
	SortPriceAsc  SortOrder = 10
	SortPriceDesc SortOrder = 11
	SortCreatedOn SortOrder = 15
)

// SortOptions lists the orderings in the order the select shows them.
var SortOptions = []struct {
	Value SortOrder
	Label string
}{
	{SortPosition, "Position"},
	{SortNameAsc, "Name: A to Z"},
	{SortNameDesc, "Name: Z to A"},
	{SortPriceAsc, "Price: Low to High"},
	{SortPriceDesc, "Price: High to Low"},
	{SortCreatedOn, "Created on"},
}

// PageSizes offered on listings; DefaultPageSize is used for anything else.
var PageSizes = []int{3, 6, 9}

const (
	DefaultPageSize     = 6
	MinSearchTermLength = 3
)

var ErrSearchTermTooShort = errors.New("search term minimum length is 3 characters")

// ListingQuery narrows, orders and pages a product list. Prices are cents;
// a nil bound is open.
type ListingQuery struct {
	OrderBy         SortOrder
	PageSize        int
	PageNumber      int
	ManufacturerIDs []int
	PriceMin        *int64
	PriceMax        *int64
}

// SearchQuery is a catalog search. The advanced fields apply only when
// Advanced is set.
type SearchQuery struct {
	Term                 string
	Advanced             bool
	CategoryID           int
	IncludeSubcategories bool
	ManufacturerID       int
	SearchInDescriptions bool
	ListingQuery
}

// ProductPage is one page of a product list.
type ProductPage struct {
	Products   []models.Product
	TotalItems int
	PageNumber int
	PageSize   int
	TotalPages int
}

func (p ProductPage) HasPrevious() bool {
	return p.PageNumber > 1
}

func (p ProductPage) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// Pages returns 1..TotalPages.
func (p ProductPage) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// CatalogService answers catalog queries over a fixed catalog.
type CatalogService struct {
	catalog models.Catalog
}

func NewCatalogService(catalog models.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// TopCategories returns the categories without a parent.
func (s *CatalogService) TopCategories() []models.Category {
	return s.Subcategories(0)
}

// Subcategories returns the direct children of the category with id parentID.
func (s *CatalogService) Subcategories(parentID int) []models.Category {
	var out []models.Category
	for _, c := range s.catalog.Categories {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns every category.
func (s *CatalogService) Categories() []models.Category {
	return slices.Clone(s.catalog.Categories)
}

// Manufacturers returns every manufacturer.
func (s *CatalogService) Manufacturers() []models.Manufacturer {
	return slices.Clone(s.catalog.Manufacturers)
}

func (s *CatalogService) Category(id int) (models.Category, bool) {
	for _, c := range s.catalog.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *CatalogService) CategoryBySlug(slug string) (models.Category, bool) {
	for _, c := range s.catalog.Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *CatalogService) ManufacturerBySlug(slug string) (models.Manufacturer, bool) {
	for _, m := range s.catalog.Manufacturers {
		if m.Slug == slug {
			return m, true
		}
	}
	return models.Manufacturer{}, false
}

func (s *CatalogService) ProductBySlug(slug string) (models.Product, bool) {
	for _, p := range s.catalog.Products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *CatalogService) Product(id int) (models.Product, bool) {
	for _, p := range s.catalog.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Featured returns the first n products in display order.
func (s *CatalogService) Featured(n int) []models.Product {
	products := slices.Clone(s.catalog.Products)
	sortProducts(products, SortPosition)
	return products[:min(n, len(products))]
}

// CategoryManufacturers returns the manufacturers with products in the
// category, for the listing's manufacturer filter.
func (s *CatalogService) CategoryManufacturers(categoryID int) []models.Manufacturer {
	seen := map[int]bool{}
	for _, p := range s.catalog.Products {
		if p.CategoryID == categoryID && p.ManufacturerID != 0 {
			seen[p.ManufacturerID] = true
		}
	}
	var out []models.Manufacturer
	for _, m := range s.catalog.Manufacturers {
		if seen[m.ID] {
			out = append(out, m)
		}
	}
	return out
}

// CategoryProducts lists the products filed directly under the category.
func (s *CatalogService) CategoryProducts(categoryID int, q ListingQuery) ProductPage {
	return s.list(func(p models.Product) bool { return p.CategoryID == categoryID }, q)
}

// ManufacturerProducts lists the products of the manufacturer.
func (s *CatalogService) ManufacturerProducts(manufacturerID int, q ListingQuery) ProductPage {
	return s.list(func(p models.Product) bool { return p.ManufacturerID == manufacturerID }, q)
}

// Search matches Term case-insensitively against product names, and against
// descriptions when the advanced option asks for it.
func (s *CatalogService) Search(q SearchQuery) (ProductPage, error) {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	if len([]rune(term)) < MinSearchTermLength {
		return ProductPage{PageNumber: 1, PageSize: pageSize(q.PageSize)}, ErrSearchTermTooShort
	}

	match := func(p models.Product) bool {
		if strings.Contains(strings.ToLower(p.Name), term) {
			return true
		}
		return q.Advanced && q.SearchInDescriptions &&
			(strings.Contains(strings.ToLower(p.ShortDescription), term) ||
				strings.Contains(strings.ToLower(p.FullDescription), term))
	}

	return s.list(func(p models.Product) bool {
		if !match(p) {
			return false
		}
		if !q.Advanced {
			return true
		}
		if q.CategoryID != 0 && !s.inCategory(p, q.CategoryID, q.IncludeSubcategories) {
			return false
		}
		return q.ManufacturerID == 0 || p.ManufacturerID == q.ManufacturerID
	}, q.ListingQuery), nil
}

func (s *CatalogService) inCategory(p models.Product, categoryID int, deep bool) bool {
	if p.CategoryID == categoryID {
		return true
	}
	if !deep {
		return false
	}
	c, ok := s.Category(p.CategoryID)
	for ok && c.ParentID != 0 {
		if c.ParentID == categoryID {
			return true
		}
		c, ok = s.Category(c.ParentID)
	}
	return false
}

func (s *CatalogService) list(keep func(models.Product) bool, q ListingQuery) ProductPage {
	var products []models.Product
	for _, p := range s.catalog.Products {
		if !keep(p) {
			continue
		}
		if len(q.ManufacturerIDs) > 0 && !slices.Contains(q.ManufacturerIDs, p.ManufacturerID) {
			continue
		}
		if q.PriceMin != nil && p.Price < *q.PriceMin {
			continue
		}
		if q.PriceMax != nil && p.Price > *q.PriceMax {
			continue
		}
		products = append(products, p)
	}

	sortProducts(products, q.OrderBy)
	return paginate(products, pageSize(q.PageSize), q.PageNumber)
}

func sortProducts(products []models.Product, order SortOrder) {
	var cmp func(a, b models.Product) int
	switch order {
	case SortNameAsc:
		cmp = func(a, b models.Product) int { return strings.Compare(a.Name, b.Name) }
	case SortNameDesc:
		cmp = func(a, b models.Product) int { return strings.Compare(b.Name, a.Name) }
	case SortPriceAsc:
		cmp = func(a, b models.Product) int { return compareInt64(a.Price, b.Price) }
	case SortPriceDesc:
		cmp = func(a, b models.Product) int { return compareInt64(b.Price, a.Price) }
	case SortCreatedOn:
		cmp = func(a, b models.Product) int { return b.CreatedOn.Compare(a.CreatedOn) }
	default:
		cmp = func(a, b models.Product) int { return a.DisplayOrder - b.DisplayOrder }
	}
	slices.SortStableFunc(products, cmp)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func pageSize(n int) int {
	if slices.Contains(PageSizes, n) {
		return n
	}
	return DefaultPageSize
}

func paginate(products []models.Product, size, number int) ProductPage {
	total := len(products)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	number = min(max(number, 1), pages)

	start := (number - 1) * size
	end := min(start+size, total)
	return ProductPage{
		Products:   products[start:end],
		TotalItems: total,
		PageNumber: number,
		PageSize:   size,
		TotalPages: pages,
	}
}
