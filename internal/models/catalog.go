package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Category is a catalog node. Top-level categories have ParentID 0.
type Category struct {
	ID       int
	Name     string
	Slug     string
	ParentID int
}

// Manufacturer brands products.
type Manufacturer struct {
	ID   int
	Name string
	Slug string
}

// Product is a catalog item. Price is in cents.
type Product struct {
	ID               int
	Name             string
	Slug             string
	ShortDescription string
	FullDescription  string
	Price            int64
	CategoryID       int
	ManufacturerID   int
	DisplayOrder     int
	CreatedOn        time.Time
}

// FormattedPrice renders Price the way the storefront shows it, e.g. "$1,200.00".
func (p Product) FormattedPrice() string {
	return FormatPrice(p.Price)
}

// FormatPrice renders cents as dollars with thousands separators.
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), cents%100)
}

// Catalog is the complete set of categories, manufacturers and products.
type Catalog struct {
	Categories    []Category
	Manufacturers []Manufacturer
	Products      []Product
}
