package pages

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	firstIntPattern   = regexp.MustCompile(`\d+`)
	nonPricePattern   = regexp.MustCompile(`[^\d.,]`)
	leadingNumPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)`)
)

// FirstInt returns the first run of digits in text, or 0 if there is none.
// "Shopping cart (3)" gives 3.
func FirstInt(text string) int {
	m := firstIntPattern.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// ParsePrice extracts a number from a storefront price label such as
// "$1,200.00". Everything but digits, dots and commas is dropped, grouping
// commas are removed and the leading number is parsed. ok is false when no
// number is left.
func ParsePrice(text string) (price float64, ok bool) {
	clean := nonPricePattern.ReplaceAllString(text, "")
	clean = strings.ReplaceAll(clean, ",", "")
	m := leadingNumPattern.FindString(clean)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParsePrices parses each label with ParsePrice, skipping ones that carry
// no number.
func ParsePrices(labels []string) []float64 {
	prices := make([]float64, 0, len(labels))
	for _, l := range labels {
		if p, ok := ParsePrice(l); ok {
			prices = append(prices, p)
		}
	}
	return prices
}

// IsNonDecreasing reports whether values are in ascending order, ties allowed.
func IsNonDecreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

// IsNonIncreasing reports whether values are in descending order, ties allowed.
func IsNonIncreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] > values[i-1] {
			return false
		}
	}
	return true
}

// DefaultPriceSliderMax is the price at the right edge of the listing price
// slider on the demo storefront.
const DefaultPriceSliderMax = 1000.0

// SliderOffset maps price onto a slider width pixels wide whose right edge
// stands for maxPrice. Prices outside [0, maxPrice] map outside the widget.
func SliderOffset(price, maxPrice, width float64) float64 {
	if maxPrice <= 0 {
		maxPrice = DefaultPriceSliderMax
	}
	return price / maxPrice * width
}
