package pricing

import (
	"math"
	"strings"
)

// Item is the slice of a menu item the engine needs to price a line.
type Item struct {
	ID       int
	Name     string
	Category string
	Price    float64
}

// Line is one cart (or order-candidate) line.
type Line struct {
	Item     Item
	Quantity int
}

// Totals reports both pre- and post-discount figures so callers can
// show the full breakdown.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Engine computes discounted prices and cart totals against an
// injected coupon registry. Discounts apply per item, not per cart:
// a coupon may discount only the qualifying lines of a mixed cart.
type Engine struct {
	registry Registry
}

func NewEngine(registry Registry) *Engine {
	return &Engine{registry: registry}
}

// IsEligible reports whether the coupon code is known and any of its
// keywords is a case-insensitive substring of "{category} {name}".
func (e *Engine) IsEligible(item Item, code string) bool {
	coupon, ok := e.registry.Lookup(code)
	if !ok {
		return false
	}
	text := strings.ToLower(item.Category + " " + item.Name)
	for _, kw := range coupon.Keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// DiscountedUnitPrice returns the listed price unless the item is
// eligible for the coupon, in which case the discounted price is
// rounded to 2 decimals. Unknown or stale codes silently yield no
// discount.
func (e *Engine) DiscountedUnitPrice(item Item, code string) float64 {
	coupon, ok := e.registry.Lookup(code)
	if !ok || !e.IsEligible(item, code) {
		return item.Price
	}
	return round2(item.Price * (1 - coupon.Fraction))
}

// CartTotals computes the undiscounted subtotal, the discounted total
// and their delta. Rounding happens only at the unit price and at the
// subtotal−total delta, never at intermediate sums.
func (e *Engine) CartTotals(lines []Line, code string) Totals {
	var subtotal, total float64
	for _, l := range lines {
		subtotal += float64(l.Quantity) * l.Item.Price
		total += float64(l.Quantity) * e.DiscountedUnitPrice(l.Item, code)
	}
	return Totals{
		Subtotal: subtotal,
		Discount: round2(subtotal - total),
		Total:    total,
	}
}

// Known reports whether a code exists in the registry. Used when
// applying a code: unknown non-empty codes are rejected up front.
func (e *Engine) Known(code string) bool {
	_, ok := e.registry.Lookup(code)
	return ok
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return round2(v)
}
