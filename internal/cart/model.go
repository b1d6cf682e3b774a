package cart

import (
	"time"

	"github.com/ramneet9/Food-DEL/internal/menu"
	"github.com/ramneet9/Food-DEL/internal/pricing"
)

// Line is one (customer, menu item, quantity) row, joined with the
// item it points at. Quantity stays >= 1 for the row's lifetime.
type Line struct {
	ID         int       `json:"id"`
	CustomerID string    `json:"customer_id"`
	Quantity   int       `json:"quantity"`
	Item       menu.Item `json:"item"`
	CreatedAt  time.Time `json:"created_at"`
}

// PricingLines converts cart rows into the pricing engine's input.
func PricingLines(lines []Line) []pricing.Line {
	out := make([]pricing.Line, len(lines))
	for i, l := range lines {
		out[i] = pricing.Line{
			Item: pricing.Item{
				ID:       l.Item.ID,
				Name:     l.Item.Name,
				Category: l.Item.Category,
				Price:    l.Item.Price,
			},
			Quantity: l.Quantity,
		}
	}
	return out
}

// View is the cart page payload: lines plus the totals breakdown and
// the coupon currently applied.
type View struct {
	Lines         []Line         `json:"lines"`
	Totals        pricing.Totals `json:"totals"`
	AppliedCoupon string         `json:"applied_coupon,omitempty"`
	CartCount     int            `json:"cart_count"`
}
