package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultRegistry())
}

func TestDiscountedUnitPrice_UnknownCode(t *testing.T) {
	e := newTestEngine()
	item := Item{ID: 1, Name: "Margherita Pizza", Category: "Pizza", Price: 169.00}

	assert.Equal(t, 169.00, e.DiscountedUnitPrice(item, ""))
	assert.Equal(t, 169.00, e.DiscountedUnitPrice(item, "NOPE99"))
}

func TestDiscountedUnitPrice_NotEligible(t *testing.T) {
	e := newTestEngine()
	item := Item{ID: 2, Name: "Chicken Biryani", Category: "Rice", Price: 249.00}

	// PIZZA50 is a known code but the item does not match its keywords
	assert.False(t, e.IsEligible(item, "PIZZA50"))
	assert.Equal(t, 249.00, e.DiscountedUnitPrice(item, "PIZZA50"))
}

func TestEligibility_MatchesCategoryOrName(t *testing.T) {
	e := newTestEngine()

	byCategory := Item{Name: "Margherita", Category: "Pizza", Price: 100}
	byName := Item{Name: "Buddha Bowl", Category: "Salads", Price: 100}

	assert.True(t, e.IsEligible(byCategory, "PIZZA50"))
	assert.True(t, e.IsEligible(byName, "HEALTHY40"))
	assert.True(t, e.IsEligible(byCategory, "pizza50"), "codes are case-insensitive")
}

// Concrete reference scenario: 169.00 item, PIZZA50, quantity 2.
func TestCartTotals_Pizza50Scenario(t *testing.T) {
	e := newTestEngine()
	item := Item{ID: 1, Name: "Margherita Pizza", Category: "Pizza", Price: 169.00}

	unit := e.DiscountedUnitPrice(item, "PIZZA50")
	require.Equal(t, 84.50, unit)

	totals := e.CartTotals([]Line{{Item: item, Quantity: 2}}, "PIZZA50")
	assert.Equal(t, 338.00, totals.Subtotal)
	assert.Equal(t, 169.00, totals.Discount)
	assert.Equal(t, 169.00, totals.Total)
}

func TestCartTotals_MixedCartDiscountsOnlyEligibleLines(t *testing.T) {
	e := newTestEngine()
	pizza := Item{ID: 1, Name: "Farmhouse Pizza", Category: "Pizza", Price: 200.00}
	sushi := Item{ID: 2, Name: "Salmon Nigiri", Category: "Sushi", Price: 300.00}

	totals := e.CartTotals([]Line{
		{Item: pizza, Quantity: 1},
		{Item: sushi, Quantity: 2},
	}, "PIZZA50")

	assert.Equal(t, 800.00, totals.Subtotal)
	assert.Equal(t, 700.00, totals.Total) // only the pizza line is discounted
	assert.Equal(t, 100.00, totals.Discount)
}

func TestCartTotals_Invariants(t *testing.T) {
	e := newTestEngine()
	items := []Item{
		{ID: 1, Name: "Margherita Pizza", Category: "Pizza", Price: 169.00},
		{ID: 2, Name: "Veg Biryani", Category: "Rice Biryani", Price: 199.99},
		{ID: 3, Name: "Quinoa Bowl", Category: "Healthy", Price: 333.33},
		{ID: 4, Name: "Dragon Roll", Category: "Sushi", Price: 450.50},
		{ID: 5, Name: "Garlic Bread", Category: "Sides", Price: 89.00},
	}
	codes := []string{"", "PIZZA50", "BIRYANI30", "HEALTHY40", "SUSHI25", "BOGUS"}

	for _, code := range codes {
		var lines []Line
		for i, it := range items {
			lines = append(lines, Line{Item: it, Quantity: i + 1})
		}
		totals := e.CartTotals(lines, code)

		assert.Equal(t, Round2(totals.Subtotal-totals.Total), totals.Discount,
			"discount must equal rounded subtotal-total delta for code %q", code)
		assert.LessOrEqual(t, totals.Total, totals.Subtotal,
			"total must never exceed subtotal for code %q", code)
		assert.GreaterOrEqual(t, totals.Discount, 0.0)
	}
}

func TestCartTotals_EmptyCart(t *testing.T) {
	e := newTestEngine()
	totals := e.CartTotals(nil, "PIZZA50")
	assert.Equal(t, Totals{}, totals)
}

func TestCartTotals_ReapplySameCodeIsIdempotent(t *testing.T) {
	e := newTestEngine()
	lines := []Line{
		{Item: Item{ID: 1, Name: "Pepperoni Pizza", Category: "Pizza", Price: 149.00}, Quantity: 3},
	}

	first := e.CartTotals(lines, "PIZZA50")
	second := e.CartTotals(lines, "PIZZA50")
	assert.Equal(t, first, second)

	cleared := e.CartTotals(lines, "")
	assert.Equal(t, 0.0, cleared.Discount)
	assert.Equal(t, cleared.Subtotal, cleared.Total)
}

func TestStaticRegistry_CustomTable(t *testing.T) {
	reg := NewStaticRegistry(Coupon{Code: "taco10", Fraction: 0.10, Keywords: []string{"taco"}})
	e := NewEngine(reg)

	item := Item{Name: "Street Taco", Category: "Mexican", Price: 50.00}
	assert.Equal(t, 45.00, e.DiscountedUnitPrice(item, "TACO10"))
	assert.False(t, e.Known("PIZZA50"))
}
