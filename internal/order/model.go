package order

import "time"

// Order statuses follow the kitchen lifecycle.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// HistoryQuery narrows a customer's order history. Search matches a
// substring of the order number, case-insensitive.
type HistoryQuery struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

// Order is one restaurant's share of a checkout. A cart spanning
// multiple restaurants produces one Order per restaurant.
type Order struct {
	ID           int       `json:"id"`
	OrderNumber  string    `json:"order_number"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
	Notes        string    `json:"notes,omitempty"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID int       `json:"restaurant_id"`
	Items        []Item    `json:"items,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Item freezes one menu item's quantity and discounted unit price at
// the moment of purchase. The price never changes afterwards, even if
// the catalog price or coupon table does.
type Item struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	MenuItemID int     `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}
