package events

import (
	"context"
	"time"
)

// OrderPlaced is emitted once per created order after a successful
// checkout commit.
type OrderPlaced struct {
	OrderNumber  string    `json:"order_number"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID int       `json:"restaurant_id"`
	TotalAmount  float64   `json:"total_amount"`
	PlacedAt     time.Time `json:"placed_at"`
}

// Publisher delivers order events to downstream consumers. Failures
// are the caller's to log; publishing never affects the checkout.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, evt OrderPlaced) error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(ctx context.Context, evt OrderPlaced) error {
	return nil
}
