package order

import "context"

// Repository defines all database operations for orders
type Repository interface {

	// CreateOrders persists a whole checkout atomically: all orders and
	// their items, the order_count bumps on menu items, the cart wipe
	// and the active-coupon clear happen in one transaction or not at
	// all.
	CreateOrders(ctx context.Context, customerID string, orders []*Order) error

	ListByCustomer(ctx context.Context, customerID string, q HistoryQuery) ([]Order, error)

	// Orders across every restaurant the owner controls
	ListByOwner(ctx context.Context, ownerID string, statusFilter string) ([]Order, error)

	// Update status iff the order belongs to one of the owner's
	// restaurants
	UpdateStatusOwned(ctx context.Context, orderID int, ownerID, status string) error

	// Used by the review module: has this customer completed an order
	// at this restaurant?
	HasDeliveredOrder(ctx context.Context, customerID string, restaurantID int) (bool, error)
}
