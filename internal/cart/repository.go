package cart

import "context"

// Repository defines all database operations for carts and the
// per-customer active coupon.
type Repository interface {

	// -------------------------------
	// Lines
	// -------------------------------

	// Insert a line, or bump quantity if the customer already has one
	// for this item
	AddItem(ctx context.Context, customerID string, menuItemID, quantity int) error

	FindLine(ctx context.Context, lineID int, customerID string) (*Line, error)

	SetQuantity(ctx context.Context, lineID int, customerID string, quantity int) error

	RemoveLine(ctx context.Context, lineID int, customerID string) error

	// All lines joined with their menu items
	ListLines(ctx context.Context, customerID string) ([]Line, error)

	// Sum of quantities across the customer's cart
	Count(ctx context.Context, customerID string) (int, error)

	// -------------------------------
	// Active coupon (session value)
	// -------------------------------

	GetActiveCoupon(ctx context.Context, customerID string) (string, error)
	SetActiveCoupon(ctx context.Context, customerID, code string) error
	ClearActiveCoupon(ctx context.Context, customerID string) error
}
