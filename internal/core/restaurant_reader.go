package core

import "context"

// RestaurantReader is the slice of the restaurant repository other
// feature packages need. Keeps menu/order/review from importing the
// restaurant package directly.
type RestaurantReader interface {
	IsOwner(ctx context.Context, restaurantID int, userID string) (bool, error)
}
