package restaurant

import "context"

// Repository defines all database operations for restaurants
type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error)
	GetByID(ctx context.Context, id int) (*Restaurant, error)
	Browse(ctx context.Context, filter BrowseFilter) ([]*Restaurant, error)
	Deactivate(ctx context.Context, id int) error
	SetImageURL(ctx context.Context, id int, url string) error

	// Ownership check, also consumed by other features through
	// core.RestaurantReader
	IsOwner(ctx context.Context, restaurantID int, userID string) (bool, error)
}
