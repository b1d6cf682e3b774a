package menu

import "context"

// Repository defines all database operations for menu items
type Repository interface {

	// -------------------------------
	// Owner management
	// -------------------------------

	Create(ctx context.Context, item *Item) error

	// Update only the provided item's fields; ownership already checked
	Update(ctx context.Context, item *Item) error

	Delete(ctx context.Context, itemID int) error

	// Find an item iff it belongs to a restaurant owned by ownerID
	FindOwned(ctx context.Context, itemID int, ownerID string) (*Item, error)

	SetImageURL(ctx context.Context, itemID int, url string) error

	// -------------------------------
	// Customer browsing
	// -------------------------------

	GetByID(ctx context.Context, itemID int) (*Item, error)

	// Available items of one restaurant, filtered and ranked for display
	ListForRestaurant(ctx context.Context, restaurantID int, f BrowseFilter) ([]Item, error)

	// All items of one restaurant (owner menu management view)
	ListAllForRestaurant(ctx context.Context, restaurantID int) ([]Item, error)

	// Full available catalog across restaurants (recommendation input)
	ListAvailable(ctx context.Context) ([]Item, error)
}
