package review

import "context"

// Repository defines all database operations for reviews
type Repository interface {

	// Create inserts the review and recomputes the restaurant's rating
	// and total_reviews in the same transaction.
	Create(ctx context.Context, review *Review) error

	ListByRestaurant(ctx context.Context, restaurantID int) ([]Review, error)
	GetByID(ctx context.Context, id int) (*Review, error)
	SetOwnerReply(ctx context.Context, reviewID int, reply string) error
}
