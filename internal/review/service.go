package review

import (
	"context"
	"errors"

	"github.com/ramneet9/Food-DEL/internal/core"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrNotEligible    = errors.New("only customers with a delivered order can review")
	ErrReviewNotFound = errors.New("review not found")
	ErrNotOwner       = errors.New("unauthorized")
	ErrEmptyReply     = errors.New("reply cannot be empty")
)

// DeliveryChecker reports whether the customer has completed an order
// at the restaurant. Backed by the order repository.
type DeliveryChecker interface {
	HasDeliveredOrder(ctx context.Context, customerID string, restaurantID int) (bool, error)
}

type Service struct {
	repo        Repository
	orders      DeliveryChecker
	restaurants core.RestaurantReader
}

func NewService(
	repo Repository,
	orders DeliveryChecker,
	restaurants core.RestaurantReader,
) *Service {
	return &Service{
		repo:        repo,
		orders:      orders,
		restaurants: restaurants,
	}
}

// --------------------------------------------------
// Add review
// --------------------------------------------------
func (s *Service) AddReview(
	ctx context.Context,
	customerID string,
	restaurantID int,
	rating int,
	comment string,
) (*Review, error) {

	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	delivered, err := s.orders.HasDeliveredOrder(ctx, customerID, restaurantID)
	if err != nil {
		return nil, err
	}
	if !delivered {
		return nil, ErrNotEligible
	}

	review := &Review{
		Rating:       rating,
		Comment:      comment,
		CustomerID:   customerID,
		RestaurantID: restaurantID,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// --------------------------------------------------
// List reviews for a restaurant
// --------------------------------------------------
func (s *Service) RestaurantReviews(ctx context.Context, restaurantID int) ([]Review, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// --------------------------------------------------
// Owner reply
// --------------------------------------------------
func (s *Service) Reply(
	ctx context.Context,
	ownerID string,
	reviewID int,
	reply string,
) error {

	if reply == "" {
		return ErrEmptyReply
	}

	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return ErrReviewNotFound
	}

	isOwner, err := s.restaurants.IsOwner(ctx, review.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrNotOwner
	}

	return s.repo.SetOwnerReply(ctx, reviewID, reply)
}
