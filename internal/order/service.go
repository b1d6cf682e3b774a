package order

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ramneet9/Food-DEL/internal/cart"
	"github.com/ramneet9/Food-DEL/internal/events"
	"github.com/ramneet9/Food-DEL/internal/pricing"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrNotFound      = errors.New("order not found")
)

// CartReader is the slice of the cart repository checkout needs.
type CartReader interface {
	ListLines(ctx context.Context, customerID string) ([]cart.Line, error)
	GetActiveCoupon(ctx context.Context, customerID string) (string, error)
}

type Service struct {
	repo      Repository
	carts     CartReader
	engine    *pricing.Engine
	publisher events.Publisher
}

func NewService(
	repo Repository,
	carts CartReader,
	engine *pricing.Engine,
	publisher events.Publisher,
) *Service {
	return &Service{
		repo:      repo,
		carts:     carts,
		engine:    engine,
		publisher: publisher,
	}
}

// --------------------------------------------------
// CHECKOUT
// --------------------------------------------------

// PlaceOrder turns the customer's cart into orders, one per
// restaurant, each line frozen at its discounted unit price. The
// whole checkout commits atomically; on any failure the cart, coupon
// and order counts are untouched.
func (s *Service) PlaceOrder(ctx context.Context, customerID string) ([]*Order, error) {
	lines, err := s.carts.ListLines(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	coupon, err := s.carts.GetActiveCoupon(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// Partition by restaurant, preserving cart order
	var restaurantIDs []int
	partitions := make(map[int][]cart.Line)
	for _, l := range lines {
		rid := l.Item.RestaurantID
		if _, seen := partitions[rid]; !seen {
			restaurantIDs = append(restaurantIDs, rid)
		}
		partitions[rid] = append(partitions[rid], l)
	}

	var orders []*Order
	for _, rid := range restaurantIDs {
		part := partitions[rid]
		totals := s.engine.CartTotals(cart.PricingLines(part), coupon)

		o := &Order{
			OrderNumber:  newOrderNumber(),
			Status:       StatusPending,
			TotalAmount:  pricing.Round2(totals.Total),
			CustomerID:   customerID,
			RestaurantID: rid,
		}
		for _, l := range part {
			o.Items = append(o.Items, Item{
				MenuItemID: l.Item.ID,
				Quantity:   l.Quantity,
				Price: s.engine.DiscountedUnitPrice(pricing.Item{
					ID:       l.Item.ID,
					Name:     l.Item.Name,
					Category: l.Item.Category,
					Price:    l.Item.Price,
				}, coupon),
			})
		}
		orders = append(orders, o)
	}

	if err := s.repo.CreateOrders(ctx, customerID, orders); err != nil {
		return nil, err
	}

	for _, o := range orders {
		evt := events.OrderPlaced{
			OrderNumber:  o.OrderNumber,
			CustomerID:   o.CustomerID,
			RestaurantID: o.RestaurantID,
			TotalAmount:  o.TotalAmount,
			PlacedAt:     time.Now().UTC(),
		}
		if err := s.publisher.PublishOrderPlaced(ctx, evt); err != nil {
			log.Printf("order event publish failed for %s: %v", o.OrderNumber, err)
		}
	}

	return orders, nil
}

// newOrderNumber generates a unique, human-pasteable order number.
// Timestamp-based numbers can collide under rapid repeated checkouts,
// a UUID cannot.
func newOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + id[:20]
}

// --------------------------------------------------
// LISTINGS + STATUS
// --------------------------------------------------

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

func (s *Service) CustomerOrders(
	ctx context.Context,
	customerID string,
	q HistoryQuery,
) ([]Order, error) {
	if q.Status != "" && !validStatuses[q.Status] {
		return nil, ErrInvalidStatus
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}

	return s.repo.ListByCustomer(ctx, customerID, q)
}

func (s *Service) OwnerOrders(
	ctx context.Context,
	ownerID, statusFilter string,
) ([]Order, error) {
	if statusFilter != "" && !validStatuses[statusFilter] {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByOwner(ctx, ownerID, statusFilter)
}

func (s *Service) UpdateStatus(
	ctx context.Context,
	ownerID string,
	orderID int,
	status string,
) error {
	if !validStatuses[status] {
		return ErrInvalidStatus
	}
	if err := s.repo.UpdateStatusOwned(ctx, orderID, ownerID, status); err != nil {
		return ErrNotFound
	}
	return nil
}
