package cart

import (
	"context"
	"errors"

	"github.com/ramneet9/Food-DEL/internal/menu"
	"github.com/ramneet9/Food-DEL/internal/pricing"
)

var (
	ErrItemUnavailable = errors.New("item is not available")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrUnknownCoupon   = errors.New("invalid coupon code")
	ErrLineNotFound    = errors.New("cart item not found")
)

// ItemReader is the slice of the menu repository the cart needs.
type ItemReader interface {
	GetByID(ctx context.Context, itemID int) (*menu.Item, error)
}

type Service struct {
	repo   Repository
	items  ItemReader
	engine *pricing.Engine
}

func NewService(repo Repository, items ItemReader, engine *pricing.Engine) *Service {
	return &Service{repo: repo, items: items, engine: engine}
}

// --------------------------------------------------
// ADD
// --------------------------------------------------
func (s *Service) Add(
	ctx context.Context,
	customerID string,
	menuItemID, quantity int,
) (int, error) {

	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}

	item, err := s.items.GetByID(ctx, menuItemID)
	if err != nil {
		return 0, errors.New("invalid menu item")
	}
	if !item.IsAvailable {
		return 0, ErrItemUnavailable
	}

	if err := s.repo.AddItem(ctx, customerID, menuItemID, quantity); err != nil {
		return 0, err
	}
	return s.repo.Count(ctx, customerID)
}

// --------------------------------------------------
// VIEW
// --------------------------------------------------
func (s *Service) View(ctx context.Context, customerID string) (*View, error) {
	lines, err := s.repo.ListLines(ctx, customerID)
	if err != nil {
		return nil, err
	}
	coupon, err := s.repo.GetActiveCoupon(ctx, customerID)
	if err != nil {
		return nil, err
	}
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return &View{
		Lines:         lines,
		Totals:        s.engine.CartTotals(PricingLines(lines), coupon),
		AppliedCoupon: coupon,
		CartCount:     count,
	}, nil
}

// --------------------------------------------------
// UPDATE QUANTITY
// --------------------------------------------------

// UpdateResult returns the recomputed cart plus the touched line's
// new discounted unit price and line total.
type UpdateResult struct {
	View          *View   `json:"cart"`
	LineUnitPrice float64 `json:"line_unit_price"`
	LineTotal     float64 `json:"line_total"`
}

// UpdateQuantity sets a line's quantity. Zero is rejected, not
// treated as removal.
func (s *Service) UpdateQuantity(
	ctx context.Context,
	customerID string,
	lineID, quantity int,
) (*UpdateResult, error) {

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	line, err := s.repo.FindLine(ctx, lineID, customerID)
	if err != nil {
		return nil, ErrLineNotFound
	}

	if err := s.repo.SetQuantity(ctx, lineID, customerID, quantity); err != nil {
		return nil, err
	}

	view, err := s.View(ctx, customerID)
	if err != nil {
		return nil, err
	}

	unit := s.engine.DiscountedUnitPrice(pricing.Item{
		ID:       line.Item.ID,
		Name:     line.Item.Name,
		Category: line.Item.Category,
		Price:    line.Item.Price,
	}, view.AppliedCoupon)

	return &UpdateResult{
		View:          view,
		LineUnitPrice: unit,
		LineTotal:     float64(quantity) * unit,
	}, nil
}

// --------------------------------------------------
// REMOVE
// --------------------------------------------------
func (s *Service) Remove(ctx context.Context, customerID string, lineID int) (*View, error) {
	if err := s.repo.RemoveLine(ctx, lineID, customerID); err != nil {
		return nil, ErrLineNotFound
	}
	return s.View(ctx, customerID)
}

// --------------------------------------------------
// COUPONS
// --------------------------------------------------

// ApplyCoupon validates and stores a code as the customer's active
// coupon. An empty code clears the active coupon; an unknown non-empty
// code is rejected and the previous coupon stays in effect.
func (s *Service) ApplyCoupon(ctx context.Context, customerID, code string) (*View, error) {
	code = pricing.NormalizeCode(code)

	if code == "" {
		if err := s.repo.ClearActiveCoupon(ctx, customerID); err != nil {
			return nil, err
		}
		return s.View(ctx, customerID)
	}

	if !s.engine.Known(code) {
		return nil, ErrUnknownCoupon
	}

	if err := s.repo.SetActiveCoupon(ctx, customerID, code); err != nil {
		return nil, err
	}
	return s.View(ctx, customerID)
}
