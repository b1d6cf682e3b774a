package cart

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/ramneet9/Food-DEL/internal/menu"
)

// InMemoryRepository backs the cart in a map. Used by tests and shared
// with the order package's checkout tests.
type InMemoryRepository struct {
	lines   map[int]*Line
	coupons map[string]string
	items   map[int]menu.Item
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		lines:   make(map[int]*Line),
		coupons: make(map[string]string),
		items:   make(map[int]menu.Item),
		nextID:  1,
	}
}

// SeedItem registers a menu item the fake can join against.
func (r *InMemoryRepository) SeedItem(item menu.Item) {
	r.items[item.ID] = item
}

func (r *InMemoryRepository) AddItem(
	ctx context.Context,
	customerID string,
	menuItemID, quantity int,
) error {

	item, ok := r.items[menuItemID]
	if !ok {
		return errors.New("menu item not found")
	}

	for _, l := range r.lines {
		if l.CustomerID == customerID && l.Item.ID == menuItemID {
			l.Quantity += quantity
			return nil
		}
	}

	r.lines[r.nextID] = &Line{
		ID:         r.nextID,
		CustomerID: customerID,
		Quantity:   quantity,
		Item:       item,
		CreatedAt:  time.Now(),
	}
	r.nextID++
	return nil
}

func (r *InMemoryRepository) FindLine(
	ctx context.Context,
	lineID int,
	customerID string,
) (*Line, error) {

	l, ok := r.lines[lineID]
	if !ok || l.CustomerID != customerID {
		return nil, errors.New("cart item not found")
	}
	copied := *l
	return &copied, nil
}

func (r *InMemoryRepository) SetQuantity(
	ctx context.Context,
	lineID int,
	customerID string,
	quantity int,
) error {

	l, ok := r.lines[lineID]
	if !ok || l.CustomerID != customerID {
		return errors.New("cart item not found")
	}
	l.Quantity = quantity
	return nil
}

func (r *InMemoryRepository) RemoveLine(
	ctx context.Context,
	lineID int,
	customerID string,
) error {

	l, ok := r.lines[lineID]
	if !ok || l.CustomerID != customerID {
		return errors.New("cart item not found")
	}
	delete(r.lines, lineID)
	return nil
}

func (r *InMemoryRepository) ListLines(
	ctx context.Context,
	customerID string,
) ([]Line, error) {

	var lines []Line
	for _, l := range r.lines {
		if l.CustomerID == customerID {
			lines = append(lines, *l)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines, nil
}

func (r *InMemoryRepository) Count(ctx context.Context, customerID string) (int, error) {
	count := 0
	for _, l := range r.lines {
		if l.CustomerID == customerID {
			count += l.Quantity
		}
	}
	return count, nil
}

func (r *InMemoryRepository) GetActiveCoupon(
	ctx context.Context,
	customerID string,
) (string, error) {
	return r.coupons[customerID], nil
}

func (r *InMemoryRepository) SetActiveCoupon(
	ctx context.Context,
	customerID, code string,
) error {
	r.coupons[customerID] = code
	return nil
}

func (r *InMemoryRepository) ClearActiveCoupon(
	ctx context.Context,
	customerID string,
) error {
	delete(r.coupons, customerID)
	return nil
}
