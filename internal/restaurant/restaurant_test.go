package restaurant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	restaurants map[int]*Restaurant
	createErr   error
	nextID      int
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		restaurants: make(map[int]*Restaurant),
		nextID:      1,
	}
}

func (m *MockRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	if m.createErr != nil {
		return m.createErr
	}

	restaurant.ID = m.nextID
	m.nextID++
	restaurant.CreatedAt = time.Now()

	m.restaurants[restaurant.ID] = restaurant
	return nil
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	var out []*Restaurant
	for _, res := range m.restaurants {
		if res.OwnerID == ownerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Restaurant, error) {
	res, ok := m.restaurants[id]
	if !ok {
		return nil, errors.New("restaurant not found")
	}
	return res, nil
}

func (m *MockRepository) Browse(ctx context.Context, filter BrowseFilter) ([]*Restaurant, error) {
	var out []*Restaurant
	for _, res := range m.restaurants {
		if !res.IsActive {
			continue
		}
		if filter.Cuisine != "" && !strings.EqualFold(res.CuisineType, filter.Cuisine) {
			continue
		}
		if filter.Location != "" && !strings.Contains(
			strings.ToLower(res.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.Search != "" && !strings.Contains(
			strings.ToLower(res.Name+" "+res.Description), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (m *MockRepository) Deactivate(ctx context.Context, id int) error {
	res, ok := m.restaurants[id]
	if !ok {
		return errors.New("restaurant not found")
	}
	res.IsActive = false
	return nil
}

func (m *MockRepository) SetImageURL(ctx context.Context, id int, url string) error {
	res, ok := m.restaurants[id]
	if !ok {
		return errors.New("restaurant not found")
	}
	res.ImageURL = &url
	return nil
}

func (m *MockRepository) IsOwner(
	ctx context.Context,
	restaurantID int,
	userID string,
) (bool, error) {
	res, ok := m.restaurants[restaurantID]
	return ok && res.OwnerID == userID, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func create(t *testing.T, svc *Service, ownerID, name, cuisine, location string) *Restaurant {
	t.Helper()
	res, err := svc.CreateRestaurant(context.Background(), ownerID, &Restaurant{
		Name:        name,
		CuisineType: cuisine,
		Location:    location,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreateRestaurant_Success(t *testing.T) {
	service := NewService(NewMockRepository(), nil)

	restaurant := create(t, service, "owner-123", "Taj Palace", "Indian", "New York")

	if restaurant.ID == 0 {
		t.Errorf("expected ID to be set")
	}
	if !restaurant.IsActive {
		t.Errorf("new restaurants must start active")
	}
}

func TestCreateRestaurant_MissingFields(t *testing.T) {
	service := NewService(NewMockRepository(), nil)

	_, err := service.CreateRestaurant(context.Background(), "owner", &Restaurant{
		Name: "No Cuisine",
	})
	if !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestListMyRestaurants_Success(t *testing.T) {
	service := NewService(NewMockRepository(), nil)

	create(t, service, "owner-123", "Taj Palace", "Indian", "NY")
	create(t, service, "owner-123", "Dragon Court", "Chinese", "NY")
	create(t, service, "owner-456", "Pasta House", "Italian", "Boston")

	restaurants, err := service.ListMyRestaurants(context.Background(), "owner-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(restaurants))
	}
}

func TestDeactivate_RequiresOwnership(t *testing.T) {
	service := NewService(NewMockRepository(), nil)

	res := create(t, service, "owner-123", "Taj Palace", "Indian", "NY")

	err := service.DeactivateRestaurant(context.Background(), res.ID, "someone-else")
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}

func TestDeactivate_HidesFromBrowseAndDetail(t *testing.T) {
	service := NewService(NewMockRepository(), nil)

	res := create(t, service, "owner-123", "Taj Palace", "Indian", "NY")

	if err := service.DeactivateRestaurant(context.Background(), res.ID, "owner-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, _ := service.Browse(context.Background(), BrowseFilter{})
	if len(listed) != 0 {
		t.Errorf("deactivated restaurant must not appear in browse")
	}

	if _, err := service.Detail(context.Background(), res.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for deactivated detail, got %v", err)
	}
}

func TestBrowse_Filters(t *testing.T) {
	service := NewService(NewMockRepository(), nil)

	create(t, service, "o1", "Taj Palace", "Indian", "New York")
	create(t, service, "o2", "Dragon Court", "Chinese", "Boston")

	byCuisine, _ := service.Browse(context.Background(), BrowseFilter{Cuisine: "indian"})
	if len(byCuisine) != 1 || byCuisine[0].Name != "Taj Palace" {
		t.Errorf("cuisine filter failed: %+v", byCuisine)
	}

	byLocation, _ := service.Browse(context.Background(), BrowseFilter{Location: "boston"})
	if len(byLocation) != 1 || byLocation[0].Name != "Dragon Court" {
		t.Errorf("location filter failed: %+v", byLocation)
	}

	bySearch, _ := service.Browse(context.Background(), BrowseFilter{Search: "palace"})
	if len(bySearch) != 1 || bySearch[0].Name != "Taj Palace" {
		t.Errorf("search filter failed: %+v", bySearch)
	}
}
