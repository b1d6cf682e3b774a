package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ramneet9/Food-DEL/internal/core"
)

var (
	ErrNotFound      = errors.New("menu item not found")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidPrice  = errors.New("price must be positive")
)

type Storage interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

type Service struct {
	repo        Repository
	restaurants core.RestaurantReader
	storage     Storage
}

func NewService(repo Repository, restaurants core.RestaurantReader, storage Storage) *Service {
	return &Service{repo: repo, restaurants: restaurants, storage: storage}
}

// --------------------------------------------------
// Owner management
// --------------------------------------------------

func (s *Service) AddItem(ctx context.Context, ownerID string, item *Item) error {
	if item.Name == "" || item.Category == "" || item.CuisineType == "" {
		return ErrMissingFields
	}
	if item.Price <= 0 {
		return ErrInvalidPrice
	}

	ok, err := s.restaurants.IsOwner(ctx, item.RestaurantID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("restaurant not found")
	}

	// New items start available
	item.IsAvailable = true

	return s.repo.Create(ctx, item)
}

// UpdateItem applies the provided patch to an item the owner controls.
// Nil pointers leave the corresponding field untouched.
func (s *Service) UpdateItem(
	ctx context.Context,
	ownerID string,
	itemID int,
	patch ItemPatch,
) (*Item, error) {

	item, err := s.repo.FindOwned(ctx, itemID, ownerID)
	if err != nil {
		return nil, ErrNotFound
	}

	patch.apply(item)
	if item.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, ownerID string, itemID int) error {
	if _, err := s.repo.FindOwned(ctx, itemID, ownerID); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, itemID)
}

// --------------------------------------------------
// Item image upload
// --------------------------------------------------
func (s *Service) UploadItemImage(
	ctx context.Context,
	ownerID string,
	itemID int,
	file *multipart.FileHeader,
) (string, error) {

	if _, err := s.repo.FindOwned(ctx, itemID, ownerID); err != nil {
		return "", ErrNotFound
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", errors.New("unsupported image type")
	}

	key := fmt.Sprintf("menu-items/%d/%s%s", itemID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(ctx, itemID, url); err != nil {
		return "", err
	}
	return url, nil
}

// --------------------------------------------------
// Customer browsing
// --------------------------------------------------

func (s *Service) BrowseRestaurantMenu(
	ctx context.Context,
	restaurantID int,
	f BrowseFilter,
) ([]Item, error) {
	return s.repo.ListForRestaurant(ctx, restaurantID, f)
}

func (s *Service) OwnerMenu(
	ctx context.Context,
	ownerID string,
	restaurantID int,
) ([]Item, error) {

	ok, err := s.restaurants.IsOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("restaurant not found")
	}
	return s.repo.ListAllForRestaurant(ctx, restaurantID)
}

func (s *Service) Catalog(ctx context.Context) ([]Item, error) {
	return s.repo.ListAvailable(ctx)
}

// --------------------------------------------------
// Patch type for partial updates
// --------------------------------------------------

type ItemPatch struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Category     *string  `json:"category"`
	CuisineType  *string  `json:"cuisine_type"`
	IsVegetarian *bool    `json:"is_vegetarian"`
	IsVegan      *bool    `json:"is_vegan"`
	IsGlutenFree *bool    `json:"is_gluten_free"`
	IsAvailable  *bool    `json:"is_available"`
	IsSpecial    *bool    `json:"is_special"`
	IsDealOfDay  *bool    `json:"is_deal_of_day"`
}

func (p ItemPatch) apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.CuisineType != nil {
		item.CuisineType = *p.CuisineType
	}
	if p.IsVegetarian != nil {
		item.IsVegetarian = *p.IsVegetarian
	}
	if p.IsVegan != nil {
		item.IsVegan = *p.IsVegan
	}
	if p.IsGlutenFree != nil {
		item.IsGlutenFree = *p.IsGlutenFree
	}
	if p.IsAvailable != nil {
		item.IsAvailable = *p.IsAvailable
	}
	if p.IsSpecial != nil {
		item.IsSpecial = *p.IsSpecial
	}
	if p.IsDealOfDay != nil {
		item.IsDealOfDay = *p.IsDealOfDay
	}
}
