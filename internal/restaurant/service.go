package restaurant

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrNotFound      = errors.New("restaurant not found")
	ErrNotOwner      = errors.New("unauthorized")
)

type Storage interface {
	Upload(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Create restaurant
// --------------------------------------------------
func (s *Service) CreateRestaurant(
	ctx context.Context,
	ownerID string,
	restaurant *Restaurant,
) (*Restaurant, error) {

	if restaurant.Name == "" || restaurant.CuisineType == "" || restaurant.Location == "" {
		return nil, ErrMissingFields
	}

	restaurant.OwnerID = ownerID
	restaurant.IsActive = true

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// List restaurants owned by user
// --------------------------------------------------
func (s *Service) ListMyRestaurants(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Deactivate restaurant
// --------------------------------------------------
func (s *Service) DeactivateRestaurant(
	ctx context.Context,
	restaurantID int,
	ownerID string,
) error {

	isOwner, err := s.repo.IsOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrNotOwner
	}

	return s.repo.Deactivate(ctx, restaurantID)
}

// --------------------------------------------------
// Public browsing
// --------------------------------------------------
func (s *Service) Browse(ctx context.Context, filter BrowseFilter) ([]*Restaurant, error) {
	return s.repo.Browse(ctx, filter)
}

func (s *Service) Detail(ctx context.Context, restaurantID int) (*Restaurant, error) {
	res, err := s.repo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !res.IsActive {
		return nil, ErrNotFound
	}
	return res, nil
}

// --------------------------------------------------
// Restaurant image upload
// --------------------------------------------------
func (s *Service) UploadImage(
	ctx context.Context,
	restaurantID int,
	ownerID string,
	file *multipart.FileHeader,
) (string, error) {

	isOwner, err := s.repo.IsOwner(ctx, restaurantID, ownerID)
	if err != nil {
		return "", err
	}
	if !isOwner {
		return "", ErrNotOwner
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", errors.New("unsupported image type")
	}

	key := fmt.Sprintf("restaurants/%d/%s%s", restaurantID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(ctx, restaurantID, url); err != nil {
		return "", err
	}
	return url, nil
}
