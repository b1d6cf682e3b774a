package preference

import (
	"context"
	"errors"
)

var (
	ErrInvalidPreference = errors.New("invalid preference data")
	ErrNotFound          = errors.New("preference not found")
)

var allowedTypes = map[string]bool{
	TypeFavoriteCuisine:    true,
	TypeFavoriteRestaurant: true,
	TypeDietaryRestriction: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add stores a preference; duplicates are acknowledged without error.
func (s *Service) Add(ctx context.Context, userID, prefType, prefValue string) (*Preference, bool, error) {
	if !allowedTypes[prefType] || prefValue == "" {
		return nil, false, ErrInvalidPreference
	}

	pref := &Preference{
		UserID: userID,
		Type:   prefType,
		Value:  prefValue,
	}
	created, err := s.repo.Add(ctx, pref)
	if err != nil {
		return nil, false, err
	}
	return pref, created, nil
}

func (s *Service) Remove(ctx context.Context, userID string, prefID int) error {
	if prefID <= 0 {
		return ErrInvalidPreference
	}
	if err := s.repo.Remove(ctx, userID, prefID); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Preference, error) {
	return s.repo.ListByUser(ctx, userID)
}
