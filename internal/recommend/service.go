package recommend

import (
	"context"

	"github.com/ramneet9/Food-DEL/internal/menu"
	"github.com/ramneet9/Food-DEL/internal/preference"
)

// CatalogReader loads the available catalog (recommendation input).
type CatalogReader interface {
	Catalog(ctx context.Context) ([]menu.Item, error)
}

// PreferenceReader loads a user's full preference set.
type PreferenceReader interface {
	List(ctx context.Context, userID string) ([]preference.Preference, error)
}

type Service struct {
	catalog CatalogReader
	prefs   PreferenceReader
	cache   Cache // nil disables caching
}

func NewService(catalog CatalogReader, prefs PreferenceReader, cache Cache) *Service {
	return &Service{catalog: catalog, prefs: prefs, cache: cache}
}

// ForCustomer returns the personalized dashboard list for one customer.
func (s *Service) ForCustomer(ctx context.Context, userID string) ([]menu.Item, error) {
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx, userID); ok {
			return items, nil
		}
	}

	prefs, err := s.prefs.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	items := Recommend(prefs, catalog)

	if s.cache != nil {
		s.cache.Set(ctx, userID, items)
	}
	return items, nil
}
