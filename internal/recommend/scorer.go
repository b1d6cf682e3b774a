package recommend

import (
	"sort"

	"github.com/ramneet9/Food-DEL/internal/menu"
	"github.com/ramneet9/Food-DEL/internal/preference"
)

// MaxResults caps the dashboard recommendation list.
const MaxResults = 8

// Recommend produces a bounded, de-duplicated list of available menu
// items personalized to the customer's preferences.
//
// Dietary restrictions are hard filters (ANDed); favorite cuisines are
// a soft filter used only on the primary pass. When the primary pass
// yields fewer than MaxResults items the cuisine restriction is
// dropped and the list is backfilled by popularity, still honoring the
// dietary filters. Unavailable items are never recommended.
func Recommend(prefs []preference.Preference, catalog []menu.Item) []menu.Item {
	dietary := map[string]bool{}
	var cuisines []string
	for _, p := range prefs {
		switch p.Type {
		case preference.TypeDietaryRestriction:
			dietary[p.Value] = true
		case preference.TypeFavoriteCuisine:
			cuisines = append(cuisines, p.Value)
		}
	}

	hard := func(it menu.Item) bool {
		if !it.IsAvailable {
			return false
		}
		if dietary["vegetarian"] && !it.IsVegetarian {
			return false
		}
		if dietary["vegan"] && !it.IsVegan {
			return false
		}
		if dietary["gluten_free"] && !it.IsGlutenFree {
			return false
		}
		return true
	}

	cuisineSet := map[string]bool{}
	for _, c := range cuisines {
		cuisineSet[c] = true
	}

	var primary, backfill []menu.Item
	for _, it := range catalog {
		if !hard(it) {
			continue
		}
		backfill = append(backfill, it)
		if len(cuisineSet) == 0 || cuisineSet[it.CuisineType] {
			primary = append(primary, it)
		}
	}

	rankByPopularity(primary)
	rankByPopularity(backfill)

	if len(primary) > MaxResults {
		primary = primary[:MaxResults]
	}

	seen := make(map[int]bool, MaxResults)
	result := make([]menu.Item, 0, MaxResults)
	for _, it := range primary {
		if !seen[it.ID] {
			seen[it.ID] = true
			result = append(result, it)
		}
	}
	for _, it := range backfill {
		if len(result) >= MaxResults {
			break
		}
		if !seen[it.ID] {
			seen[it.ID] = true
			result = append(result, it)
		}
	}
	return result
}

// rankByPopularity sorts by descending order_count; ties break on item
// id for a deterministic order.
func rankByPopularity(items []menu.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderCount != items[j].OrderCount {
			return items[i].OrderCount > items[j].OrderCount
		}
		return items[i].ID < items[j].ID
	})
}
