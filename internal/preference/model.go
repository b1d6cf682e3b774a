package preference

import "time"

const (
	TypeFavoriteCuisine    = "favorite_cuisine"
	TypeFavoriteRestaurant = "favorite_restaurant"
	TypeDietaryRestriction = "dietary_restriction"
)

// Preference is one (type, value) pair a user has saved. Multiple
// values per type are allowed.
type Preference struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"preference_type"`
	Value     string    `json:"preference_value"`
	CreatedAt time.Time `json:"created_at"`
}
