package menu

import "time"

// Item is one dish on a restaurant's menu. OrderCount is bumped at
// checkout and drives the "mostly ordered" ranking.
type Item struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	CuisineType  string    `json:"cuisine_type"`
	IsVegetarian bool      `json:"is_vegetarian"`
	IsVegan      bool      `json:"is_vegan"`
	IsGlutenFree bool      `json:"is_gluten_free"`
	IsAvailable  bool      `json:"is_available"`
	IsSpecial    bool      `json:"is_special"`
	IsDealOfDay  bool      `json:"is_deal_of_day"`
	OrderCount   int       `json:"order_count"`
	ImageURL     *string   `json:"image_url,omitempty"`
	RestaurantID int       `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// BrowseFilter narrows a restaurant's menu listing. Zero values mean
// "no filter". PriceBand is one of "", "low", "medium", "high".
type BrowseFilter struct {
	Category  string
	Cuisine   string
	PriceBand string
	Dietary   string // vegetarian | vegan | gluten_free
}
