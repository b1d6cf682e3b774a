package restaurant

import "time"

type Restaurant struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CuisineType  string    `json:"cuisine_type"`
	Location     string    `json:"location"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	IsActive     bool      `json:"is_active"`
	ImageURL     *string   `json:"image_url,omitempty"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// BrowseFilter narrows the public restaurant listing. Empty fields
// match everything.
type BrowseFilter struct {
	Search   string // matches name or description, case-insensitive
	Cuisine  string
	Location string
}
