package review

import "time"

type Review struct {
	ID           int        `json:"id"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	OwnerReply   *string    `json:"owner_reply,omitempty"`
	OwnerReplyAt *time.Time `json:"owner_reply_at,omitempty"`
	CustomerID   string     `json:"customer_id"`
	RestaurantID int        `json:"restaurant_id"`
	CreatedAt    time.Time  `json:"created_at"`
}
