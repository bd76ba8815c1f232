package class

import "time"

// Class is a hosting course offered on the education side of the site
type Class struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Level       string    `json:"level"` // beginner, intermediate, advanced
	PriceIDR    int64     `json:"price_idr"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
