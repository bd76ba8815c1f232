package dto

// BlogCreateRequest creates a blog post
type BlogCreateRequest struct {
	Title     string `json:"title" validate:"required,max=200"`
	Category  string `json:"category"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content" validate:"required"`
	Published bool   `json:"published"`
}

// BlogUpdateRequest updates a blog post. Empty fields are left unchanged.
type BlogUpdateRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

// PublishRequest toggles a post's published flag
type PublishRequest struct {
	Published *bool `json:"published" validate:"required"`
}

// BookmarkRequest creates or updates a bookmark
type BookmarkRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	URL      string `json:"url" validate:"required,url"`
	Category string `json:"category"`
}

// ClassRequest creates or updates a class
type ClassRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Level       string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	PriceIDR    int64  `json:"price_idr" validate:"gte=0"`
	Published   bool   `json:"published"`
}
