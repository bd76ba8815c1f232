package blog

import "time"

// Post is a blog article
type Post struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Category  string    `json:"category"`
	Excerpt   string    `json:"excerpt,omitempty"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows post listings. PublishedOnly is forced on for the public
// endpoints.
type Filter struct {
	Category      string
	Search        string
	PublishedOnly bool
}
