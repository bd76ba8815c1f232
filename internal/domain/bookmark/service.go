package bookmark

import "context"

// Service defines the interface for bookmark business logic
type Service interface {
	Create(ctx context.Context, userID int64, title, url, category string) (*Bookmark, error)
	Update(ctx context.Context, userID int64, b *Bookmark) error
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, userID int64, limit, offset int) ([]*Bookmark, int64, error)
}
