package bookmark

import "context"

// Repository defines the interface for bookmark data access
type Repository interface {
	Create(ctx context.Context, b *Bookmark) error
	GetByID(ctx context.Context, userID, id int64) (*Bookmark, error)
	Update(ctx context.Context, b *Bookmark) error
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, userID int64, limit, offset int) ([]*Bookmark, int64, error)
}
