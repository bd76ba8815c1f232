package blog

import "context"

// Service defines the interface for blog business logic
type Service interface {
	// Public reads, published posts only
	ListPublished(ctx context.Context, filter Filter, limit, offset int) ([]*Post, int64, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Post, error)

	// Admin operations
	Create(ctx context.Context, authorID int64, post *Post) (*Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) error
	SetPublished(ctx context.Context, id int64, published bool) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context, filter Filter, limit, offset int) ([]*Post, int64, error)
}
