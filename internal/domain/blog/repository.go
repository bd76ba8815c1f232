package blog

import "context"

// Repository defines the interface for blog post data access
type Repository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	GetBySlug(ctx context.Context, slug string) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Post, int64, error)
}
