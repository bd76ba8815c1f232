package class

import "context"

// Service defines the interface for class business logic
type Service interface {
	// ListPublished retrieves published classes for the public catalog
	ListPublished(ctx context.Context, limit, offset int) ([]*Class, int64, error)

	// Admin operations
	Create(ctx context.Context, c *Class) (*Class, error)
	Get(ctx context.Context, id int64) (*Class, error)
	Update(ctx context.Context, c *Class) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context, limit, offset int) ([]*Class, int64, error)
}
