package class

import "context"

// Repository defines the interface for class data access
type Repository interface {
	Create(ctx context.Context, c *Class) error
	GetByID(ctx context.Context, id int64) (*Class, error)
	Update(ctx context.Context, c *Class) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*Class, int64, error)
}
